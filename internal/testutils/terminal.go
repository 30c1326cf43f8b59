package testutils

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/slideshow/pkg/ports"
)

// Call names recorded by Terminal.
const (
	CallClear      = "clear"
	CallWrite      = "write"
	CallFlush      = "flush"
	CallIsRaw      = "is_raw"
	CallEnableRaw  = "enable_raw"
	CallDisableRaw = "disable_raw"
	CallRead       = "read"
	CallSleep      = "sleep"
)

// Terminal is an in-memory ports.Terminal that records every call in order.
// ReadEvent pops from Events and returns io.EOF once they run out, so a test
// never blocks on input it forgot to queue.
type Terminal struct {
	Events []ports.Event
	Calls  []string

	// Fail returns an error to inject for the given call, or nil.
	Fail func(call string) error

	raw     bool
	pending strings.Builder
	screen  strings.Builder
}

// NewTerminal returns a Terminal with events queued for ReadEvent.
func NewTerminal(events ...ports.Event) *Terminal {
	return &Terminal{Events: events}
}

func (t *Terminal) record(call string) error {
	t.Calls = append(t.Calls, call)
	if t.Fail != nil {
		return t.Fail(call)
	}
	return nil
}

func (t *Terminal) Clear() error {
	if err := t.record(CallClear); err != nil {
		return err
	}
	t.pending.Reset()
	t.screen.Reset()
	return nil
}

func (t *Terminal) Write(s string) error {
	if err := t.record(CallWrite + ":" + s); err != nil {
		return err
	}
	t.pending.WriteString(s)
	return nil
}

func (t *Terminal) Flush() error {
	if err := t.record(CallFlush); err != nil {
		return err
	}
	t.screen.WriteString(t.pending.String())
	t.pending.Reset()
	return nil
}

func (t *Terminal) IsRaw() (bool, error) {
	if err := t.record(CallIsRaw); err != nil {
		return false, err
	}
	return t.raw, nil
}

func (t *Terminal) EnableRaw() error {
	if err := t.record(CallEnableRaw); err != nil {
		return err
	}
	t.raw = true
	return nil
}

func (t *Terminal) DisableRaw() error {
	if err := t.record(CallDisableRaw); err != nil {
		return err
	}
	t.raw = false
	return nil
}

func (t *Terminal) ReadEvent() (ports.Event, error) {
	if err := t.record(CallRead); err != nil {
		return ports.Event{}, err
	}
	if len(t.Events) == 0 {
		return ports.Event{}, io.EOF
	}
	ev := t.Events[0]
	t.Events = t.Events[1:]
	return ev, nil
}

// Raw reports the current raw mode flag without recording a call.
func (t *Terminal) Raw() bool { return t.raw }

// Screen returns everything flushed since the last Clear.
func (t *Terminal) Screen() string { return t.screen.String() }

// Writes returns the arguments of every Write call, in order.
func (t *Terminal) Writes() []string {
	var out []string
	for _, c := range t.Calls {
		if s, ok := strings.CutPrefix(c, CallWrite+":"); ok {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many recorded calls start with prefix.
func (t *Terminal) Count(prefix string) int {
	n := 0
	for _, c := range t.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Sleeper returns a ports.Sleeper that records into the same call log and
// also collects the requested durations.
func (t *Terminal) Sleeper() *Sleeper {
	return &Sleeper{term: t}
}

// Sleeper records sleep requests without blocking.
type Sleeper struct {
	Durations []time.Duration
	term      *Terminal
}

func (s *Sleeper) Sleep(d time.Duration) {
	s.Durations = append(s.Durations, d)
	if s.term != nil {
		s.term.Calls = append(s.term.Calls, fmt.Sprintf("%s:%s", CallSleep, d))
	}
}

// Total returns the sum of all recorded durations.
func (s *Sleeper) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}
	return total
}
