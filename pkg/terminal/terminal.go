package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// readBufferSize bounds a single input read. Escape sequences arrive whole
// within one read on every terminal we target.
const readBufferSize = 256

// Terminal is a ports.Terminal over an input stream and an output stream.
type Terminal struct {
	in     io.Reader
	fd     int
	tty    bool
	out    *bufio.Writer
	output *termenv.Output

	profile *termenv.Profile

	// mu guards the raw mode state so a signal handler can restore the
	// device while a slide is rendering.
	mu    sync.Mutex
	raw   bool
	saved *term.State

	decoder Decoder
	readBuf []byte
	queue   []ports.Event
}

// Option defines a functional option for configuring the Terminal.
type Option func(*Terminal)

// WithProfile forces a color profile instead of detecting it from the output.
func WithProfile(p termenv.Profile) Option {
	return func(t *Terminal) {
		t.profile = &p
	}
}

// New creates a Terminal reading from in and writing to out.
// Raw mode uses the real device only when in is an *os.File attached to a TTY.
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:      in,
		fd:      -1,
		out:     bufio.NewWriter(out),
		readBuf: make([]byte, readBufferSize),
	}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
		t.tty = term.IsTerminal(t.fd)
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.profile != nil {
		t.output = termenv.NewOutput(out, termenv.WithProfile(*t.profile))
	} else {
		t.output = termenv.NewOutput(out)
	}
	return t
}

// Stdio creates a Terminal on the process stdin and stdout.
func Stdio(opts ...Option) *Terminal {
	return New(os.Stdin, os.Stdout, opts...)
}

// IsTTY reports whether raw mode switches a real device.
func (t *Terminal) IsTTY() bool { return t.tty }

// Profile returns the color profile styles are rendered with.
func (t *Terminal) Profile() termenv.Profile { return t.output.Profile }

// Style returns an empty style bound to the terminal's color profile.
func (t *Terminal) Style() termenv.Style { return t.output.String() }

// Color parses a color ("#818cf8", "12", "1") for the terminal's profile.
func (t *Terminal) Color(s string) termenv.Color { return t.output.Profile.Color(s) }

func (t *Terminal) Clear() error {
	if err := t.Write(eraseDisplay() + cursorPosition(1, 1)); err != nil {
		return err
	}
	return t.Flush()
}

func (t *Terminal) Write(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

func (t *Terminal) Flush() error {
	return t.out.Flush()
}

func (t *Terminal) IsRaw() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw, nil
}

func (t *Terminal) EnableRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.raw {
		return nil
	}
	if t.tty {
		state, err := term.MakeRaw(t.fd)
		if err != nil {
			return fmt.Errorf("make raw: %w", err)
		}
		t.saved = state
	}
	t.raw = true
	return nil
}

func (t *Terminal) DisableRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.raw {
		return nil
	}
	if t.tty && t.saved != nil {
		if err := term.Restore(t.fd, t.saved); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		t.saved = nil
	}
	t.raw = false
	return nil
}

// ReadEvent blocks on the input stream until at least one event is decoded.
// io.EOF is returned once the stream is exhausted.
func (t *Terminal) ReadEvent() (ports.Event, error) {
	for len(t.queue) == 0 {
		n, err := t.in.Read(t.readBuf)
		if n > 0 {
			t.queue = append(t.queue, t.decoder.Feed(t.readBuf[:n])...)
		}
		if err != nil {
			if len(t.queue) == 0 {
				t.queue = append(t.queue, t.decoder.Flush()...)
			}
			if len(t.queue) > 0 {
				break
			}
			return ports.Event{}, err
		}
	}

	ev := t.queue[0]
	t.queue = t.queue[1:]
	return ev, nil
}

// Restore flushes pending output and leaves raw mode. It is meant for
// deferred cleanup after a failed slide.
func (t *Terminal) Restore() error {
	return errors.Join(t.Flush(), t.DisableRaw())
}

// RestoreDevice leaves raw mode without touching the output buffer, which may
// be in use by the rendering goroutine. Safe to call from a signal handler.
func (t *Terminal) RestoreDevice() error {
	return t.DisableRaw()
}

func eraseDisplay() string {
	return termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2)
}

func cursorPosition(row, col int) string {
	return termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, row, col)
}
