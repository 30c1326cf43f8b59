package domain

import (
	"fmt"
	"time"

	"github.com/aretw0/slideshow/pkg/ports"
)

// Action is one unit of terminal work within a slide.
// The set of implementations is closed; use Raw to pass through anything else.
type Action interface {
	// Render performs the action against t, sleeping through s.
	Render(t ports.Terminal, s ports.Sleeper) error

	isAction()
}

// qualifyingKeys satisfy a WaitForInteraction.
var qualifyingKeys = []ports.Key{ports.KeyEnter, ports.KeyRight, ports.KeySpace}

// PacedText prints Text one rune at a time, flushing and sleeping Interval
// after each rune.
type PacedText struct {
	Text     string
	Interval time.Duration
}

// Type builds a PacedText from the textual form of v.
func Type(v any, interval time.Duration) PacedText {
	return PacedText{Text: fmt.Sprint(v), Interval: interval}
}

func (a PacedText) Render(t ports.Terminal, s ports.Sleeper) error {
	if a.Interval < 0 {
		return fmt.Errorf("paced text interval %v: %w", a.Interval, ErrNegativeDuration)
	}
	return pace(t, s, a.Text, a.Interval, func(r rune) string { return string(r) })
}

// PacedStyledText prints Content one rune at a time like PacedText.
// The style is applied to every rune on its own, so a partially flushed line
// never loses its attributes.
type PacedStyledText struct {
	Content  StyledText
	Interval time.Duration
}

// TypeStyled builds a PacedStyledText.
func TypeStyled(text string, style Styler, interval time.Duration) PacedStyledText {
	return PacedStyledText{Content: Styled(text, style), Interval: interval}
}

func (a PacedStyledText) Render(t ports.Terminal, s ports.Sleeper) error {
	if a.Interval < 0 {
		return fmt.Errorf("paced styled text interval %v: %w", a.Interval, ErrNegativeDuration)
	}
	return pace(t, s, a.Content.Text, a.Interval, a.Content.Glyph)
}

// WaitForInteraction blocks until Enter, Right or Space is pressed.
// Every other event is discarded. When Interruptible is set, Ctrl+C returns
// ErrInterrupted instead of being discarded.
type WaitForInteraction struct {
	Interruptible bool
}

func (a WaitForInteraction) Render(t ports.Terminal, _ ports.Sleeper) error {
	if err := t.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return withRaw(t, func() error {
		for {
			ev, err := t.ReadEvent()
			if err != nil {
				return fmt.Errorf("read event: %w", err)
			}
			if qualifies(ev) {
				return nil
			}
			if a.Interruptible && ev.IsKey(ports.KeyCtrlC) {
				return ErrInterrupted
			}
		}
	})
}

func qualifies(ev ports.Event) bool {
	if ev.IsKey(qualifyingKeys...) {
		return true
	}
	return ev.IsKey(ports.KeyRune) && ev.Rune == ' '
}

// WaitFor blocks for Duration without producing output.
type WaitFor struct {
	Duration time.Duration
}

func (a WaitFor) Render(t ports.Terminal, s ports.Sleeper) error {
	if a.Duration < 0 {
		return fmt.Errorf("wait duration %v: %w", a.Duration, ErrNegativeDuration)
	}
	if err := t.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return withRaw(t, func() error {
		s.Sleep(a.Duration)
		return nil
	})
}

// Raw passes Command through to the terminal untouched.
type Raw struct {
	Command ports.Command
}

func (a Raw) Render(t ports.Terminal, _ ports.Sleeper) error {
	if a.Command == nil {
		return ErrNilCommand
	}
	return a.Command.Apply(t)
}

func (PacedText) isAction()          {}
func (PacedStyledText) isAction()    {}
func (WaitForInteraction) isAction() {}
func (WaitFor) isAction()            {}
func (Raw) isAction()                {}

// Name returns a short, stable label for a, used in logs and errors.
func Name(a Action) string {
	switch a.(type) {
	case PacedText:
		return "paced_text"
	case PacedStyledText:
		return "paced_styled_text"
	case WaitForInteraction:
		return "wait_for_interaction"
	case WaitFor:
		return "wait_for"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("%T", a)
	}
}

// pace writes text one glyph per rune. Each rune is flushed, then the sleep
// runs inside a raw mode scope.
func pace(t ports.Terminal, s ports.Sleeper, text string, interval time.Duration, glyph func(rune) string) error {
	for _, r := range text {
		if err := t.Write(glyph(r)); err != nil {
			return fmt.Errorf("write %q: %w", r, err)
		}
		if err := t.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		if err := withRaw(t, func() error {
			s.Sleep(interval)
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
