package deck

import (
	"fmt"
	"io"

	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/runner"
	"github.com/aretw0/slideshow/pkg/terminal"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// ContentRenderer transforms markdown into terminal text.
type ContentRenderer func(string) (string, error)

// BuildOption configures how a deck becomes slides.
type BuildOption func(*builder)

type builder struct {
	profile  termenv.Profile
	markdown ContentRenderer
	wait     domain.WaitForInteraction
}

// WithProfile sets the color profile styles are rendered for.
func WithProfile(p termenv.Profile) BuildOption {
	return func(b *builder) {
		b.profile = p
	}
}

// WithMarkdownRenderer sets the renderer used by markdown actions.
// Without one, markdown text is shown as written.
func WithMarkdownRenderer(r ContentRenderer) BuildOption {
	return func(b *builder) {
		b.markdown = r
	}
}

// WithInteraction sets the wait used by interact actions.
func WithInteraction(w domain.WaitForInteraction) BuildOption {
	return func(b *builder) {
		b.wait = w
	}
}

// Build turns the deck into runnable slides.
func (d *Deck) Build(opts ...BuildOption) ([]runner.Slide, error) {
	b := &builder{profile: termenv.ANSI256}
	for _, opt := range opts {
		opt(b)
	}

	slides := make([]runner.Slide, 0, len(d.Slides))
	for i, s := range d.Slides {
		slide := make(runner.Slide, 0, len(s.Actions))
		for j, raw := range s.Actions {
			spec, err := DecodeAction(raw)
			if err != nil {
				return nil, &ActionSpecError{Slide: i, Action: j, Err: err}
			}
			act, err := b.action(spec)
			if err != nil {
				return nil, &ActionSpecError{Slide: i, Action: j, Err: err}
			}
			slide = append(slide, act)
		}
		slides = append(slides, slide)
	}
	return slides, nil
}

func (b *builder) action(spec ActionSpec) (domain.Action, error) {
	switch spec.Type {
	case TypeText:
		return domain.PacedText{Text: spec.Text, Interval: spec.Interval}, nil
	case TypeStyled:
		return domain.TypeStyled(spec.Text, b.style(spec.Style), spec.Interval), nil
	case TypePrint:
		return b.print(spec.Text, spec.Style), nil
	case TypePrintln:
		return b.print(spec.Text+"\n", spec.Style), nil
	case TypeWait:
		return domain.WaitFor{Duration: spec.Duration}, nil
	case TypeInteract:
		return b.wait, nil
	case TypeMarkdown:
		return b.renderMarkdown(spec)
	case TypeClear:
		return terminal.ClearScreen(), nil
	case TypeCursor:
		return terminal.MoveCursor(spec.Row, spec.Col), nil
	default:
		return nil, fmt.Errorf("%q: %w", spec.Type, ErrUnknownAction)
	}
}

func (b *builder) print(text string, style StyleSpec) domain.Action {
	if style.IsZero() {
		return terminal.Print(text)
	}
	return terminal.PrintStyled(text, b.style(style))
}

// renderMarkdown prints the rendered markdown at once, or paces it as plain
// text when an interval is set, since pacing would split escape sequences.
func (b *builder) renderMarkdown(spec ActionSpec) (domain.Action, error) {
	out := spec.Text
	if b.markdown != nil {
		rendered, err := b.markdown(spec.Text)
		if err != nil {
			return nil, fmt.Errorf("render markdown: %w", err)
		}
		out = rendered
	}
	if spec.Interval > 0 {
		return domain.PacedText{Text: ansi.Strip(out), Interval: spec.Interval}, nil
	}
	return terminal.Print(out), nil
}

func (b *builder) style(spec StyleSpec) termenv.Style {
	s := termenv.NewOutput(io.Discard, termenv.WithProfile(b.profile)).String()
	if spec.Bold {
		s = s.Bold()
	}
	if spec.Faint {
		s = s.Faint()
	}
	if spec.Italic {
		s = s.Italic()
	}
	if spec.Underline {
		s = s.Underline()
	}
	if spec.Blink {
		s = s.Blink()
	}
	if spec.Reverse {
		s = s.Reverse()
	}
	if spec.CrossOut {
		s = s.CrossOut()
	}
	if spec.Foreground != "" {
		s = s.Foreground(b.profile.Color(spec.Foreground))
	}
	if spec.Background != "" {
		s = s.Background(b.profile.Color(spec.Background))
	}
	return s
}
