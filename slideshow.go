package slideshow

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/slideshow/internal/logging"
	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/aretw0/slideshow/pkg/runner"
	"github.com/aretw0/slideshow/pkg/terminal"
	"github.com/muesli/termenv"
)

// Action is one unit of terminal work within a slide.
type Action = domain.Action

// Presenter is the high-level entry point: it owns a terminal and shows
// slides on it, one at a time.
type Presenter struct {
	terminal ports.Terminal
	runner   *runner.Runner
	logger   *slog.Logger
}

type config struct {
	terminal      ports.Terminal
	sleeper       ports.Sleeper
	logger        *slog.Logger
	hooks         runner.Hooks
	clearOnError  bool
	interruptible bool
}

// Option defines a functional option for configuring the Presenter.
type Option func(*config)

// WithTerminal renders on t instead of the process stdin/stdout.
func WithTerminal(t ports.Terminal) Option {
	return func(c *config) {
		c.terminal = t
	}
}

// WithSleeper overrides the build-time default timer.
func WithSleeper(s ports.Sleeper) Option {
	return func(c *config) {
		c.sleeper = s
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks runner.Hooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithClearOnError clears the screen when a slide fails.
func WithClearOnError(enabled bool) Option {
	return func(c *config) {
		c.clearOnError = enabled
	}
}

// WithInterruptible lets Ctrl+C abort the wait at the end of each slide with
// domain.ErrInterrupted.
func WithInterruptible(enabled bool) Option {
	return func(c *config) {
		c.interruptible = enabled
	}
}

// New creates a Presenter. Without WithTerminal it uses stdin and stdout.
func New(opts ...Option) *Presenter {
	c := &config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.terminal == nil {
		c.terminal = terminal.Stdio()
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(c.logger),
		runner.WithHooks(c.hooks),
		runner.WithClearOnError(c.clearOnError),
		runner.WithInteraction(domain.WaitForInteraction{Interruptible: c.interruptible}),
	}
	if c.sleeper != nil {
		runnerOpts = append(runnerOpts, runner.WithSleeper(c.sleeper))
	}

	return &Presenter{
		terminal: c.terminal,
		runner:   runner.NewRunner(c.terminal, runnerOpts...),
		logger:   c.logger,
	}
}

// Slide shows one slide and returns once it was acknowledged or failed.
func (p *Presenter) Slide(ctx context.Context, actions ...Action) error {
	return p.runner.RunSlide(ctx, actions)
}

// Present shows slides in order and stops at the first failure.
func (p *Presenter) Present(ctx context.Context, slides ...runner.Slide) error {
	return p.runner.Present(ctx, slides...)
}

// Style returns an empty style bound to the terminal's color profile.
func (p *Presenter) Style() termenv.Style {
	if s, ok := p.terminal.(interface{ Style() termenv.Style }); ok {
		return s.Style()
	}
	return termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii)).String()
}

// Close restores the terminal if it supports restoring.
func (p *Presenter) Close() error {
	if r, ok := p.terminal.(interface{ Restore() error }); ok {
		if err := r.Restore(); err != nil {
			p.logger.Debug("terminal restore failed", "error", err)
			return err
		}
	}
	return nil
}

var (
	defaultOnce      sync.Once
	defaultPresenter *Presenter
)

// Slide shows one slide on the process terminal.
func Slide(actions ...Action) error {
	defaultOnce.Do(func() {
		defaultPresenter = New()
	})
	return defaultPresenter.Slide(context.Background(), actions...)
}

// Type paces the textual form of v at interval per character.
func Type(v any, interval time.Duration) Action {
	return domain.Type(v, interval)
}

// TypeStyled paces text in style at interval per character.
func TypeStyled(text string, style domain.Styler, interval time.Duration) Action {
	return domain.TypeStyled(text, style, interval)
}

// WaitFor pauses for d.
func WaitFor(d time.Duration) Action {
	return domain.WaitFor{Duration: d}
}

// WaitForInteraction blocks until Enter, Right or Space. On a presenter built
// WithInterruptible(true), Ctrl+C ends it with domain.ErrInterrupted.
func WaitForInteraction() Action {
	return domain.WaitForInteraction{}
}

// Print writes s immediately.
func Print(s string) Action {
	return terminal.Print(s)
}
