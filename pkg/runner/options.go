package runner

import (
	"log/slog"

	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithSleeper configures the timer used by pacing and waits.
func WithSleeper(s ports.Sleeper) Option {
	return func(r *Runner) {
		r.sleeper = s
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// WithClearOnError clears the screen after a failed slide instead of leaving
// the partial output in place.
func WithClearOnError(enabled bool) Option {
	return func(r *Runner) {
		r.clearOnError = enabled
	}
}

// WithInteraction configures the wait appended to every slide.
// When it is interruptible, inline WaitForInteraction actions are too.
func WithInteraction(wait domain.WaitForInteraction) Option {
	return func(r *Runner) {
		r.interaction = wait
	}
}
