package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/slideshow/internal/logging"
	"github.com/aretw0/slideshow/pkg/clock"
	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/ports"
)

// Slide is an ordered list of actions. The runner appends the trailing
// interaction wait itself.
type Slide []domain.Action

// Runner renders slides on a single terminal.
type Runner struct {
	terminal     ports.Terminal
	sleeper      ports.Sleeper
	logger       *slog.Logger
	hooks        Hooks
	clearOnError bool
	interaction  domain.WaitForInteraction

	mu    sync.Mutex
	count int
}

// NewRunner creates a Runner for t. Without options it sleeps with
// clock.Default and logs nowhere.
func NewRunner(t ports.Terminal, opts ...Option) *Runner {
	r := &Runner{
		terminal: t,
		sleeper:  clock.Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sleeper == nil {
		r.sleeper = clock.Default()
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	return r
}

// RunSlide clears the screen, renders actions in order and waits for a
// qualifying keypress. The first failing step ends the slide and its error is
// returned; later actions and the trailing wait never run.
//
// ctx is checked between actions. A running action is never interrupted.
func (r *Runner) RunSlide(ctx context.Context, actions []domain.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	number := r.count

	r.emitStart(ctx, number, len(actions))
	r.logger.Debug("slide started", "slide", number, "actions", len(actions))

	err := r.render(ctx, number, actions)
	if err != nil && r.clearOnError {
		if cerr := r.terminal.Clear(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("clear after failure: %w", cerr))
		}
	}

	r.emitEnd(ctx, number, len(actions), err)
	if err != nil {
		r.logger.Debug("slide failed", "slide", number, "error", err)
		return err
	}
	r.logger.Debug("slide finished", "slide", number)
	return nil
}

func (r *Runner) render(ctx context.Context, number int, actions []domain.Action) error {
	if err := r.terminal.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	for i, act := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if act == nil {
			return r.fail(ctx, number, i, act, errors.New("nil action"))
		}
		act = r.inherit(act)
		if err := act.Render(r.terminal, r.sleeper); err != nil {
			return r.fail(ctx, number, i, act, err)
		}
		r.logger.Debug("action rendered", "slide", number, "index", i, "action", domain.Name(act))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.interaction.Render(r.terminal, r.sleeper); err != nil {
		return fmt.Errorf("wait for interaction: %w", err)
	}
	return nil
}

// inherit makes inline interaction waits interruptible when the trailing
// wait is.
func (r *Runner) inherit(act domain.Action) domain.Action {
	if w, ok := act.(domain.WaitForInteraction); ok && r.interaction.Interruptible {
		w.Interruptible = true
		return w
	}
	return act
}

func (r *Runner) fail(ctx context.Context, number, index int, act domain.Action, err error) error {
	if r.hooks.OnActionFailed != nil {
		r.hooks.OnActionFailed(ctx, &ActionEvent{
			Timestamp: time.Now(),
			Number:    number,
			Index:     index,
			Action:    act,
			Err:       err,
		})
	}
	return &ActionError{Index: index, Action: act, Err: err}
}

// Present runs slides in order and stops at the first failing slide.
func (r *Runner) Present(ctx context.Context, slides ...Slide) error {
	for i, s := range slides {
		if err := r.RunSlide(ctx, s); err != nil {
			return &SlideError{Index: i, Err: err}
		}
	}
	return nil
}

func (r *Runner) emitStart(ctx context.Context, number, actions int) {
	if r.hooks.OnSlideStart == nil {
		return
	}
	r.hooks.OnSlideStart(ctx, &SlideEvent{Timestamp: time.Now(), Number: number, Actions: actions})
}

func (r *Runner) emitEnd(ctx context.Context, number, actions int, err error) {
	if r.hooks.OnSlideEnd == nil {
		return
	}
	r.hooks.OnSlideEnd(ctx, &SlideEvent{Timestamp: time.Now(), Number: number, Actions: actions, Err: err})
}
