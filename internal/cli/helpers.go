package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/slideshow/internal/logging"
	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/runner"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr to keep Stdout for the slides.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(nil, slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to w.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) runner.Hooks {
	return runner.Hooks{
		OnSlideStart: func(ctx context.Context, e *runner.SlideEvent) {
			logger.Debug("Enter Slide", "slide", e.Number, "actions", e.Actions)
		},
		OnSlideEnd: func(ctx context.Context, e *runner.SlideEvent) {
			if e.Err != nil {
				logger.Debug("Leave Slide (Error)", "slide", e.Number, "err", e.Err)
				return
			}
			logger.Debug("Leave Slide", "slide", e.Number)
		},
		OnActionFailed: func(ctx context.Context, e *runner.ActionEvent) {
			logger.Debug("Action Failed", "slide", e.Number, "index", e.Index, "action", domain.Name(e.Action), "err", e.Err)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, domain.ErrInterrupted) || errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

// slideNumber extracts the 1-based slide number from a presentation error.
func slideNumber(err error) (int, bool) {
	var se *runner.SlideError
	if errors.As(err, &se) {
		return se.Index + 1, true
	}
	return 0, false
}

func logCompletion(w io.Writer, slides int, err error, quiet bool, sig os.Signal) {
	if quiet {
		return
	}
	if err == nil {
		printSystemMessage(w, "Finished after %d slides.", slides)
		return
	}
	if !isInterrupted(err) {
		return
	}

	where := "presentation"
	if n, ok := slideNumber(err); ok {
		where = fmt.Sprintf("slide %d", n)
	}
	fmt.Fprintln(w)
	switch {
	case sig == os.Interrupt || sig == nil:
		printSystemMessage(w, "Interrupted at %s.", where)
	default:
		printSystemMessage(w, "Terminated at %s.", where)
	}
}
