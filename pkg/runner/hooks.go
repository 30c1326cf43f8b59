package runner

import (
	"context"
	"time"

	"github.com/aretw0/slideshow/pkg/domain"
)

// SlideEvent describes a slide entering or leaving the runner.
type SlideEvent struct {
	Timestamp time.Time
	// Number counts the slides run by this Runner, starting at 1.
	Number  int
	Actions int
	Err     error // set on OnSlideEnd when the slide failed
}

// ActionEvent describes a failed action.
type ActionEvent struct {
	Timestamp time.Time
	Number    int
	Index     int
	Action    domain.Action
	Err       error
}

// Hooks are optional callbacks for runner observability.
// They run synchronously on the rendering goroutine.
type Hooks struct {
	OnSlideStart   func(context.Context, *SlideEvent)
	OnSlideEnd     func(context.Context, *SlideEvent)
	OnActionFailed func(context.Context, *ActionEvent)
}
