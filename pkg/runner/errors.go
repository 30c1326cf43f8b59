package runner

import (
	"fmt"

	"github.com/aretw0/slideshow/pkg/domain"
)

// ActionError reports the action that stopped a slide.
type ActionError struct {
	Index  int
	Action domain.Action
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %d (%s): %v", e.Index, domain.Name(e.Action), e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// SlideError reports the slide that stopped a presentation.
type SlideError struct {
	Index int
	Err   error
}

func (e *SlideError) Error() string {
	return fmt.Sprintf("slide %d: %v", e.Index, e.Err)
}

func (e *SlideError) Unwrap() error { return e.Err }
