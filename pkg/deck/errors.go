package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a deck has no slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// ErrUnknownAction is returned for an action type the loader does not know.
var ErrUnknownAction = errors.New("unknown action type")

// ErrInvalidColor is returned for a color that is neither hex nor an ANSI index.
var ErrInvalidColor = errors.New("invalid color")

// ActionSpecError locates an invalid action inside a deck.
type ActionSpecError struct {
	Slide  int
	Action int
	Err    error
}

func (e *ActionSpecError) Error() string {
	return fmt.Sprintf("slide %d, action %d: %v", e.Slide+1, e.Action+1, e.Err)
}

func (e *ActionSpecError) Unwrap() error { return e.Err }
