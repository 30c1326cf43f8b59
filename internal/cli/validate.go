package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/slideshow/pkg/deck"
)

// Validate loads the deck at path and checks that every action builds.
// A short summary is written to w on success.
func Validate(path string, w io.Writer) error {
	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	slides, err := d.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	actions := 0
	for _, s := range slides {
		actions += len(s)
	}
	title := d.Title
	if title == "" {
		title = path
	}
	fmt.Fprintf(w, "%s: %d slides, %d actions\n", title, len(slides), actions)
	return nil
}
