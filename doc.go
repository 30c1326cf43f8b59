/*
Package slideshow renders command line presentations: sequences of terminal
slides typed out one character at a time.

A slide is an ordered list of actions. Showing a slide clears the screen,
renders each action in order and then waits for Enter, Right or Space before
returning. Any failure stops the slide and is returned to the caller.

# Usage

	package main

	import (
		"context"
		"log"
		"time"

		"github.com/aretw0/slideshow"
	)

	func main() {
		p := slideshow.New()
		defer p.Close()

		ctx := context.Background()
		bold := p.Style().Bold()

		err := p.Slide(ctx,
			slideshow.Type("Welcome to my presentation on ", 25*time.Millisecond),
			slideshow.TypeStyled("command line presentations", bold, 50*time.Millisecond),
			slideshow.Print("."),
		)
		if err != nil {
			log.Fatal(err)
		}

		err = p.Slide(ctx, slideshow.Type("...there isn't much content on these slides.", 25*time.Millisecond))
		if err != nil {
			log.Fatal(err)
		}
	}

# Timing

Pacing sleeps through clock.Default. Build with "-tags precise" to swap in a
spinning sleeper that holds short intervals accurately.
*/
package slideshow
