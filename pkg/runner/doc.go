/*
Package runner implements the slide execution loop.

A Runner owns one terminal. RunSlide clears the screen, renders each action in
order, stops at the first failure, and finishes with a wait for a qualifying
keypress. Present runs slides one after another and stops at the first failing
slide.

# Usage

	r := runner.NewRunner(term,
		runner.WithSleeper(clock.Default()),
		runner.WithLogger(logger),
	)

	err := r.RunSlide(ctx, []domain.Action{
		domain.Type("Welcome to ", 25*time.Millisecond),
		domain.TypeStyled("slideshow", bold, 50*time.Millisecond),
	})
	if err != nil {
		log.Fatal(err)
	}

# Concurrency

RunSlide holds the runner's lock for the whole slide. Two goroutines sharing a
Runner queue up instead of interleaving on the terminal.
*/
package runner
