package cli

import (
	"time"

	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/runner"
	"github.com/aretw0/slideshow/pkg/terminal"
)

const demoLogo = `
     _ _     _
 ___| (_) __| | ___  ___
/ __| | |/ _` + "`" + ` |/ _ \/ __|
\__ \ | | (_| |  __/\__ \
|___/_|_|\__,_|\___||___/

`

const demoPicture = `
   .--------------------------.
   | $ slideshow run          |
   |                          |
   |   Hello from a slide!_   |
   |                          |
   '--------------------------'
        \_______  _______/
              [____]
`

// DemoSlides builds the built-in presentation shown by "slideshow demo".
// Styles and colors follow the profile of term.
func DemoSlides(term *terminal.Terminal, wait domain.WaitForInteraction) []runner.Slide {
	italic := term.Style().Italic()
	accent := term.Style().Bold().Foreground(term.Color("#818cf8"))
	faint := term.Style().Faint()

	return []runner.Slide{
		{
			domain.Type("Introducing...\n\n", 100*time.Millisecond),
			domain.Type(demoLogo, 2*time.Millisecond),
			domain.Type("A small library for building presentations that run in a terminal.\n\n", 50*time.Millisecond),
			domain.TypeStyled("(Press enter to go to the next slide.)", italic, 10*time.Millisecond),
		},
		{
			domain.Type("\nTerminal presentations are like the slides you would make in any presentation tool, "+
				"except they all run in a terminal!\n\n", 20*time.Millisecond),
			domain.Type("Since this is a terminal you can only print text. You can still do something like this:\n", 20*time.Millisecond),
			wait,
			terminal.HideCursor(),
			domain.Type(demoPicture, time.Millisecond),
			terminal.ShowCursor(),
		},
		{
			domain.Type("\nText can be ", 20*time.Millisecond),
			domain.TypeStyled("styled", accent, 80*time.Millisecond),
			domain.Type(" one character at a time, ", 20*time.Millisecond),
			domain.WaitFor{Duration: 500 * time.Millisecond},
			domain.Type("or printed at once:\n\n", 20*time.Millisecond),
			terminal.PrintStyled("  Every slide clears the screen, plays its actions and waits for Enter, Space or Right.\n", faint),
		},
		{
			domain.Type("\nThat's all. Write your own deck and play it with ", 20*time.Millisecond),
			domain.TypeStyled("slideshow run --deck talk.yaml", accent, 20*time.Millisecond),
			domain.Type(".\n", 20*time.Millisecond),
		},
	}
}
