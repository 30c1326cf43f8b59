package terminal

import (
	"fmt"

	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/muesli/termenv"
)

// Print writes s immediately, without pacing.
func Print(s string) domain.Raw {
	return raw(func(t ports.Terminal) error {
		if err := t.Write(s); err != nil {
			return err
		}
		return t.Flush()
	})
}

// Println writes s followed by a newline, without pacing.
func Println(s string) domain.Raw {
	return Print(s + "\n")
}

// PrintStyled writes the whole styled text immediately.
func PrintStyled(text string, style domain.Styler) domain.Raw {
	return Print(domain.Styled(text, style).String())
}

// ClearScreen erases the screen and homes the cursor.
func ClearScreen() domain.Raw {
	return raw(func(t ports.Terminal) error {
		return t.Clear()
	})
}

// MoveCursor places the cursor at row, col (1-based).
func MoveCursor(row, col int) domain.Raw {
	return sequence(cursorPosition(row, col))
}

// HideCursor hides the cursor.
func HideCursor() domain.Raw {
	return sequence(termenv.CSI + termenv.HideCursorSeq)
}

// ShowCursor shows the cursor.
func ShowCursor() domain.Raw {
	return sequence(termenv.CSI + termenv.ShowCursorSeq)
}

// Bell rings the terminal bell.
func Bell() domain.Raw {
	return sequence(fmt.Sprintf("%c", termenv.BEL))
}

func sequence(seq string) domain.Raw {
	return Print(seq)
}

func raw(fn func(ports.Terminal) error) domain.Raw {
	return domain.Raw{Command: ports.CommandFunc(fn)}
}
