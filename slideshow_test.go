package slideshow_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/slideshow"
	"github.com/aretw0/slideshow/internal/testutils"
	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/aretw0/slideshow/pkg/runner"
	"github.com/aretw0/slideshow/pkg/terminal"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_Slide(t *testing.T) {
	term := testutils.NewTerminal(ports.KeyEvent(ports.KeyEnter), ports.KeyEvent(ports.KeySpace))
	sleeper := term.Sleeper()
	p := slideshow.New(slideshow.WithTerminal(term), slideshow.WithSleeper(sleeper))

	ctx := context.Background()
	require.NoError(t, p.Slide(ctx,
		slideshow.Type("Welcome to my presentation on ", 25*time.Millisecond),
		slideshow.TypeStyled("command line presentations", p.Style().Bold(), 50*time.Millisecond),
		slideshow.Print("."),
	))
	assert.Equal(t, "Welcome to my presentation on command line presentations.", term.Screen())

	require.NoError(t, p.Slide(ctx, slideshow.Type("...there isn't much content on these slides.", 25*time.Millisecond)))
	assert.Equal(t, "...there isn't much content on these slides.", term.Screen())
	assert.Empty(t, term.Events)
	assert.NoError(t, p.Close())
}

func TestPresenter_Present(t *testing.T) {
	term := testutils.NewTerminal(ports.KeyEvent(ports.KeyEnter))
	p := slideshow.New(slideshow.WithTerminal(term), slideshow.WithSleeper(term.Sleeper()))

	err := p.Present(t.Context(),
		runner.Slide{slideshow.WaitFor(time.Second)},
		runner.Slide{slideshow.Type("never waited on", 0)},
	)

	var slideErr *runner.SlideError
	require.ErrorAs(t, err, &slideErr)
	assert.Equal(t, 1, slideErr.Index, "the second slide runs out of input")
}

func TestPresenter_Interruptible(t *testing.T) {
	term := testutils.NewTerminal(ports.KeyEvent(ports.KeyCtrlC))
	p := slideshow.New(
		slideshow.WithTerminal(term),
		slideshow.WithSleeper(term.Sleeper()),
		slideshow.WithInterruptible(true),
	)

	err := p.Slide(t.Context(), slideshow.WaitForInteraction())
	assert.ErrorIs(t, err, domain.ErrInterrupted)
	assert.False(t, term.Raw())
}

func TestPresenter_InterruptibleInlineWait(t *testing.T) {
	enter := ports.KeyEvent(ports.KeyEnter)
	term := testutils.NewTerminal(ports.KeyEvent(ports.KeyCtrlC), enter, enter)
	p := slideshow.New(
		slideshow.WithTerminal(term),
		slideshow.WithSleeper(term.Sleeper()),
		slideshow.WithInterruptible(true),
	)

	err := p.Slide(t.Context(), slideshow.Print("before"), slideshow.WaitForInteraction(), slideshow.Print("after"))
	require.ErrorIs(t, err, domain.ErrInterrupted)
	assert.Equal(t, "before", term.Screen())
	assert.Len(t, term.Events, 2)
}

func TestPresenter_ClearOnError(t *testing.T) {
	boom := errors.New("boom")
	term := testutils.NewTerminal()
	p := slideshow.New(
		slideshow.WithTerminal(term),
		slideshow.WithSleeper(term.Sleeper()),
		slideshow.WithClearOnError(true),
	)

	err := p.Slide(t.Context(),
		slideshow.Type("partial", 0),
		domain.Raw{Command: ports.CommandFunc(func(ports.Terminal) error { return boom })},
	)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, term.Screen())
}

func TestPresenter_RealTerminal(t *testing.T) {
	var out bytes.Buffer
	term := terminal.New(strings.NewReader("x\r"), &out, terminal.WithProfile(termenv.ANSI))
	p := slideshow.New(slideshow.WithTerminal(term), slideshow.WithSleeper(ports.SleeperFunc(func(time.Duration) {})))

	require.NoError(t, p.Slide(t.Context(),
		slideshow.Type("hi ", time.Millisecond),
		slideshow.TypeStyled("there", p.Style().Italic(), time.Millisecond),
	))
	require.NoError(t, p.Close())

	assert.True(t, strings.HasPrefix(out.String(), "\x1b[2J\x1b[1;1H"))
	assert.Equal(t, "hi there", ansi.Strip(strings.TrimPrefix(out.String(), "\x1b[2J\x1b[1;1H")))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(slideshow.Version))
}
