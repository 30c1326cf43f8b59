package domain_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aretw0/slideshow/internal/testutils"
	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacedText_Render(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		interval time.Duration
	}{
		{name: "ASCII", text: "hello", interval: 10 * time.Millisecond},
		{name: "Multibyte", text: "héllo ✓", interval: time.Millisecond},
		{name: "Zero interval", text: "ab\ncd", interval: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := testutils.NewTerminal()
			sleeper := term.Sleeper()

			err := domain.PacedText{Text: tt.text, Interval: tt.interval}.Render(term, sleeper)
			require.NoError(t, err)

			n := utf8.RuneCountInString(tt.text)
			assert.Equal(t, strings.Split(tt.text, ""), term.Writes(), "one write per rune, in order")
			assert.Len(t, sleeper.Durations, n)
			for _, d := range sleeper.Durations {
				assert.Equal(t, tt.interval, d)
			}
			assert.Equal(t, tt.text, term.Screen())
			assert.False(t, term.Raw(), "raw mode must be released after pacing")
		})
	}
}

func TestPacedText_Render_StepOrder(t *testing.T) {
	term := testutils.NewTerminal()

	err := domain.PacedText{Text: "h", Interval: 10 * time.Millisecond}.Render(term, term.Sleeper())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"write:h",
		testutils.CallFlush,
		testutils.CallIsRaw,
		testutils.CallEnableRaw,
		"sleep:10ms",
		testutils.CallIsRaw,
		testutils.CallDisableRaw,
	}, term.Calls)
}

func TestPacedText_Render_Empty(t *testing.T) {
	term := testutils.NewTerminal()
	sleeper := term.Sleeper()

	err := domain.PacedText{Text: "", Interval: time.Second}.Render(term, sleeper)
	require.NoError(t, err)

	assert.Empty(t, sleeper.Durations)
	assert.Empty(t, term.Calls)
}

func TestPacedText_Render_NegativeInterval(t *testing.T) {
	term := testutils.NewTerminal()

	err := domain.PacedText{Text: "x", Interval: -time.Millisecond}.Render(term, term.Sleeper())
	assert.ErrorIs(t, err, domain.ErrNegativeDuration)
	assert.Empty(t, term.Calls)
}

func TestType_UsesTextualForm(t *testing.T) {
	a := domain.Type(42, time.Millisecond)
	assert.Equal(t, "42", a.Text)

	a = domain.Type(time.Second, 0)
	assert.Equal(t, "1s", a.Text)
}

func TestPacedText_Render_FlushFailure(t *testing.T) {
	flushErr := errors.New("broken pipe")
	term := testutils.NewTerminal()
	flushes := 0
	term.Fail = func(call string) error {
		if call == testutils.CallFlush {
			flushes++
			if flushes == 2 {
				return flushErr
			}
		}
		return nil
	}
	sleeper := term.Sleeper()

	err := domain.PacedText{Text: "abc", Interval: time.Millisecond}.Render(term, sleeper)
	require.ErrorIs(t, err, flushErr)

	assert.Equal(t, []string{"a", "b"}, term.Writes(), "no rune is written after the failing flush")
	assert.Len(t, sleeper.Durations, 1)
	assert.False(t, term.Raw())
}

func TestPacedStyledText_RoundTrip(t *testing.T) {
	out := termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.TrueColor))
	style := out.String().Bold().Italic().Foreground(termenv.TrueColor.Color("#818cf8"))
	text := "command line presentations"

	plainTerm := testutils.NewTerminal()
	require.NoError(t, domain.PacedText{Text: text}.Render(plainTerm, plainTerm.Sleeper()))

	styledTerm := testutils.NewTerminal()
	styledSleeper := styledTerm.Sleeper()
	require.NoError(t, domain.TypeStyled(text, style, 0).Render(styledTerm, styledSleeper))

	styled := styledTerm.Writes()
	plain := plainTerm.Writes()
	require.Len(t, styled, len(plain))
	for i := range styled {
		assert.NotEqual(t, plain[i], styled[i], "each glyph carries its own style")
		assert.Equal(t, plain[i], ansi.Strip(styled[i]))
	}
	assert.Equal(t, plainTerm.Screen(), ansi.Strip(styledTerm.Screen()))
	assert.Len(t, styledSleeper.Durations, utf8.RuneCountInString(text))
}

func TestPacedStyledText_NilStyle(t *testing.T) {
	term := testutils.NewTerminal()

	err := domain.PacedStyledText{Content: domain.StyledText{Text: "ok"}}.Render(term, term.Sleeper())
	require.NoError(t, err)
	assert.Equal(t, "ok", term.Screen())
}

func TestStyledText_String(t *testing.T) {
	out := termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.ANSI))
	st := domain.Styled("hi", out.String().Bold())

	assert.Equal(t, st.Glyph('h')+st.Glyph('i'), st.String())
	assert.Equal(t, "hi", ansi.Strip(st.String()))
}

func TestWaitForInteraction_QualifyingKeys(t *testing.T) {
	tests := []struct {
		name  string
		event ports.Event
	}{
		{name: "Enter", event: ports.KeyEvent(ports.KeyEnter)},
		{name: "Right", event: ports.KeyEvent(ports.KeyRight)},
		{name: "Space", event: ports.KeyEvent(ports.KeySpace)},
		{name: "Space rune", event: ports.RuneEvent(' ')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := testutils.NewTerminal(
				ports.RuneEvent('q'),
				ports.KeyEvent(ports.KeyLeft),
				ports.Event{Type: ports.EventResize, Width: 80, Height: 24},
				ports.KeyEvent(ports.KeyEscape),
				tt.event,
				ports.KeyEvent(ports.KeyEnter),
			)

			err := domain.WaitForInteraction{}.Render(term, term.Sleeper())
			require.NoError(t, err)

			assert.Equal(t, 5, term.Count(testutils.CallRead), "returns on the first qualifying key")
			assert.Len(t, term.Events, 1, "events after the qualifying key are left unread")
			assert.False(t, term.Raw())
		})
	}
}

func TestWaitForInteraction_FlushesFirst(t *testing.T) {
	term := testutils.NewTerminal(ports.KeyEvent(ports.KeyEnter))

	require.NoError(t, domain.WaitForInteraction{}.Render(term, term.Sleeper()))
	require.NotEmpty(t, term.Calls)
	assert.Equal(t, testutils.CallFlush, term.Calls[0])
}

func TestWaitForInteraction_ReadError(t *testing.T) {
	term := testutils.NewTerminal(ports.RuneEvent('a'))

	err := domain.WaitForInteraction{}.Render(term, term.Sleeper())
	require.ErrorIs(t, err, io.EOF)
	assert.False(t, term.Raw(), "raw mode is released when the read fails")
}

func TestWaitForInteraction_CtrlC(t *testing.T) {
	t.Run("Ignored by default", func(t *testing.T) {
		term := testutils.NewTerminal(ports.KeyEvent(ports.KeyCtrlC), ports.KeyEvent(ports.KeyEnter))

		require.NoError(t, domain.WaitForInteraction{}.Render(term, term.Sleeper()))
		assert.Empty(t, term.Events)
	})

	t.Run("Interruptible", func(t *testing.T) {
		term := testutils.NewTerminal(ports.KeyEvent(ports.KeyCtrlC), ports.KeyEvent(ports.KeyEnter))

		err := domain.WaitForInteraction{Interruptible: true}.Render(term, term.Sleeper())
		assert.ErrorIs(t, err, domain.ErrInterrupted)
		assert.Len(t, term.Events, 1)
		assert.False(t, term.Raw())
	})
}

func TestWaitFor_Render(t *testing.T) {
	term := testutils.NewTerminal()
	sleeper := term.Sleeper()

	err := domain.WaitFor{Duration: 50 * time.Millisecond}.Render(term, sleeper)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{50 * time.Millisecond}, sleeper.Durations)
	assert.Empty(t, term.Writes())
	assert.Equal(t, testutils.CallFlush, term.Calls[0])
	assert.False(t, term.Raw())
}

func TestWaitFor_Render_Negative(t *testing.T) {
	term := testutils.NewTerminal()

	err := domain.WaitFor{Duration: -time.Second}.Render(term, term.Sleeper())
	assert.ErrorIs(t, err, domain.ErrNegativeDuration)
}

func TestRaw_Render(t *testing.T) {
	term := testutils.NewTerminal()
	cmd := ports.CommandFunc(func(t ports.Terminal) error {
		return t.Write("now")
	})

	require.NoError(t, domain.Raw{Command: cmd}.Render(term, term.Sleeper()))
	assert.Equal(t, []string{"write:now"}, term.Calls, "passthrough neither flushes nor toggles raw mode")

	assert.ErrorIs(t, domain.Raw{}.Render(term, term.Sleeper()), domain.ErrNilCommand)
}

func TestRawMode_AlreadyEnabled(t *testing.T) {
	m := new(testutils.MockTerminal)
	m.On("Flush").Return(nil)
	m.On("IsRaw").Return(true, nil)
	m.On("DisableRaw").Return(nil)

	err := domain.WaitFor{Duration: 0}.Render(m, ports.SleeperFunc(func(time.Duration) {}))
	require.NoError(t, err)

	m.AssertNotCalled(t, "EnableRaw")
	m.AssertNumberOfCalls(t, "IsRaw", 2)
	m.AssertCalled(t, "DisableRaw")
}

func TestRawMode_EnableFailure(t *testing.T) {
	enableErr := errors.New("not a tty")
	m := new(testutils.MockTerminal)
	m.On("Write", "x").Return(nil)
	m.On("Flush").Return(nil)
	m.On("IsRaw").Return(false, nil)
	m.On("EnableRaw").Return(enableErr)

	slept := false
	err := domain.PacedText{Text: "x"}.Render(m, ports.SleeperFunc(func(time.Duration) { slept = true }))

	assert.ErrorIs(t, err, enableErr)
	assert.False(t, slept, "no sleep happens without raw mode")
	m.AssertNotCalled(t, "DisableRaw")
}

func TestRawMode_ReleaseFailure(t *testing.T) {
	disableErr := errors.New("tcsetattr failed")
	m := new(testutils.MockTerminal)
	m.On("Flush").Return(nil)
	m.On("IsRaw").Return(false, nil).Once()
	m.On("EnableRaw").Return(nil)
	m.On("IsRaw").Return(true, nil).Once()
	m.On("DisableRaw").Return(disableErr)

	err := domain.WaitFor{Duration: time.Millisecond}.Render(m, ports.SleeperFunc(func(time.Duration) {}))
	assert.ErrorIs(t, err, disableErr)
	m.AssertExpectations(t)
}

func TestRawMode_ReadAndReleaseFailure(t *testing.T) {
	readErr := errors.New("read failed")
	disableErr := errors.New("restore failed")
	m := new(testutils.MockTerminal)
	m.On("Flush").Return(nil)
	m.On("IsRaw").Return(false, nil).Once()
	m.On("EnableRaw").Return(nil)
	m.On("ReadEvent").Return(ports.Event{}, readErr)
	m.On("IsRaw").Return(true, nil).Once()
	m.On("DisableRaw").Return(disableErr)

	err := domain.WaitForInteraction{}.Render(m, nil)
	assert.ErrorIs(t, err, readErr)
	assert.ErrorIs(t, err, disableErr)
}

func TestName(t *testing.T) {
	assert.Equal(t, "paced_text", domain.Name(domain.PacedText{}))
	assert.Equal(t, "paced_styled_text", domain.Name(domain.PacedStyledText{}))
	assert.Equal(t, "wait_for_interaction", domain.Name(domain.WaitForInteraction{}))
	assert.Equal(t, "wait_for", domain.Name(domain.WaitFor{}))
	assert.Equal(t, "raw", domain.Name(domain.Raw{}))
}
