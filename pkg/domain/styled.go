package domain

import "strings"

// Styler applies display attributes to a string.
// termenv.Style satisfies it.
type Styler interface {
	Styled(s string) string
}

// StyledText is text paired with the style it is displayed in.
type StyledText struct {
	Text  string
	Style Styler
}

// Styled pairs text with a style.
func Styled(text string, style Styler) StyledText {
	return StyledText{Text: text, Style: style}
}

// Glyph returns r wrapped in the text's style.
func (s StyledText) Glyph(r rune) string {
	if s.Style == nil {
		return string(r)
	}
	return s.Style.Styled(string(r))
}

// String renders the whole text the way PacedStyledText emits it, one styled
// glyph per rune.
func (s StyledText) String() string {
	var b strings.Builder
	for _, r := range s.Text {
		b.WriteString(s.Glyph(r))
	}
	return b.String()
}
