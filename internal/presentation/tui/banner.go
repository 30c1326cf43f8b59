package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`     _ _     _           _                   `, "#818cf8"},
	{` ___| (_) __| | ___  ___| |__   _____      __`, "#a78bfa"},
	{`/ __| | |/ _` + "`" + ` |/ _ \/ __| '_ \ / _ \ \ /\ / /`, "#c084fc"},
	{`\__ \ | | (_| |  __/\__ \ | | | (_) \ V  V / `, "#e879f9"},
	{`|___/_|_|\__,_|\___||___/_| |_|\___/ \_/\_/  `, "#f472b6"},
}

// PrintBanner writes the slideshow banner and version to w using profile p.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	out := termenv.NewOutput(w, termenv.WithProfile(p))

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w, out.String("  "+version).Faint())
	fmt.Fprintln(w)
}
