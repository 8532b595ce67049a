package ui

import (
	"strings"

	"github.com/muesli/termenv"
)

// UseUnicode decides whether Nerd Font glyphs can be drawn.
// The Linux console and plain xterm lack the patched fonts unless the
// session runs inside roxterm; noUnicode always wins.
func UseUnicode(term string, roxterm, noUnicode bool) bool {
	if noUnicode {
		return false
	}
	return roxterm || (term != "linux" && term != "xterm")
}

// ColorProfile picks the color depth from TERM and COLORTERM.
// Stdout is a pipe when the shell captures the prompt, so the usual
// isatty-based detection would always report no color.
func ColorProfile(term, colorTerm string) termenv.Profile {
	switch strings.ToLower(colorTerm) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}
	switch {
	case term == "dumb":
		return termenv.Ascii
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}

// PaletteFor returns the fancy palette on 256-color capable profiles.
func PaletteFor(p termenv.Profile) Palette {
	if p == termenv.TrueColor || p == termenv.ANSI256 {
		return FancyPalette
	}
	return BasicPalette
}
