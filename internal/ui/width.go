package ui

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLength counts the characters of s that reach the screen,
// ignoring escape sequences. Nerd Font glyphs count as one character.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(ansi.Strip(s))
}

// TailRunes returns the last n characters of s. It never splits a
// multi-byte character.
func TailRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[len(runes)-n:])
}
