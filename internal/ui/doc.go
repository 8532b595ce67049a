// Package ui draws the prompt's colored bars using the Lip Gloss library.
//
// # Components Overview
//
//	Styler      - Draws glyphs and bars for one terminal capability set
//	IconSet     - Nerd Font glyphs, or ASCII stand-ins for plain terminals
//	Palette     - Maps each bar role to a color
//	VisibleLength, TailRunes - Width helpers that ignore escape sequences
//
// # Stylers
//
// NewStyler picks one of two stylers once per run:
//
//	roundStyler  - Nerd Font glyphs, bars capped with half circles
//	squareStyler - ASCII glyphs, bars padded with a space on each side
//
// Both add exactly two visible characters around a bar's text, so layout
// code can compute widths without knowing which styler is active.
//
// # Color Scheme
//
// The palette follows the color profile reported by ColorProfile:
//
//	FancyPalette (256 colors)  - Black text on orchid, sky blue, sea green
//	                             and goldenrod blocks
//	BasicPalette (16 colors)   - Reverse video of magenta, cyan, green and
//	                             yellow
//
// The Ascii profile drops all escapes, which tests rely on to compare
// exact strings.
package ui
