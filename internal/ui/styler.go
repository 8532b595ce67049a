package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler draws glyphs and colored bars for one terminal capability set.
type Styler interface {
	// Glyph returns the display string for g.
	Glyph(g Glyph) string
	// Bar wraps text in a colored bar for role.
	Bar(text string, role Role) string
	// Unicode reports whether Nerd Font glyphs are in use.
	Unicode() bool
}

// NewStyler returns the round-capped styler when unicode is true and the
// square one otherwise. The palette follows the color profile.
func NewStyler(unicode bool, profile termenv.Profile) Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	base := painter{renderer: r, palette: PaletteFor(profile)}
	if unicode {
		return &roundStyler{painter: base, icons: Icons(true)}
	}
	return &squareStyler{painter: base, icons: Icons(false)}
}

// painter holds the renderer and palette shared by both stylers.
type painter struct {
	renderer *lipgloss.Renderer
	palette  Palette
}

// block renders text as a solid block in the role color.
func (p painter) block(text string, role Role) string {
	c := p.palette.Color(role)
	style := p.renderer.NewStyle()
	if p.palette.reverse {
		style = style.Foreground(c).Reverse(true)
	} else {
		style = style.Foreground(colorBlack).Background(c)
	}
	return style.Render(text)
}

// fg renders text in the role color on the default background.
func (p painter) fg(text string, role Role) string {
	if text == "" {
		return ""
	}
	return p.renderer.NewStyle().Foreground(p.palette.Color(role)).Render(text)
}

// roundStyler caps each bar with half-circle glyphs.
type roundStyler struct {
	painter
	icons *IconSet
}

func (s *roundStyler) Glyph(g Glyph) string { return s.icons.Get(g) }
func (s *roundStyler) Unicode() bool        { return true }

func (s *roundStyler) Bar(text string, role Role) string {
	return s.fg(s.icons.Get(GlyphSemiLeft), role) +
		s.block(text, role) +
		s.fg(s.icons.Get(GlyphSemiRight), role)
}

// squareStyler pads each bar with a space on either side.
type squareStyler struct {
	painter
	icons *IconSet
}

func (s *squareStyler) Glyph(g Glyph) string { return s.icons.Get(g) }
func (s *squareStyler) Unicode() bool        { return false }

func (s *squareStyler) Bar(text string, role Role) string {
	return s.block(" "+text+" ", role)
}
