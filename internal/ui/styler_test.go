package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseUnicode(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		roxterm   bool
		noUnicode bool
		want      bool
	}{
		{name: "modern terminal", term: "xterm-256color", want: true},
		{name: "linux console", term: "linux", want: false},
		{name: "plain xterm", term: "xterm", want: false},
		{name: "xterm inside roxterm", term: "xterm", roxterm: true, want: true},
		{name: "opt out wins", term: "xterm-256color", noUnicode: true, want: false},
		{name: "opt out wins over roxterm", term: "xterm", roxterm: true, noUnicode: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UseUnicode(tt.term, tt.roxterm, tt.noUnicode))
		})
	}
}

func TestColorProfile(t *testing.T) {
	tests := []struct {
		term      string
		colorTerm string
		want      termenv.Profile
	}{
		{term: "xterm-256color", colorTerm: "truecolor", want: termenv.TrueColor},
		{term: "xterm", colorTerm: "24bit", want: termenv.TrueColor},
		{term: "screen-256color", want: termenv.ANSI256},
		{term: "xterm", want: termenv.ANSI},
		{term: "linux", want: termenv.ANSI},
		{term: "dumb", want: termenv.Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.term+"/"+tt.colorTerm, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorProfile(tt.term, tt.colorTerm))
		})
	}
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, "fancy", PaletteFor(termenv.TrueColor).Name)
	assert.Equal(t, "fancy", PaletteFor(termenv.ANSI256).Name)
	assert.Equal(t, "basic", PaletteFor(termenv.ANSI).Name)
	assert.Equal(t, "basic", PaletteFor(termenv.Ascii).Name)
}

func TestPalettesCoverEveryRole(t *testing.T) {
	roles := []Role{RoleUserHost, RoleGit, RoleCwd, RoleJobs, RoleClock, RoleContainer}
	for _, p := range []Palette{FancyPalette, BasicPalette} {
		for _, r := range roles {
			assert.NotEmpty(t, p.Color(r), "%s palette missing role %d", p.Name, r)
		}
	}
}

func TestIcons(t *testing.T) {
	uni := Icons(true)
	plain := Icons(false)

	assert.True(t, uni.Unicode())
	assert.False(t, plain.Unicode())
	assert.Same(t, uni, Icons(true), "icon sets are shared")

	assert.Equal(t, "~", plain.Get(GlyphHome))
	assert.Equal(t, "GIT", plain.Get(GlyphGit))
	assert.Equal(t, "", plain.Get(GlyphWatch))
	assert.Equal(t, "\ue725", uni.Get(GlyphGit))

	for _, set := range []*IconSet{uni, plain} {
		assert.Equal(t, 1, VisibleLength(set.Get(GlyphTruncated)),
			"truncation glyph must be exactly one character")
	}
}

func TestRoundStyler_Bar(t *testing.T) {
	s := NewStyler(true, termenv.ANSI256)
	require.True(t, s.Unicode())

	bar := s.Bar("alice@box", RoleUserHost)

	assert.Equal(t, "\ue0b6alice@box\ue0b4", ansi.Strip(bar))
	assert.Equal(t, len([]rune("alice@box"))+2, VisibleLength(bar))
	assert.Contains(t, bar, "48;5;170", "fancy palette background")
}

func TestSquareStyler_Bar(t *testing.T) {
	s := NewStyler(false, termenv.ANSI)
	require.False(t, s.Unicode())

	bar := s.Bar("~/src", RoleCwd)

	assert.Equal(t, " ~/src ", ansi.Strip(bar))
	assert.Equal(t, 7, VisibleLength(bar))
	assert.Contains(t, bar, "\x1b[", "basic palette still colors")
	assert.Contains(t, bar, "7", "basic palette uses reverse video")
}

func TestStyler_AsciiProfileHasNoEscapes(t *testing.T) {
	s := NewStyler(false, termenv.Ascii)

	bar := s.Bar("x", RoleClock)

	assert.Equal(t, " x ", bar)
}

func TestStyler_BarLengthMatchesAcrossModes(t *testing.T) {
	text := "GIT main |M |"
	for _, unicode := range []bool{true, false} {
		s := NewStyler(unicode, termenv.TrueColor)
		assert.Equal(t, len(text)+2, VisibleLength(s.Bar(text, RoleGit)))
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "plain", in: "hello", want: 5},
		{name: "sgr stripped", in: "\x1b[30;48;5;71mhi\x1b[0m", want: 2},
		{name: "nerd glyph is one", in: "\uf46d/src", want: 5},
		{name: "empty", in: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleLength(tt.in))
		})
	}
}

func TestTailRunes(t *testing.T) {
	assert.Equal(t, "def", TailRunes("abcdef", 3))
	assert.Equal(t, "abc", TailRunes("abc", 10))
	assert.Equal(t, "", TailRunes("abc", 0))
	assert.Equal(t, "", TailRunes("abc", -2))
	assert.Equal(t, "\uf461<p>", TailRunes("\uf46d\uf461<p>", 4))
	assert.True(t, strings.HasPrefix(TailRunes("é~/é", 2), "/"))
}
