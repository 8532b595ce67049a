package ui

// Glyph names a symbol drawn in the prompt.
type Glyph int

const (
	GlyphTruncated Glyph = iota
	GlyphSemiLeft
	GlyphSemiRight
	GlyphChevLeft
	GlyphChevRight
	GlyphWatch
	GlyphHome
	GlyphBookmark
	GlyphServer
	GlyphGit
	GlyphHourglass
	GlyphRunning
	GlyphContainer
)

// Nerd Font code points. They render as one cell in patched fonts.
var unicodeGlyphs = map[Glyph]string{
	GlyphTruncated: "\uf490", // flame
	GlyphSemiLeft:  "\ue0b6",
	GlyphSemiRight: "\ue0b4",
	GlyphChevLeft:  "\uf47d",
	GlyphChevRight: "\uf460",
	GlyphWatch:     "\uf49b",
	GlyphHome:      "\uf46d",
	GlyphBookmark:  "\uf461",
	GlyphServer:    "\uf472",
	GlyphGit:       "\ue725",
	GlyphHourglass: "\uf251",
	GlyphRunning:   "\uf04b",
	GlyphContainer: "\uf4b7",
}

// Empty strings mean "draw nothing". GlyphTruncated must stay one
// character wide so truncation lands on the exact terminal width.
var plainGlyphs = map[Glyph]string{
	GlyphTruncated: "<",
	GlyphSemiLeft:  "",
	GlyphSemiRight: "",
	GlyphChevLeft:  "<",
	GlyphChevRight: ">",
	GlyphWatch:     "",
	GlyphHome:      "~",
	GlyphBookmark:  "",
	GlyphServer:    "",
	GlyphGit:       "GIT",
	GlyphHourglass: "",
	GlyphRunning:   "R",
	GlyphContainer: "[]",
}

// IconSet is an immutable glyph table for one display mode.
type IconSet struct {
	glyphs  map[Glyph]string
	unicode bool
}

var (
	unicodeIcons = &IconSet{glyphs: unicodeGlyphs, unicode: true}
	plainIcons   = &IconSet{glyphs: plainGlyphs}
)

// Icons returns the shared icon set for the given mode.
func Icons(unicode bool) *IconSet {
	if unicode {
		return unicodeIcons
	}
	return plainIcons
}

// Get returns the display string for g, or "" if the set has none.
func (s *IconSet) Get(g Glyph) string {
	return s.glyphs[g]
}

// Unicode reports whether the set uses Nerd Font glyphs.
func (s *IconSet) Unicode() bool {
	return s.unicode
}
