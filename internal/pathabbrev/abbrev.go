// Package pathabbrev shortens working-directory paths for display.
//
// Rules are applied in order to an accumulating string: each rule sees the
// path as rewritten by the rules before it and fires only if its prefix
// still matches. With the usual ordering (home, bookmarks, servers) this
// means a bookmark under $HOME never fires once the home rule has replaced
// the leading "/home/user".
//
// Applying the same rules to an already abbreviated string leaves it
// unchanged as long as every prefix is an absolute path. Prefixes that are
// themselves a prefix of a replacement (for example "<") are unsupported.
package pathabbrev

import (
	"strings"

	"github.com/drolfe/shell-prompt/internal/config"
	"github.com/drolfe/shell-prompt/internal/ui"
)

// Rule rewrites a literal path prefix into Left+Name+Right.
type Rule struct {
	Prefix string
	Name   string
	Left   string
	Right  string
}

// Apply runs rules over path in order.
func Apply(path string, rules []Rule) string {
	for _, r := range rules {
		path = ReplacePrefix(path, r)
	}
	return path
}

// ReplacePrefix rewrites s if it starts with r.Prefix. An empty prefix never matches.
func ReplacePrefix(s string, r Rule) string {
	if r.Prefix == "" || !strings.HasPrefix(s, r.Prefix) {
		return s
	}
	return r.Left + r.Name + r.Right + s[len(r.Prefix):]
}

// Brackets are the decorations placed around each kind of replacement.
type Brackets struct {
	HomeName  string
	HomeLeft  string
	HomeRight string

	BookmarkLeft  string
	BookmarkRight string

	ServerLeft  string
	ServerRight string
}

// IconBrackets decorates replacements with the styler's glyphs, for the prompt itself.
func IconBrackets(s ui.Styler) Brackets {
	left, right := s.Glyph(ui.GlyphChevLeft), s.Glyph(ui.GlyphChevRight)
	return Brackets{
		HomeName:      s.Glyph(ui.GlyphHome),
		HomeLeft:      left,
		HomeRight:     right,
		BookmarkLeft:  s.Glyph(ui.GlyphBookmark) + left,
		BookmarkRight: right,
		ServerLeft:    s.Glyph(ui.GlyphServer) + left,
		ServerRight:   right,
	}
}

// TitleBrackets decorates replacements with plain ASCII for the window
// title, where icon fonts are unreliable. Home becomes a bare "~".
func TitleBrackets() Brackets {
	plain := ui.Icons(false)
	left, right := plain.Get(ui.GlyphChevLeft), plain.Get(ui.GlyphChevRight)
	return Brackets{
		HomeName:      "~",
		BookmarkLeft:  plain.Get(ui.GlyphBookmark) + left,
		BookmarkRight: right,
		ServerLeft:    plain.Get(ui.GlyphServer) + left,
		ServerRight:   right,
	}
}

// Source holds the inputs rules are built from. Patterns in Bookmarks and
// Servers are interpolated with User and Home.
type Source struct {
	Home      string
	User      string
	Bookmarks []config.PathAlias
	Servers   []config.PathAlias
}

// Rules builds the ordered rule list: home, then bookmarks, then servers.
func Rules(src Source, b Brackets) []Rule {
	rules := make([]Rule, 0, 1+len(src.Bookmarks)+len(src.Servers))
	rules = append(rules, Rule{Prefix: src.Home, Name: b.HomeName, Left: b.HomeLeft, Right: b.HomeRight})
	for _, a := range config.Expand(src.Bookmarks, src.User, src.Home) {
		rules = append(rules, Rule{Prefix: a.Pattern, Name: a.Name, Left: b.BookmarkLeft, Right: b.BookmarkRight})
	}
	for _, a := range config.Expand(src.Servers, src.User, src.Home) {
		rules = append(rules, Rule{Prefix: a.Pattern, Name: a.Name, Left: b.ServerLeft, Right: b.ServerRight})
	}
	return rules
}
