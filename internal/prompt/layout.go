package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/drolfe/shell-prompt/internal/ui"
)

// Segment is the text and color role of one bar before styling.
type Segment struct {
	Text string
	Role ui.Role
}

// Layout is the ordered bar line. Flex indexes the segment that absorbs
// the difference between the natural width and the terminal width.
type Layout struct {
	Segments []Segment
	Flex     int
}

// Fit renders l so its visible width equals columns. Only the flex
// segment changes: it is right-padded with spaces when there is room, or
// cut from the front and marked with the truncation glyph when there is not.
//
// The result is exact for any columns at least three wider than the
// other bars combined. Narrower terminals overflow.
func Fit(l Layout, columns int, st ui.Styler) []string {
	bars := make([]string, len(l.Segments))
	for i, s := range l.Segments {
		bars[i] = st.Bar(s.Text, s.Role)
	}
	if l.Flex < 0 || l.Flex >= len(bars) {
		return bars
	}

	remainder := columns - ui.VisibleLength(strings.Join(bars, ""))
	if remainder == 0 {
		return bars
	}

	flex := l.Segments[l.Flex]
	text := flex.Text
	if remainder > 0 {
		text += strings.Repeat(" ", remainder)
	} else {
		text = truncateFront(text, utf8.RuneCountInString(text)+remainder, st.Glyph(ui.GlyphTruncated))
	}
	bars[l.Flex] = st.Bar(text, flex.Role)
	return bars
}

// truncateFront shortens text to width characters: the marker, a space,
// then the tail of text. The marker is one character wide.
func truncateFront(text string, width int, marker string) string {
	if width < 2 {
		return marker
	}
	return marker + " " + ui.TailRunes(text, width-2)
}
