package textlayout

import (
	"strings"

	"github.com/benoitkugler/textprocessing/pango"
)

// bidiControls strips explicit bidi embedding controls before attribute
// computation, which does not expect them, replacing each with a
// zero-width space to keep offsets stable.
var bidiControls = strings.NewReplacer(
	"‪", "​",
	"‫", "​",
	"‬", "​",
	"‭", "​",
	"‮", "​",
)

// charAttrs holds per-position text attributes for one paragraph of
// text: word boundaries and line break opportunities. Position i
// describes the boundary before rune i; there is one extra position
// past the end of the text.
type charAttrs struct {
	attrs []pango.CharAttr
}

// computeCharAttrs runs Unicode segmentation over the whole text.
func computeCharAttrs(text []rune) charAttrs {
	sanitized := []rune(bidiControls.Replace(string(text)))
	return charAttrs{attrs: pango.ComputeCharacterAttributes(sanitized, -1)}
}

// wordBoundaryAt returns the boundaries of the word-segmentation unit
// containing the given rune offset. Whitespace and punctuation between
// words form units of their own, so the result always satisfies
// Start <= offset < End for in-range offsets.
func (c charAttrs) wordBoundaryAt(offset int) Range {
	n := len(c.attrs) - 1 // number of runes
	if n <= 0 {
		return Range{}
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= n {
		offset = n - 1
	}

	out := Range{Start: 0, End: n}
	for i := offset; i >= 0; i-- {
		if c.attrs[i].IsWordBoundary() {
			out.Start = i
			break
		}
	}
	for i := offset + 1; i <= n; i++ {
		if c.attrs[i].IsWordBoundary() {
			out.End = i
			break
		}
	}
	return out
}

// canBreakBefore reports whether a line break opportunity exists before
// rune i.
func (c charAttrs) canBreakBefore(i int) bool {
	if i <= 0 || i >= len(c.attrs) {
		return false
	}
	return c.attrs[i].IsLineBreak()
}
