package textlayout

import (
	"math"

	"github.com/go-text/typesetting/shaping"
)

// accumulateIntrinsics folds one segment's shaped outputs into the
// paragraph's intrinsic widths before wrapping mutates them. The max
// intrinsic width is the widest segment laid out without wrapping; the
// min intrinsic width is the widest span between two line break
// opportunities.
func (p *Paragraph) accumulateIntrinsics(outs []shaping.Output, seg textSegment) {
	total := 0.0
	word := 0.0

	for i := range outs {
		out := &outs[i]
		total += fixedToFloat(out.Advance)

		for _, cl := range logicalOutputClusters(out, seg.start) {
			if word > 0 && p.attrs.canBreakBefore(cl.runes.Start) {
				p.minIntrinsicWidth = math.Max(p.minIntrinsicWidth, word)
				word = 0
			}
			word += cl.width
		}
	}

	p.minIntrinsicWidth = math.Max(p.minIntrinsicWidth, word)
	p.maxIntrinsicWidth = math.Max(p.maxIntrinsicWidth, total)
}

// GetWordBoundary returns the rune range of the word-segmentation unit
// containing the given offset. Runs of whitespace and punctuation count
// as units of their own, so for any in-range offset the result brackets
// it: Start <= offset < End.
func (p *Paragraph) GetWordBoundary(offset int) Range {
	if len(p.text) == 0 {
		return Range{}
	}
	p.ensureAttrs()
	return p.attrs.wordBoundaryAt(offset)
}
