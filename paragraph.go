package paragraph

import (
	"github.com/gogpu/paragraph/recording"
	"github.com/gogpu/paragraph/textlayout"
)

// Paragraph is a laid-out block of styled text ready for measurement,
// hit-testing, and painting. It owns the layout engine's paragraph
// result and the paint descriptor list its styles reference.
//
// A Paragraph is not safe for concurrent use: Layout must not race any
// query or paint call on the same instance.
type Paragraph struct {
	engine *textlayout.Paragraph
	paints []recording.Paint

	// lineMetrics is computed on first request and reused until the
	// next Layout. The host styles its run metrics point at are kept in
	// lineMetricsStyles; each is allocated individually so the pointers
	// stay stable for as long as callers hold them.
	lineMetrics       []LineMetrics
	lineMetricsStyles []*TextStyle
}

// Layout wraps and positions the text within the given width. The line
// metrics cache and the style copies derived from it are invalidated
// first. Layout must be called before any metric, query, or paint
// operation is meaningful.
func (p *Paragraph) Layout(width float64) error {
	p.lineMetrics = nil
	p.lineMetricsStyles = nil
	return p.engine.Layout(width)
}

// MaxWidth returns the width the paragraph was laid out with.
func (p *Paragraph) MaxWidth() float64 { return p.engine.MaxWidth() }

// Height returns the total height of all laid-out lines.
func (p *Paragraph) Height() float64 { return p.engine.Height() }

// LongestLine returns the width of the widest laid-out line.
func (p *Paragraph) LongestLine() float64 { return p.engine.LongestLine() }

// MinIntrinsicWidth returns the narrowest width at which no legal break
// opportunity is overflowed.
func (p *Paragraph) MinIntrinsicWidth() float64 { return p.engine.MinIntrinsicWidth() }

// MaxIntrinsicWidth returns the width the text would occupy with no
// line wrapping at all.
func (p *Paragraph) MaxIntrinsicWidth() float64 { return p.engine.MaxIntrinsicWidth() }

// AlphabeticBaseline returns the distance from the paragraph top to the
// first line's alphabetic baseline.
func (p *Paragraph) AlphabeticBaseline() float64 { return p.engine.AlphabeticBaseline() }

// IdeographicBaseline returns the distance from the paragraph top to
// the first line's ideographic baseline.
func (p *Paragraph) IdeographicBaseline() float64 { return p.engine.IdeographicBaseline() }

// DidExceedMaxLines reports whether the text did not fit into the
// paragraph's line cap.
func (p *Paragraph) DidExceedMaxLines() bool { return p.engine.DidExceedMaxLines() }

// LineCount returns the number of laid-out lines.
func (p *Paragraph) LineCount() int { return p.engine.LineCount() }

// GetLineMetrics returns per-line metric records carrying per-run style
// and font-metric pairs. The result is computed on first call after a
// Layout and the same slice is returned until the next Layout. The
// *TextStyle pointers in RunMetrics stay valid for as long as the
// caller holds them.
func (p *Paragraph) GetLineMetrics() []LineMetrics {
	if p.lineMetrics != nil {
		return p.lineMetrics
	}

	engineMetrics := p.engine.GetLineMetrics()
	metrics := make([]LineMetrics, len(engineMetrics))
	for i := range engineMetrics {
		em := &engineMetrics[i]
		lm := LineMetrics{
			StartIndex:             em.StartIndex,
			EndIndex:               em.EndIndex,
			EndExcludingWhitespace: em.EndExcludingWhitespace,
			EndIncludingNewline:    em.EndIncludingNewline,
			HardBreak:              em.HardBreak,
			Ascent:                 em.Ascent,
			Descent:                em.Descent,
			UnscaledAscent:         em.UnscaledAscent,
			Height:                 em.Height,
			Width:                  em.Width,
			Left:                   em.Left,
			Baseline:               em.Baseline,
			LineNumber:             em.LineNumber,
			RunMetrics:             make(map[int]StyleMetrics, len(em.RunMetrics)),
		}
		for start, rm := range em.RunMetrics {
			style := styleFromEngine(rm.Style, p.paints)
			p.lineMetricsStyles = append(p.lineMetricsStyles, style)
			lm.RunMetrics[start] = StyleMetrics{
				Style:       style,
				FontMetrics: FontMetrics(rm.FontMetrics),
			}
		}
		metrics[i] = lm
	}

	p.lineMetrics = metrics
	return p.lineMetrics
}

// GetRectsForRange returns the bounding boxes covering the half-open
// rune range [start, end), one or more per line touched by the range,
// each tagged with the resolved direction of its text.
func (p *Paragraph) GetRectsForRange(start, end int, heightStyle RectHeightStyle, widthStyle RectWidthStyle) []TextBox {
	boxes := p.engine.GetRectsForRange(start, end, engineHeightStyle(heightStyle), engineWidthStyle(widthStyle))
	return boxesFromEngine(boxes)
}

// GetRectsForPlaceholders returns one box per placeholder added when
// the paragraph was built, in insertion order.
func (p *Paragraph) GetRectsForPlaceholders() []TextBox {
	return boxesFromEngine(p.engine.GetRectsForPlaceholders())
}

// GetGlyphPositionAtCoordinate returns the rune position whose caret is
// closest to the given paragraph-relative coordinate.
func (p *Paragraph) GetGlyphPositionAtCoordinate(x, y float64) PositionWithAffinity {
	pos := p.engine.GetGlyphPositionAtCoordinate(x, y)
	return PositionWithAffinity{
		Position: pos.Position,
		Affinity: affinityFromEngine(pos.Affinity),
	}
}

// GetWordBoundary returns the half-open rune range of the word
// containing offset.
func (p *Paragraph) GetWordBoundary(offset int) Range {
	r := p.engine.GetWordBoundary(offset)
	return Range{Start: r.Start, End: r.End}
}

// Paint records the paragraph's content into the builder with the
// paragraph origin at (x, y). It reports whether anything was painted;
// painting before a successful Layout is a no-op.
func (p *Paragraph) Paint(builder *recording.Builder, x, y float64) bool {
	painter := &displayListPainter{builder: builder, paints: p.paints}
	return p.engine.Paint(painter, x, y)
}
