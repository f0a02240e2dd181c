package textlayout

import (
	"math"
	"sort"

	"github.com/gogpu/paragraph/geom"
)

// GetRectsForRange returns boxes covering the glyphs of the rune range
// [start, end). A box never spans more than one line or one writing
// direction; adjacent boxes of the same direction on a line are merged.
func (p *Paragraph) GetRectsForRange(start, end int, hs RectHeightStyle, ws RectWidthStyle) []TextBox {
	if !p.laidOut || end <= start {
		return nil
	}
	target := Range{Start: start, End: end}

	var boxes []TextBox
	var lineFirst []int // index of each selected line's first box

	for i := range p.lines {
		ln := &p.lines[i]
		lineBoxes := p.lineRects(ln, i, target, hs)
		if len(lineBoxes) == 0 {
			continue
		}
		lineFirst = append(lineFirst, len(boxes))
		boxes = append(boxes, lineBoxes...)
	}

	if ws == WidthMax && len(lineFirst) > 2 {
		// Interior lines extend to their full line extent.
		for k := 1; k < len(lineFirst)-1; k++ {
			first, last := lineFirst[k], lineFirst[k+1]-1
			ln := p.lineContaining(boxes[first])
			if ln == nil {
				continue
			}
			boxes[first].Rect.MinX = ln.left
			boxes[last].Rect.MaxX = ln.left + ln.width
		}
	}
	return boxes
}

// lineContaining finds the line whose vertical band holds the box.
func (p *Paragraph) lineContaining(b TextBox) *line {
	for i := range p.lines {
		ln := &p.lines[i]
		if b.Rect.MinY >= ln.top()-ln.gap && b.Rect.MinY < ln.top()+ln.height() {
			return ln
		}
	}
	return nil
}

// lineRects computes the tight-width boxes of one line for the selected
// range.
func (p *Paragraph) lineRects(ln *line, lineIdx int, target Range, hs RectHeightStyle) []TextBox {
	// An empty line inside the range yields a zero-width box so callers
	// can still place a caret on it.
	if len(ln.runs) == 0 {
		if !target.Contains(ln.textRange.Start) && !(ln.hardBreak && target.Contains(ln.textRange.End)) {
			return nil
		}
		top, bottom := p.boxHeights(ln, lineIdx, nil, hs)
		return []TextBox{{
			Rect:      geom.NewRectFromPoints(ln.left, top, ln.left, bottom),
			Direction: p.pstyle.TextDirection,
		}}
	}

	var boxes []TextBox
	for i := range ln.runs {
		run := &ln.runs[i]
		covered := run.runes.Intersect(target)
		if covered.IsEmpty() {
			continue
		}

		x0, x1 := runExtent(run, covered)
		if x1 <= x0 {
			continue
		}
		top, bottom := p.boxHeights(ln, lineIdx, run, hs)
		left := ln.left + run.x + x0
		right := ln.left + run.x + x1
		boxes = append(boxes, TextBox{
			Rect:      geom.NewRectFromPoints(left, top, right, bottom),
			Direction: run.direction(),
		})
	}

	return mergeBoxes(boxes)
}

// runExtent computes the visual x interval of a rune range within a
// run, relative to the run origin. Partially covered clusters are
// divided proportionally by rune count.
func runExtent(run *lineRun, covered Range) (float64, float64) {
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	rtl := run.direction() == DirectionRTL

	for _, cl := range runClusters(run) {
		overlap := cl.runes.Intersect(covered)
		if overlap.IsEmpty() {
			continue
		}

		x0, x1 := cl.x, cl.x+cl.width
		if overlap != cl.runes && cl.runes.Len() > 0 {
			fracStart := float64(overlap.Start-cl.runes.Start) / float64(cl.runes.Len())
			fracEnd := float64(overlap.End-cl.runes.Start) / float64(cl.runes.Len())
			if rtl {
				x0 = cl.x + cl.width*(1-fracEnd)
				x1 = cl.x + cl.width*(1-fracStart)
			} else {
				x0 = cl.x + cl.width*fracStart
				x1 = cl.x + cl.width*fracEnd
			}
		}
		minX = math.Min(minX, x0)
		maxX = math.Max(maxX, x1)
	}

	if minX > maxX {
		return 0, 0
	}
	return minX, maxX
}

// boxHeights resolves the vertical extent of a box for the height
// style. run may be nil for empty lines.
func (p *Paragraph) boxHeights(ln *line, lineIdx int, run *lineRun, hs RectHeightStyle) (top, bottom float64) {
	top, bottom = ln.top(), ln.bottom()

	switch hs {
	case HeightTight:
		if run != nil && run.placeholder < 0 && run.ascent+run.descent > 0 {
			top = ln.baseline - run.ascent
			bottom = ln.baseline + run.descent
		}
	case HeightIncludeLineSpacingTop:
		if lineIdx > 0 {
			top -= p.lines[lineIdx-1].gap
		}
	case HeightIncludeLineSpacingMiddle:
		if lineIdx > 0 {
			top -= p.lines[lineIdx-1].gap / 2
		}
		bottom += ln.gap / 2
	case HeightIncludeLineSpacingBottom:
		bottom += ln.gap
	case HeightStrut:
		if p.strut.enabled {
			top = ln.baseline - p.strut.ascent
			bottom = ln.baseline + p.strut.descent
		} else if run != nil && run.placeholder < 0 && run.ascent+run.descent > 0 {
			top = ln.baseline - run.ascent
			bottom = ln.baseline + run.descent
		}
	}
	return top, bottom
}

// mergeBoxes merges touching boxes of the same direction and height on
// one line.
func mergeBoxes(boxes []TextBox) []TextBox {
	if len(boxes) < 2 {
		return boxes
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].Rect.MinX < boxes[j].Rect.MinX })

	const eps = 1e-6
	out := boxes[:1]
	for _, b := range boxes[1:] {
		last := &out[len(out)-1]
		if b.Direction == last.Direction &&
			math.Abs(b.Rect.MinX-last.Rect.MaxX) < eps &&
			b.Rect.MinY == last.Rect.MinY && b.Rect.MaxY == last.Rect.MaxY {
			last.Rect.MaxX = b.Rect.MaxX
			continue
		}
		out = append(out, b)
	}
	return out
}

// GetGlyphPositionAtCoordinate returns the rune position closest to the
// given paragraph-relative coordinate, with the affinity that keeps the
// caret on the clicked side.
func (p *Paragraph) GetGlyphPositionAtCoordinate(dx, dy float64) PositionWithAffinity {
	if !p.laidOut || len(p.lines) == 0 {
		return PositionWithAffinity{Affinity: AffinityDownstream}
	}

	ln := p.lineForY(dy)
	if len(ln.runs) == 0 {
		return PositionWithAffinity{Position: ln.textRange.Start, Affinity: AffinityDownstream}
	}

	x := dx - ln.left
	if x < 0 {
		return lineEdgePosition(ln, true)
	}
	if x >= ln.widthWithSpaces {
		return lineEdgePosition(ln, false)
	}

	// Find the run under x in visual order, then the cluster.
	for _, idx := range ln.visual {
		run := &ln.runs[idx]
		if x < run.x || x >= run.x+run.advance() {
			continue
		}
		rel := x - run.x
		for _, cl := range runClusters(run) {
			if rel >= cl.x && rel < cl.x+cl.width {
				return positionInCluster(&cl, rel, run.direction() == DirectionRTL)
			}
		}
	}

	// Between runs; snap to the line end.
	return lineEdgePosition(ln, false)
}

// lineForY picks the line whose vertical band contains y, clamping to
// the first and last lines.
func (p *Paragraph) lineForY(y float64) *line {
	for i := range p.lines {
		ln := &p.lines[i]
		if y < ln.top()+ln.height() {
			return ln
		}
	}
	return &p.lines[len(p.lines)-1]
}

// lineEdgePosition returns the caret position at the visual left or
// right edge of a line.
func lineEdgePosition(ln *line, leftEdge bool) PositionWithAffinity {
	var run *lineRun
	if leftEdge {
		run = &ln.runs[ln.visual[0]]
	} else {
		run = &ln.runs[ln.visual[len(ln.visual)-1]]
	}

	// The visual edge maps to the run's logical start or end depending
	// on its direction.
	atLogicalStart := leftEdge == (run.direction() == DirectionLTR)
	if atLogicalStart {
		return PositionWithAffinity{Position: run.runes.Start, Affinity: AffinityDownstream}
	}
	return PositionWithAffinity{Position: run.runes.End, Affinity: AffinityUpstream}
}

// positionInCluster divides a cluster's advance evenly between its
// runes and snaps to the nearest boundary. rel is visual, relative to
// the run origin.
func positionInCluster(cl *cluster, rel float64, rtl bool) PositionWithAffinity {
	n := cl.runes.Len()
	if n <= 0 || cl.width <= 0 {
		return PositionWithAffinity{Position: cl.runes.Start, Affinity: AffinityDownstream}
	}

	unit := cl.width / float64(n)
	sub := int((rel - cl.x) / unit)
	if sub < 0 {
		sub = 0
	}
	if sub >= n {
		sub = n - 1
	}
	frac := (rel - cl.x) - float64(sub)*unit
	leftHalf := frac < unit/2

	if rtl {
		// Subunits count logical runes from the right edge.
		logical := n - 1 - sub
		if leftHalf {
			return PositionWithAffinity{Position: cl.runes.Start + logical + 1, Affinity: AffinityUpstream}
		}
		return PositionWithAffinity{Position: cl.runes.Start + logical, Affinity: AffinityDownstream}
	}

	if leftHalf {
		return PositionWithAffinity{Position: cl.runes.Start + sub, Affinity: AffinityDownstream}
	}
	return PositionWithAffinity{Position: cl.runes.Start + sub + 1, Affinity: AffinityUpstream}
}
