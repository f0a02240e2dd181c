package textlayout

import (
	"github.com/go-text/typesetting/shaping"
)

// lineRun is one shaped run placed on a line. Runs keep the wrapper's
// logical order; the visual order lives on the line.
type lineRun struct {
	out   shaping.Output
	runes Range // absolute rune offsets

	// rebase converts the run's paragraph-relative cluster indices to
	// absolute rune offsets.
	rebase int

	// level is the run's resolved embedding level.
	level int

	styleIdx    int
	placeholder int // placeholder index, -1 for text runs

	// x is the run origin relative to the line's left edge, at the
	// visual left of the run. Set by position().
	x float64

	// Scaled vertical metrics of the run, positive ascent and descent.
	ascent, descent, gap float64
	unscaledAscent       float64
}

// direction returns the run's resolved direction.
func (r *lineRun) direction() TextDirection {
	return runDirection(r.out.Direction)
}

// advance returns the run's total advance width.
func (r *lineRun) advance() float64 {
	return fixedToFloat(r.out.Advance)
}

// line is one laid-out line of a paragraph.
type line struct {
	runs   []lineRun
	visual []int // indexes into runs, left to right

	textRange              Range // excludes a trailing hard break
	endIncludingNewline    int
	endExcludingWhitespace int
	hardBreak              bool

	ascent, descent, gap float64
	unscaledAscent       float64

	width           float64 // excluding trailing whitespace
	widthWithSpaces float64
	left            float64
	baseline        float64 // absolute y of the baseline
	lineNumber      int
}

// top returns the absolute y of the line box top.
func (ln *line) top() float64 { return ln.baseline - ln.ascent }

// bottom returns the absolute y of the line box bottom, excluding the
// line gap.
func (ln *line) bottom() float64 { return ln.baseline + ln.descent }

// height returns the line box height including the line gap.
func (ln *line) height() float64 { return ln.ascent + ln.descent + ln.gap }

// cluster is a glyph cluster within a run: the minimal group of glyphs
// covering an indivisible rune range.
type cluster struct {
	runes Range // absolute rune offsets

	// glyph slice bounds within the run, [gi, gj).
	gi, gj int

	// x is the cluster's visual offset from the run origin; width is its
	// total advance.
	x     float64
	width float64
}

// outputClusters groups a shaped output's glyphs into clusters in
// visual order. Glyph advances accumulate in slice order for both
// directions, so the computed offsets are visual offsets from the run
// origin. rebase converts cluster indices to absolute rune offsets.
func outputClusters(out *shaping.Output, rebase int) []cluster {
	glyphs := out.Glyphs
	if len(glyphs) == 0 {
		return nil
	}

	clusters := make([]cluster, 0, len(glyphs))
	x := 0.0
	for i := 0; i < len(glyphs); {
		j := i
		w := fixedToFloat(glyphs[i].XAdvance)
		for j+1 < len(glyphs) && glyphs[j+1].ClusterIndex == glyphs[i].ClusterIndex {
			j++
			w += fixedToFloat(glyphs[j].XAdvance)
		}

		start := rebase + glyphs[i].ClusterIndex
		count := glyphs[i].RuneCount
		if count <= 0 {
			count = 1
		}
		clusters = append(clusters, cluster{
			runes: Range{Start: start, End: start + count},
			gi:    i,
			gj:    j + 1,
			x:     x,
			width: w,
		})
		x += w
		i = j + 1
	}
	return clusters
}

// logicalOutputClusters returns an output's clusters in logical rune
// order. For RTL runs the visual order is reversed.
func logicalOutputClusters(out *shaping.Output, rebase int) []cluster {
	clusters := outputClusters(out, rebase)
	if runDirection(out.Direction) == DirectionRTL {
		for i, j := 0, len(clusters)-1; i < j; i, j = i+1, j-1 {
			clusters[i], clusters[j] = clusters[j], clusters[i]
		}
	}
	return clusters
}

// runClusters returns a line run's clusters in visual order.
func runClusters(run *lineRun) []cluster {
	return outputClusters(&run.out, run.rebase)
}

// logicalClusters returns a line run's clusters in logical rune order.
func logicalClusters(run *lineRun) []cluster {
	return logicalOutputClusters(&run.out, run.rebase)
}

// computeVisualOrder computes the left-to-right display order of the
// line's runs: maximal sequences of runs at or above each embedding
// level are reversed, highest level first.
func (ln *line) computeVisualOrder() {
	order := make([]int, len(ln.runs))
	maxLevel := 0
	for i := range ln.runs {
		order[i] = i
		if ln.runs[i].level > maxLevel {
			maxLevel = ln.runs[i].level
		}
	}

	for level := maxLevel; level >= 1; level-- {
		i := 0
		for i < len(order) {
			if ln.runs[order[i]].level < level {
				i++
				continue
			}
			j := i
			for j < len(order) && ln.runs[order[j]].level >= level {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				order[a], order[b] = order[b], order[a]
			}
			i = j
		}
	}
	ln.visual = order
}

// position assigns run origins in visual order starting at the line's
// left edge.
func (ln *line) position() {
	x := 0.0
	for _, idx := range ln.visual {
		ln.runs[idx].x = x
		x += ln.runs[idx].advance()
	}
	ln.widthWithSpaces = x
}

// trimTrailingWhitespace computes the line width that excludes trailing
// whitespace, and the rune offset where that whitespace starts. The
// glyphs stay in place; only the measurements change.
func (ln *line) trimTrailingWhitespace(text []rune) {
	ln.width = ln.widthWithSpaces
	ln.endExcludingWhitespace = ln.textRange.End

	for i := len(ln.runs) - 1; i >= 0; i-- {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			return
		}
		clusters := logicalClusters(run)
		for j := len(clusters) - 1; j >= 0; j-- {
			cl := clusters[j]
			if !rangeIsWhitespace(text, cl.runes) {
				return
			}
			ln.width -= cl.width
			ln.endExcludingWhitespace = cl.runes.Start
		}
	}
}

// rangeIsWhitespace reports whether every rune in the absolute range is
// whitespace.
func rangeIsWhitespace(text []rune, r Range) bool {
	if r.Start < 0 || r.End > len(text) || r.IsEmpty() {
		return false
	}
	return clusterIsWhitespace(text, r.Start, r.Len())
}

// justify expands interior whitespace clusters so the line fills the
// layout width. Glyph advances are mutated so later queries and painting
// see the expanded positions.
func (ln *line) justify(text []rune, maxWidth float64) {
	extra := maxWidth - ln.width
	if extra <= 0 {
		return
	}

	// Count expandable clusters: whitespace before the trailing trim
	// point.
	expandable := 0
	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			continue
		}
		for _, cl := range runClusters(run) {
			if cl.runes.End <= ln.endExcludingWhitespace && rangeIsWhitespace(text, cl.runes) {
				expandable++
			}
		}
	}
	if expandable == 0 {
		return
	}

	share := floatToFixed(extra / float64(expandable))
	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			continue
		}
		for _, cl := range runClusters(run) {
			if cl.runes.End <= ln.endExcludingWhitespace && rangeIsWhitespace(text, cl.runes) {
				run.out.Glyphs[cl.gj-1].XAdvance += share
				run.out.Advance += share
			}
		}
	}

	ln.position()
	ln.trimTrailingWhitespace(text)
}

// align sets the line's left offset for the effective alignment.
func (ln *line) align(align TextAlign, maxWidth float64) {
	slack := maxWidth - ln.width
	if slack < 0 {
		slack = 0
	}
	switch align {
	case AlignRight:
		ln.left = slack
	case AlignCenter:
		ln.left = slack / 2
	default:
		ln.left = 0
	}
}

// runAt returns the index of the line run containing the absolute rune
// offset, or -1.
func (ln *line) runAt(offset int) int {
	for i := range ln.runs {
		if ln.runs[i].runes.Contains(offset) {
			return i
		}
	}
	return -1
}
