package textlayout

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// levelRun is a maximal range of runes sharing one resolved embedding
// level.
type levelRun struct {
	runes Range // absolute rune offsets
	level int
}

// bidiLevels resolves an embedding level for every rune of text against
// the paragraph base direction. Runs matching the base direction sit at
// even levels and counter-directional runs at odd levels, so
// left-to-right text inside a right-to-left paragraph lands at level
// two. Runes the algorithm cannot resolve keep the base level.
func bidiLevels(text []rune, base TextDirection) []int {
	baseRTL := base == DirectionRTL
	levels := make([]int, len(text))
	if baseRTL {
		for i := range levels {
			levels[i] = 1
		}
	}

	def := bidi.LeftToRight
	if baseRTL {
		def = bidi.RightToLeft
	}

	// SetString consumes one bidi paragraph per call, so a text with
	// hard breaks takes several rounds.
	var p bidi.Paragraph
	s := string(text)
	offset := 0
	for len(s) > 0 {
		n, err := p.SetString(s, bidi.DefaultDirection(def))
		if err != nil || n <= 0 {
			break
		}
		ordering, err := p.Order()
		if err != nil {
			break
		}

		for i := 0; i < ordering.NumRuns(); i++ {
			run := ordering.Run(i)
			// run.Pos() returns rune indices, start and end inclusive,
			// relative to the chunk.
			start, end := run.Pos()
			level := 0
			switch {
			case run.Direction() == bidi.RightToLeft:
				level = 1
			case baseRTL:
				level = 2
			}
			for j := start; j <= end; j++ {
				if k := offset + j; k < len(levels) {
					levels[k] = level
				}
			}
		}

		offset += utf8.RuneCountInString(s[:n])
		s = s[n:]
	}
	return levels
}

// splitLevels cuts the rune range at embedding level boundaries,
// returning the level runs in logical order.
func splitLevels(levels []int, r Range) []levelRun {
	if r.IsEmpty() || r.Start < 0 || r.End > len(levels) {
		return nil
	}

	runs := make([]levelRun, 0, 1)
	start := r.Start
	for i := r.Start + 1; i < r.End; i++ {
		if levels[i] == levels[start] {
			continue
		}
		runs = append(runs, levelRun{runes: Range{Start: start, End: i}, level: levels[start]})
		start = i
	}
	runs = append(runs, levelRun{runes: Range{Start: start, End: r.End}, level: levels[start]})
	return runs
}
