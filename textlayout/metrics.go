package textlayout

// Decoration geometry is derived from the font size rather than font
// tables: a line 0.075 em thick, with the underline sitting 0.15 em
// below the baseline.
const (
	decorationThicknessFactor = 0.075
	underlineOffsetFactor     = 0.15
)

// FontMetrics are the unscaled metrics of the font behind one run, in
// layout units at the run's font size. Ascent and Descent are positive
// distances from the baseline. UnderlinePosition is the positive
// distance from the baseline down to the top of the underline.
type FontMetrics struct {
	Ascent             float64
	Descent            float64
	LineGap            float64
	XHeight            float64
	UnderlinePosition  float64
	UnderlineThickness float64
}

// StyleMetrics pairs a text style with the metrics of the font that
// rendered it. Style points into the paragraph's styles and stays valid
// until the paragraph is released.
type StyleMetrics struct {
	Style       *TextStyle
	FontMetrics FontMetrics
}

// LineMetrics describes one laid-out line.
type LineMetrics struct {
	// StartIndex and EndIndex are the rune range of the line's text,
	// excluding a trailing hard break. EndExcludingWhitespace trims
	// trailing whitespace; EndIncludingNewline includes the hard break.
	StartIndex             int
	EndIndex               int
	EndExcludingWhitespace int
	EndIncludingNewline    int

	// HardBreak reports whether the line ends on an explicit newline.
	HardBreak bool

	// Ascent and Descent are the line box extents above and below the
	// baseline, after strut and height multipliers. UnscaledAscent is
	// the tallest raw font ascent on the line.
	Ascent         float64
	Descent        float64
	UnscaledAscent float64

	// Height is the full line box height including the line gap. Width
	// excludes trailing whitespace. Left is the line's offset from the
	// paragraph's left edge after alignment.
	Height float64
	Width  float64
	Left   float64

	// Baseline is the distance from the paragraph top to the line's
	// alphabetic baseline.
	Baseline float64

	LineNumber int

	// RunMetrics maps the starting rune offset of each text run on the
	// line to the style and font metrics that shaped it.
	RunMetrics map[int]StyleMetrics
}

// fontMetricsFor measures the font behind a run. The underline geometry
// is size-derived; the x-height is probed from the face.
func (s *shaper) fontMetricsFor(run *lineRun, style *TextStyle) FontMetrics {
	return FontMetrics{
		Ascent:             fixedToFloat(run.out.LineBounds.Ascent),
		Descent:            -fixedToFloat(run.out.LineBounds.Descent),
		LineGap:            fixedToFloat(run.out.LineBounds.Gap),
		XHeight:            s.xHeight(run.out.Face, style.FontSize),
		UnderlinePosition:  style.FontSize * underlineOffsetFactor,
		UnderlineThickness: style.FontSize * decorationThicknessFactor,
	}
}

// lineMetrics converts the laid-out lines to the public metrics form.
func (p *Paragraph) lineMetrics() []LineMetrics {
	out := make([]LineMetrics, len(p.lines))
	for i := range p.lines {
		ln := &p.lines[i]
		lm := LineMetrics{
			StartIndex:             ln.textRange.Start,
			EndIndex:               ln.textRange.End,
			EndExcludingWhitespace: ln.endExcludingWhitespace,
			EndIncludingNewline:    ln.endIncludingNewline,
			HardBreak:              ln.hardBreak,
			Ascent:                 ln.ascent,
			Descent:                ln.descent,
			UnscaledAscent:         ln.unscaledAscent,
			Height:                 ln.height(),
			Width:                  ln.width,
			Left:                   ln.left,
			Baseline:               ln.baseline,
			LineNumber:             ln.lineNumber,
			RunMetrics:             make(map[int]StyleMetrics, len(ln.runs)),
		}
		for j := range ln.runs {
			run := &ln.runs[j]
			if run.placeholder >= 0 {
				continue
			}
			style := &p.spans[run.styleIdx].style
			lm.RunMetrics[run.runes.Start] = StyleMetrics{
				Style:       style,
				FontMetrics: p.shaper.fontMetricsFor(run, style),
			}
		}
		out[i] = lm
	}
	return out
}
