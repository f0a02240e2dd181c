package paragraph

// FontMetrics are the metrics of the font behind one run, in layout
// units at the run's font size. Ascent and Descent are positive
// distances from the baseline.
type FontMetrics struct {
	Ascent             float64
	Descent            float64
	LineGap            float64
	XHeight            float64
	UnderlinePosition  float64
	UnderlineThickness float64
}

// StyleMetrics pairs a text style with the metrics of the font that
// rendered it. Style points into a list owned by the paragraph and
// stays valid until the next Layout call.
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
	// baseline. UnscaledAscent is the tallest raw font ascent on the
	// line.
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
