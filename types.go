package paragraph

import "github.com/gogpu/paragraph/geom"

const unknownStr = "Unknown"

// TextDirection specifies the base direction of a paragraph or the
// resolved direction of a run of text.
type TextDirection uint8

const (
	// TextDirectionLTR lays text out left to right.
	TextDirectionLTR TextDirection = iota
	// TextDirectionRTL lays text out right to left.
	TextDirectionRTL
)

// String returns the string representation of the direction.
func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "LTR"
	case TextDirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// TextAlign specifies how lines are positioned horizontally within the
// layout width.
type TextAlign uint8

const (
	// TextAlignLeft places lines flush with the left edge.
	TextAlignLeft TextAlign = iota
	// TextAlignRight places lines flush with the right edge.
	TextAlignRight
	// TextAlignCenter centers lines within the layout width.
	TextAlignCenter
	// TextAlignJustify expands interior whitespace so lines fill the
	// layout width.
	TextAlignJustify
	// TextAlignStart aligns to the leading edge of the base direction.
	TextAlignStart
	// TextAlignEnd aligns to the trailing edge of the base direction.
	TextAlignEnd
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "Left"
	case TextAlignRight:
		return "Right"
	case TextAlignCenter:
		return "Center"
	case TextAlignJustify:
		return "Justify"
	case TextAlignStart:
		return "Start"
	case TextAlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// Affinity disambiguates a text position that sits on the boundary
// between two lines or two runs.
type Affinity uint8

const (
	// AffinityUpstream associates the position with the preceding text.
	AffinityUpstream Affinity = iota
	// AffinityDownstream associates the position with the following text.
	AffinityDownstream
)

// String returns the string representation of the affinity.
func (a Affinity) String() string {
	switch a {
	case AffinityUpstream:
		return "Upstream"
	case AffinityDownstream:
		return "Downstream"
	default:
		return unknownStr
	}
}

// PositionWithAffinity is a rune offset into the paragraph text plus the
// affinity that disambiguates boundary positions.
type PositionWithAffinity struct {
	Position int
	Affinity Affinity
}

// Range is a half-open [Start, End) rune range into the paragraph text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes in the range.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range covers no runes.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// TextBox is a rectangle covering a range of text, tagged with the
// resolved direction of the text inside it.
type TextBox struct {
	Rect      geom.Rect
	Direction TextDirection
}

// RectHeightStyle controls the vertical extent of boxes returned by
// Paragraph.GetRectsForRange.
type RectHeightStyle uint8

const (
	// RectHeightTight bounds boxes by the glyph run's own ascent and
	// descent.
	RectHeightTight RectHeightStyle = iota
	// RectHeightMax extends boxes to the full line box.
	RectHeightMax
	// RectHeightIncludeLineSpacingMiddle extends boxes to the full line
	// box plus half of the line gap above and below.
	RectHeightIncludeLineSpacingMiddle
	// RectHeightIncludeLineSpacingTop extends boxes to the full line box
	// plus the line gap above.
	RectHeightIncludeLineSpacingTop
	// RectHeightIncludeLineSpacingBottom extends boxes to the full line
	// box plus the line gap below.
	RectHeightIncludeLineSpacingBottom
	// RectHeightStrut bounds boxes by the paragraph strut when the strut
	// is enabled.
	RectHeightStrut
)

// String returns the string representation of the height style.
func (s RectHeightStyle) String() string {
	switch s {
	case RectHeightTight:
		return "Tight"
	case RectHeightMax:
		return "Max"
	case RectHeightIncludeLineSpacingMiddle:
		return "IncludeLineSpacingMiddle"
	case RectHeightIncludeLineSpacingTop:
		return "IncludeLineSpacingTop"
	case RectHeightIncludeLineSpacingBottom:
		return "IncludeLineSpacingBottom"
	case RectHeightStrut:
		return "Strut"
	default:
		return unknownStr
	}
}

// RectWidthStyle controls the horizontal extent of boxes returned by
// Paragraph.GetRectsForRange.
type RectWidthStyle uint8

const (
	// RectWidthTight bounds boxes by the glyphs they cover.
	RectWidthTight RectWidthStyle = iota
	// RectWidthMax extends the boxes of interior lines of a multi-line
	// range to the full extent of their line.
	RectWidthMax
)

// String returns the string representation of the width style.
func (s RectWidthStyle) String() string {
	switch s {
	case RectWidthTight:
		return "Tight"
	case RectWidthMax:
		return "Max"
	default:
		return unknownStr
	}
}
