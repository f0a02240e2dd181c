package textlayout

import "github.com/gogpu/paragraph/geom"

// unknownStr is returned by String methods for out-of-range enum values.
const unknownStr = "Unknown"

// TextDirection specifies the base direction of a paragraph or the
// resolved direction of a glyph run.
type TextDirection uint8

const (
	// DirectionLTR lays text out left to right.
	DirectionLTR TextDirection = iota
	// DirectionRTL lays text out right to left.
	DirectionRTL
)

// String returns the string representation of the direction.
func (d TextDirection) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// TextAlign specifies how lines are positioned horizontally within the
// layout width.
type TextAlign uint8

const (
	// AlignLeft places lines flush with the left edge.
	AlignLeft TextAlign = iota
	// AlignRight places lines flush with the right edge.
	AlignRight
	// AlignCenter centers lines within the layout width.
	AlignCenter
	// AlignJustify expands interior whitespace so lines fill the layout
	// width. The last line of a paragraph is left-aligned.
	AlignJustify
	// AlignStart aligns to the leading edge of the base direction:
	// left for LTR paragraphs, right for RTL paragraphs.
	AlignStart
	// AlignEnd aligns to the trailing edge of the base direction.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	case AlignCenter:
		return "Center"
	case AlignJustify:
		return "Justify"
	case AlignStart:
		return "Start"
	case AlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// Affinity disambiguates a text position that sits on the boundary
// between two lines or two bidi runs.
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
// affinity that resolves boundary ambiguity.
type PositionWithAffinity struct {
	Position int
	Affinity Affinity
}

// Range is a half-open interval of rune offsets [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range covers no runes.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Contains reports whether the rune offset lies within the range.
func (r Range) Contains(offset int) bool { return offset >= r.Start && offset < r.End }

// Intersect returns the overlap of two ranges. The result is empty when
// the ranges do not overlap.
func (r Range) Intersect(other Range) Range {
	out := Range{Start: max(r.Start, other.Start), End: min(r.End, other.End)}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// TextBox is a rectangle covering part of a laid-out range, tagged with
// the writing direction of the text it covers.
type TextBox struct {
	Rect      geom.Rect
	Direction TextDirection
}

// RectHeightStyle controls the vertical extent of boxes returned by
// Paragraph.GetRectsForRange.
type RectHeightStyle uint8

const (
	// HeightTight bounds boxes by the glyph run's own ascent and descent.
	HeightTight RectHeightStyle = iota
	// HeightMax extends boxes to the full line box.
	HeightMax
	// HeightIncludeLineSpacingMiddle extends boxes to the full line box
	// plus half of the line gap above and below.
	HeightIncludeLineSpacingMiddle
	// HeightIncludeLineSpacingTop extends boxes to the full line box plus
	// the line gap above.
	HeightIncludeLineSpacingTop
	// HeightIncludeLineSpacingBottom extends boxes to the full line box
	// plus the line gap below.
	HeightIncludeLineSpacingBottom
	// HeightStrut bounds boxes by the paragraph strut when the strut is
	// enabled, falling back to HeightTight otherwise.
	HeightStrut
)

// String returns the string representation of the height style.
func (s RectHeightStyle) String() string {
	switch s {
	case HeightTight:
		return "Tight"
	case HeightMax:
		return "Max"
	case HeightIncludeLineSpacingMiddle:
		return "IncludeLineSpacingMiddle"
	case HeightIncludeLineSpacingTop:
		return "IncludeLineSpacingTop"
	case HeightIncludeLineSpacingBottom:
		return "IncludeLineSpacingBottom"
	case HeightStrut:
		return "Strut"
	default:
		return unknownStr
	}
}

// RectWidthStyle controls the horizontal extent of boxes returned by
// Paragraph.GetRectsForRange.
type RectWidthStyle uint8

const (
	// WidthTight bounds boxes by the glyphs they cover.
	WidthTight RectWidthStyle = iota
	// WidthMax extends the boxes of the first and last line covered by
	// the range to the widest line in the range.
	WidthMax
)

// String returns the string representation of the width style.
func (s RectWidthStyle) String() string {
	switch s {
	case WidthTight:
		return "Tight"
	case WidthMax:
		return "Max"
	default:
		return unknownStr
	}
}
