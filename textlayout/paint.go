package textlayout

import "image/color"

// DrawStyle selects whether geometry is filled or stroked.
type DrawStyle uint8

const (
	// DrawStyleFill fills the interior of the geometry.
	DrawStyleFill DrawStyle = iota
	// DrawStyleStroke strokes the outline of the geometry.
	DrawStyleStroke
)

// String returns the string representation of the draw style.
func (s DrawStyle) String() string {
	switch s {
	case DrawStyleFill:
		return "Fill"
	case DrawStyleStroke:
		return "Stroke"
	default:
		return unknownStr
	}
}

// Paint describes how glyphs or rectangles are drawn when a style
// carries its paint directly rather than by index.
type Paint struct {
	Color       color.NRGBA
	Style       DrawStyle
	StrokeWidth float64
	AntiAlias   bool
}

// PaintID indexes into a paint list owned by the caller that built the
// paragraph. The paragraph never dereferences the index itself; it is
// passed through to the Painter unchanged.
type PaintID int

// PaintRef is a paint reference carried by a TextStyle: either a PaintID
// into a caller-owned paint list, or a *Paint held directly. A nil
// PaintRef means the style does not override that paint.
//
// The two variants are the only implementations; consumers switch on the
// concrete type.
type PaintRef interface {
	isPaintRef()
}

func (PaintID) isPaintRef() {}
func (*Paint) isPaintRef()  {}

// paintRefEqual reports whether two paint references are the same
// variant with equal contents.
func paintRefEqual(a, b PaintRef) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case PaintID:
		bv, ok := b.(PaintID)
		return ok && av == bv
	case *Paint:
		bv, ok := b.(*Paint)
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			return av == bv
		}
		return *av == *bv
	default:
		return false
	}
}

// DashSpec describes a dash pattern for dotted and dashed decorations:
// OnLength units of ink followed by OffLength units of gap, repeating.
type DashSpec struct {
	OnLength  float64
	OffLength float64
}

// DecorationStyle carries the paint parameters for a text decoration
// primitive handed to a Painter. Dash is nil for solid strokes.
type DecorationStyle struct {
	Color       color.NRGBA
	StrokeWidth float64
	Dash        *DashSpec
}
