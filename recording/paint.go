package recording

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
		return "Unknown"
	}
}

// BlurStyle selects how a blur mask filter spreads relative to the
// geometry it is applied to.
type BlurStyle uint8

const (
	// BlurStyleNormal blurs inside and outside the geometry edge.
	BlurStyleNormal BlurStyle = iota
	// BlurStyleSolid draws the geometry solid and blurs outside.
	BlurStyleSolid
	// BlurStyleOuter leaves the geometry empty and blurs outside.
	BlurStyleOuter
	// BlurStyleInner blurs inside the geometry edge only.
	BlurStyleInner
)

// blurStyleNames maps BlurStyle values to their string representation.
var blurStyleNames = [...]string{
	BlurStyleNormal: "Normal",
	BlurStyleSolid:  "Solid",
	BlurStyleOuter:  "Outer",
	BlurStyleInner:  "Inner",
}

// String returns the string representation of the blur style.
func (s BlurStyle) String() string {
	if int(s) < len(blurStyleNames) {
		return blurStyleNames[s]
	}
	return "Unknown"
}

// BlurMaskFilter blurs the mask of the geometry it is attached to
// before compositing. Sigma is the Gaussian standard deviation in
// pixels.
type BlurMaskFilter struct {
	Style BlurStyle
	Sigma float64
}

// DashPathEffect turns a stroked line or path into a repeating dash
// pattern. Intervals alternates painted and skipped lengths; Phase is
// the offset into the pattern at which stroking starts.
type DashPathEffect struct {
	Intervals []float64
	Phase     float64
}

// Paint describes how a drawing command renders. The zero value is a
// non-anti-aliased transparent fill; use NewPaint for the usual opaque
// black default.
type Paint struct {
	Color       color.NRGBA
	Style       DrawStyle
	AntiAlias   bool
	StrokeWidth float64
	MaskFilter  *BlurMaskFilter
	PathEffect  *DashPathEffect
}

// NewPaint returns a Paint with default values: opaque black fill,
// anti-aliasing disabled.
func NewPaint() Paint {
	return Paint{Color: color.NRGBA{A: 255}}
}

// Clone returns a deep copy of the paint. The mask filter and path
// effect, when present, are copied rather than shared.
func (p Paint) Clone() Paint {
	out := p
	if p.MaskFilter != nil {
		mf := *p.MaskFilter
		out.MaskFilter = &mf
	}
	if p.PathEffect != nil {
		pe := DashPathEffect{
			Intervals: append([]float64(nil), p.PathEffect.Intervals...),
			Phase:     p.PathEffect.Phase,
		}
		out.PathEffect = &pe
	}
	return out
}
