package textlayout

import (
	"image/color"
	"slices"

	"github.com/gogpu/paragraph/geom"
)

// FontSlant is the slant axis of a font request.
type FontSlant uint8

const (
	// SlantUpright requests an upright face.
	SlantUpright FontSlant = iota
	// SlantItalic requests an italic face.
	SlantItalic
	// SlantOblique requests an oblique face. Font resolution treats
	// oblique as italic; the distinction is preserved on the style.
	SlantOblique
)

// String returns the string representation of the slant.
func (s FontSlant) String() string {
	switch s {
	case SlantUpright:
		return "Upright"
	case SlantItalic:
		return "Italic"
	case SlantOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// TextBaseline selects which baseline placeholder content aligns to.
type TextBaseline uint8

const (
	// BaselineAlphabetic is the baseline latin glyphs sit on.
	BaselineAlphabetic TextBaseline = iota
	// BaselineIdeographic is the bottom edge of CJK glyph boxes.
	BaselineIdeographic
)

// String returns the string representation of the baseline.
func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineIdeographic:
		return "Ideographic"
	default:
		return unknownStr
	}
}

// Decoration is a bitmask of line decorations applied to a run of text.
type Decoration uint8

const (
	// DecorationUnderline draws a line below the baseline.
	DecorationUnderline Decoration = 1 << iota
	// DecorationOverline draws a line above the run.
	DecorationOverline
	// DecorationLineThrough draws a line through the middle of the run.
	DecorationLineThrough

	// DecorationNone applies no decoration.
	DecorationNone Decoration = 0
)

// Has reports whether the mask includes the given decoration.
func (d Decoration) Has(dec Decoration) bool { return d&dec != 0 }

// TextDecorationStyle selects how decoration lines are rendered.
type TextDecorationStyle uint8

const (
	// DecorationStyleSolid draws a single solid line.
	DecorationStyleSolid TextDecorationStyle = iota
	// DecorationStyleDouble draws two parallel solid lines.
	DecorationStyleDouble
	// DecorationStyleDotted draws a dotted line.
	DecorationStyleDotted
	// DecorationStyleDashed draws a dashed line.
	DecorationStyleDashed
	// DecorationStyleWavy draws a sinusoidal line.
	DecorationStyleWavy
)

// String returns the string representation of the decoration style.
func (s TextDecorationStyle) String() string {
	switch s {
	case DecorationStyleSolid:
		return "Solid"
	case DecorationStyleDouble:
		return "Double"
	case DecorationStyleDotted:
		return "Dotted"
	case DecorationStyleDashed:
		return "Dashed"
	case DecorationStyleWavy:
		return "Wavy"
	default:
		return unknownStr
	}
}

// Shadow is a single text shadow: a color, an offset from the glyph
// origin, and a Gaussian blur sigma. A sigma of zero draws a hard-edged
// copy of the glyphs.
type Shadow struct {
	Color     color.NRGBA
	Offset    geom.Point
	BlurSigma float64
}

// TextStyle describes the appearance of a run of text. The zero value is
// not useful; start from NewTextStyle.
type TextStyle struct {
	// Color paints the glyphs when Foreground is nil.
	Color color.NRGBA

	// Decoration flags plus the parameters shared by all decorations on
	// this style. DecorationThicknessMultiplier scales the computed
	// decoration thickness; 1 is the font-derived default.
	Decoration                    Decoration
	DecorationColor               color.NRGBA
	DecorationStyle               TextDecorationStyle
	DecorationThicknessMultiplier float64

	// FontWeight is the numeric weight axis value, 100 through 900 in
	// steps of 100. 400 is regular, 700 is bold.
	FontWeight int
	FontSlant  FontSlant

	// TextBaseline selects the baseline placeholders align to when this
	// style is in effect.
	TextBaseline TextBaseline

	// FontFamilies is the family lookup order. Resolution falls back to
	// any registered face covering the rune, then to system fonts when
	// the collection has them enabled.
	FontFamilies []string
	FontSize     float64

	// LetterSpacing is extra advance added after every glyph cluster.
	// WordSpacing is extra advance added after whitespace clusters.
	LetterSpacing float64
	WordSpacing   float64

	// Height overrides the font-derived line height with
	// Height*FontSize when HeightOverride is set.
	Height         float64
	HeightOverride bool

	// Locale is a BCP 47 language tag used for language-specific
	// shaping. Empty selects a neutral default.
	Locale string

	// Background, when non-nil, fills the run's box before glyphs are
	// drawn. Foreground, when non-nil, paints the glyphs instead of
	// Color.
	Background PaintRef
	Foreground PaintRef

	// Shadows are drawn beneath the glyphs in slice order.
	Shadows []Shadow
}

// NewTextStyle returns a TextStyle with the package defaults: black
// 14-unit regular upright text with no decorations.
func NewTextStyle() TextStyle {
	return TextStyle{
		Color:                         color.NRGBA{A: 0xFF},
		DecorationColor:               color.NRGBA{A: 0xFF},
		DecorationThicknessMultiplier: 1,
		FontWeight:                    400,
		FontSize:                      14,
	}
}

// Equal reports whether two styles are identical in every field.
func (s *TextStyle) Equal(other *TextStyle) bool {
	return s.Color == other.Color &&
		s.Decoration == other.Decoration &&
		s.DecorationColor == other.DecorationColor &&
		s.DecorationStyle == other.DecorationStyle &&
		s.DecorationThicknessMultiplier == other.DecorationThicknessMultiplier &&
		s.FontWeight == other.FontWeight &&
		s.FontSlant == other.FontSlant &&
		s.TextBaseline == other.TextBaseline &&
		slices.Equal(s.FontFamilies, other.FontFamilies) &&
		s.FontSize == other.FontSize &&
		s.LetterSpacing == other.LetterSpacing &&
		s.WordSpacing == other.WordSpacing &&
		s.Height == other.Height &&
		s.HeightOverride == other.HeightOverride &&
		s.Locale == other.Locale &&
		paintRefEqual(s.Background, other.Background) &&
		paintRefEqual(s.Foreground, other.Foreground) &&
		slices.Equal(s.Shadows, other.Shadows)
}

// clone returns a deep copy of the style. Slice fields are copied so the
// clone is independent of later mutation.
func (s *TextStyle) clone() TextStyle {
	out := *s
	out.FontFamilies = slices.Clone(s.FontFamilies)
	out.Shadows = slices.Clone(s.Shadows)
	return out
}

// StrutStyle imposes a minimum line box independent of the text content.
type StrutStyle struct {
	// Enabled turns the strut on. A zero StrutStyle is disabled.
	Enabled bool

	// FontFamilies and the font axes select the face whose metrics seed
	// the strut.
	FontFamilies []string
	FontSize     float64
	FontWeight   int
	FontSlant    FontSlant

	// Height overrides the strut's font-derived height with
	// Height*FontSize when HeightOverride is set.
	Height         float64
	HeightOverride bool

	// Leading adds Leading*FontSize of extra space, split evenly above
	// and below the strut. Negative means no extra leading.
	Leading float64

	// ForceHeight makes the strut the exact line box, ignoring taller
	// run metrics.
	ForceHeight bool
}

// ParagraphStyle configures paragraph-wide layout behavior.
type ParagraphStyle struct {
	TextAlign     TextAlign
	TextDirection TextDirection

	// MaxLines caps the number of laid-out lines. Zero means unlimited.
	MaxLines int

	// Ellipsis, when non-empty, replaces the overflow on the last laid
	// out line when MaxLines truncates the text.
	Ellipsis string

	// Height scales every line's height to Height*FontSize of the run,
	// when positive, unless a style overrides its own height.
	Height float64

	// DefaultStyle applies to text outside any pushed style, and seeds
	// empty-line metrics.
	DefaultStyle TextStyle

	// Strut, when enabled, imposes a minimum line box on every line.
	Strut StrutStyle
}

// NewParagraphStyle returns a ParagraphStyle with the package defaults:
// left-aligned unbounded LTR text using the default text style.
func NewParagraphStyle() ParagraphStyle {
	return ParagraphStyle{
		DefaultStyle: NewTextStyle(),
	}
}

// effectiveAlign resolves AlignStart and AlignEnd against the base
// direction.
func (p *ParagraphStyle) effectiveAlign() TextAlign {
	switch p.TextAlign {
	case AlignStart:
		if p.TextDirection == DirectionRTL {
			return AlignRight
		}
		return AlignLeft
	case AlignEnd:
		if p.TextDirection == DirectionRTL {
			return AlignLeft
		}
		return AlignRight
	default:
		return p.TextAlign
	}
}

// unlimited reports whether the paragraph has no line cap.
func (p *ParagraphStyle) unlimited() bool { return p.MaxLines <= 0 }

// PlaceholderAlignment positions an inline placeholder box vertically
// within its line.
type PlaceholderAlignment uint8

const (
	// PlaceholderBaseline aligns the placeholder's internal baseline,
	// BaselineOffset below its top edge, with the line baseline.
	PlaceholderBaseline PlaceholderAlignment = iota
	// PlaceholderAboveBaseline rests the placeholder's bottom edge on
	// the baseline.
	PlaceholderAboveBaseline
	// PlaceholderBelowBaseline hangs the placeholder's top edge from the
	// baseline.
	PlaceholderBelowBaseline
	// PlaceholderTop aligns the placeholder's top edge with the line top.
	PlaceholderTop
	// PlaceholderBottom aligns the placeholder's bottom edge with the
	// line bottom.
	PlaceholderBottom
	// PlaceholderMiddle centers the placeholder between line top and
	// bottom.
	PlaceholderMiddle
)

// String returns the string representation of the alignment.
func (a PlaceholderAlignment) String() string {
	switch a {
	case PlaceholderBaseline:
		return "Baseline"
	case PlaceholderAboveBaseline:
		return "AboveBaseline"
	case PlaceholderBelowBaseline:
		return "BelowBaseline"
	case PlaceholderTop:
		return "Top"
	case PlaceholderBottom:
		return "Bottom"
	case PlaceholderMiddle:
		return "Middle"
	default:
		return unknownStr
	}
}

// PlaceholderStyle sizes and positions an inline placeholder box. The
// box reserves space in the line; drawing its content is up to the
// caller, using the rectangles reported by GetRectsForPlaceholders.
type PlaceholderStyle struct {
	Width     float64
	Height    float64
	Alignment PlaceholderAlignment

	// Baseline selects which line baseline the box aligns to when
	// Alignment is PlaceholderBaseline.
	Baseline TextBaseline

	// BaselineOffset is the distance from the placeholder's top edge to
	// its internal baseline, used by PlaceholderBaseline.
	BaselineOffset float64
}
