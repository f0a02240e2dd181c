package paragraph

import (
	"image/color"

	"github.com/gogpu/paragraph/geom"
	"github.com/gogpu/paragraph/recording"
)

// FontWeight is a font weight on a dense nine-step scale. It maps
// one-to-one onto the layout engine's numeric 100-900 scale.
type FontWeight uint8

const (
	// FontWeightW100 is thin, the least thick.
	FontWeightW100 FontWeight = iota
	// FontWeightW200 is extra light.
	FontWeightW200
	// FontWeightW300 is light.
	FontWeightW300
	// FontWeightW400 is regular.
	FontWeightW400
	// FontWeightW500 is medium.
	FontWeightW500
	// FontWeightW600 is semi bold.
	FontWeightW600
	// FontWeightW700 is bold.
	FontWeightW700
	// FontWeightW800 is extra bold.
	FontWeightW800
	// FontWeightW900 is black, the most thick.
	FontWeightW900

	// FontWeightNormal is the regular weight.
	FontWeightNormal = FontWeightW400
	// FontWeightBold is the bold weight.
	FontWeightBold = FontWeightW700
)

// fontWeightNames maps FontWeight values to their string representation.
var fontWeightNames = [...]string{
	FontWeightW100: "W100",
	FontWeightW200: "W200",
	FontWeightW300: "W300",
	FontWeightW400: "W400",
	FontWeightW500: "W500",
	FontWeightW600: "W600",
	FontWeightW700: "W700",
	FontWeightW800: "W800",
	FontWeightW900: "W900",
}

// String returns the string representation of the weight.
func (w FontWeight) String() string {
	if int(w) < len(fontWeightNames) {
		return fontWeightNames[w]
	}
	return unknownStr
}

// FontStyle selects between the upright and italic forms of a font.
type FontStyle uint8

const (
	// FontStyleNormal requests the upright form.
	FontStyleNormal FontStyle = iota
	// FontStyleItalic requests the italic form.
	FontStyleItalic
)

// String returns the string representation of the style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "Normal"
	case FontStyleItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// TextDecoration is a bitmask of line decorations applied to a run of
// text.
type TextDecoration uint8

const (
	// TextDecorationUnderline draws a line below the baseline.
	TextDecorationUnderline TextDecoration = 1 << iota
	// TextDecorationOverline draws a line above the run.
	TextDecorationOverline
	// TextDecorationLineThrough draws a line through the middle of the
	// run.
	TextDecorationLineThrough

	// TextDecorationNone applies no decoration.
	TextDecorationNone TextDecoration = 0
)

// Has reports whether the mask includes the given decoration.
func (d TextDecoration) Has(dec TextDecoration) bool { return d&dec != 0 }

// TextDecorationStyle selects how decoration lines are rendered.
type TextDecorationStyle uint8

const (
	// TextDecorationStyleSolid draws a single solid line.
	TextDecorationStyleSolid TextDecorationStyle = iota
	// TextDecorationStyleDouble draws two parallel solid lines.
	TextDecorationStyleDouble
	// TextDecorationStyleDotted draws a dotted line.
	TextDecorationStyleDotted
	// TextDecorationStyleDashed draws a dashed line.
	TextDecorationStyleDashed
	// TextDecorationStyleWavy draws a sinusoidal line.
	TextDecorationStyleWavy
)

// String returns the string representation of the decoration style.
func (s TextDecorationStyle) String() string {
	switch s {
	case TextDecorationStyleSolid:
		return "Solid"
	case TextDecorationStyleDouble:
		return "Double"
	case TextDecorationStyleDotted:
		return "Dotted"
	case TextDecorationStyleDashed:
		return "Dashed"
	case TextDecorationStyleWavy:
		return "Wavy"
	default:
		return unknownStr
	}
}

// TextBaseline selects which baseline placeholder content aligns to.
type TextBaseline uint8

const (
	// TextBaselineAlphabetic is the baseline latin glyphs sit on.
	TextBaselineAlphabetic TextBaseline = iota
	// TextBaselineIdeographic is the bottom edge of CJK glyph boxes.
	TextBaselineIdeographic
)

// String returns the string representation of the baseline.
func (b TextBaseline) String() string {
	switch b {
	case TextBaselineAlphabetic:
		return "Alphabetic"
	case TextBaselineIdeographic:
		return "Ideographic"
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
	Decoration                    TextDecoration
	DecorationColor               color.NRGBA
	DecorationStyle               TextDecorationStyle
	DecorationThicknessMultiplier float64

	FontWeight FontWeight
	FontStyle  FontStyle

	// TextBaseline selects the baseline placeholders align to when this
	// style is in effect.
	TextBaseline TextBaseline

	// FontFamilies is the family lookup order.
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
	// Color. Both are copied when the style is pushed on a builder.
	Background *recording.Paint
	Foreground *recording.Paint

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
		FontWeight:                    FontWeightNormal,
		FontSize:                      14,
	}
}

// StrutStyle imposes a minimum line box independent of the text content.
type StrutStyle struct {
	// Enabled turns the strut on. A zero StrutStyle is disabled.
	Enabled bool

	// FontFamilies and the font axes select the face whose metrics seed
	// the strut.
	FontFamilies []string
	FontSize     float64
	FontWeight   FontWeight
	FontStyle    FontStyle

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
	// PlaceholderTop aligns the placeholder's top edge with the line
	// top.
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
