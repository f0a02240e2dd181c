package paragraph

import (
	"fmt"
	"slices"

	"github.com/gogpu/paragraph/recording"
	"github.com/gogpu/paragraph/textlayout"
)

// Engine-to-host translation. The mapping is one-directional and total:
// every engine value lands on a host value. It runs when line metrics
// are flattened for callers, once per run per layout.

// fontWeightFromEngine compresses the engine's numeric 100-900 weight
// scale to the dense host scale via clamp((w-100)/100, 0, 8). Inputs
// outside the numeric scale clamp to the nearest boundary.
func fontWeightFromEngine(w int) FontWeight {
	idx := (w - 100) / 100
	if idx < 0 {
		idx = 0
	}
	if idx > 8 {
		idx = 8
	}
	return FontWeight(idx)
}

// fontStyleFromEngine maps the engine's three-valued slant onto the
// host's two forms: upright is normal, any other slant is italic.
func fontStyleFromEngine(s textlayout.FontSlant) FontStyle {
	if s == textlayout.SlantUpright {
		return FontStyleNormal
	}
	return FontStyleItalic
}

func decorationFromEngine(d textlayout.Decoration) TextDecoration {
	out := TextDecorationNone
	if d.Has(textlayout.DecorationUnderline) {
		out |= TextDecorationUnderline
	}
	if d.Has(textlayout.DecorationOverline) {
		out |= TextDecorationOverline
	}
	if d.Has(textlayout.DecorationLineThrough) {
		out |= TextDecorationLineThrough
	}
	return out
}

func decorationStyleFromEngine(s textlayout.TextDecorationStyle) TextDecorationStyle {
	switch s {
	case textlayout.DecorationStyleDouble:
		return TextDecorationStyleDouble
	case textlayout.DecorationStyleDotted:
		return TextDecorationStyleDotted
	case textlayout.DecorationStyleDashed:
		return TextDecorationStyleDashed
	case textlayout.DecorationStyleWavy:
		return TextDecorationStyleWavy
	default:
		return TextDecorationStyleSolid
	}
}

func baselineFromEngine(b textlayout.TextBaseline) TextBaseline {
	if b == textlayout.BaselineIdeographic {
		return TextBaselineIdeographic
	}
	return TextBaselineAlphabetic
}

func directionFromEngine(d textlayout.TextDirection) TextDirection {
	if d == textlayout.DirectionRTL {
		return TextDirectionRTL
	}
	return TextDirectionLTR
}

func affinityFromEngine(a textlayout.Affinity) Affinity {
	if a == textlayout.AffinityUpstream {
		return AffinityUpstream
	}
	return AffinityDownstream
}

func shadowsFromEngine(shadows []textlayout.Shadow) []Shadow {
	if len(shadows) == 0 {
		return nil
	}
	out := make([]Shadow, len(shadows))
	for i, s := range shadows {
		out[i] = Shadow{Color: s.Color, Offset: s.Offset, BlurSigma: s.BlurSigma}
	}
	return out
}

func boxFromEngine(b textlayout.TextBox) TextBox {
	return TextBox{Rect: b.Rect, Direction: directionFromEngine(b.Direction)}
}

func boxesFromEngine(boxes []textlayout.TextBox) []TextBox {
	out := make([]TextBox, len(boxes))
	for i, b := range boxes {
		out[i] = boxFromEngine(b)
	}
	return out
}

// resolvePaint converts an engine paint reference to a concrete host
// paint. A direct paint is copied field-wise; an identifier indexes the
// descriptor list, which must contain it. A nil reference stays nil.
func resolvePaint(ref textlayout.PaintRef, paints []recording.Paint) *recording.Paint {
	switch v := ref.(type) {
	case nil:
		return nil
	case textlayout.PaintID:
		if int(v) < 0 || int(v) >= len(paints) {
			panic(fmt.Sprintf("paragraph: paint id %d out of range [0,%d)", int(v), len(paints)))
		}
		p := paints[v].Clone()
		return &p
	case *textlayout.Paint:
		if v == nil {
			return nil
		}
		p := paintFromEngine(*v)
		return &p
	default:
		panic(fmt.Sprintf("paragraph: unknown paint reference type %T", ref))
	}
}

func paintFromEngine(ep textlayout.Paint) recording.Paint {
	p := recording.NewPaint()
	p.Color = ep.Color
	p.AntiAlias = ep.AntiAlias
	p.StrokeWidth = ep.StrokeWidth
	if ep.Style == textlayout.DrawStyleStroke {
		p.Style = recording.DrawStyleStroke
	}
	return p
}

// styleFromEngine translates an engine text style to a freshly
// allocated host style, resolving paint references against the
// descriptor list.
func styleFromEngine(es *textlayout.TextStyle, paints []recording.Paint) *TextStyle {
	return &TextStyle{
		Color:                         es.Color,
		Decoration:                    decorationFromEngine(es.Decoration),
		DecorationColor:               es.DecorationColor,
		DecorationStyle:               decorationStyleFromEngine(es.DecorationStyle),
		DecorationThicknessMultiplier: es.DecorationThicknessMultiplier,
		FontWeight:                    fontWeightFromEngine(es.FontWeight),
		FontStyle:                     fontStyleFromEngine(es.FontSlant),
		TextBaseline:                  baselineFromEngine(es.TextBaseline),
		FontFamilies:                  slices.Clone(es.FontFamilies),
		FontSize:                      es.FontSize,
		LetterSpacing:                 es.LetterSpacing,
		WordSpacing:                   es.WordSpacing,
		Height:                        es.Height,
		HeightOverride:                es.HeightOverride,
		Locale:                        es.Locale,
		Background:                    resolvePaint(es.Background, paints),
		Foreground:                    resolvePaint(es.Foreground, paints),
		Shadows:                       shadowsFromEngine(es.Shadows),
	}
}

// Host-to-engine translation, used when styles are pushed on a builder.

// engineWeight expands the host weight to the engine's numeric scale:
// W100 is 100, each step adds 100.
func engineWeight(w FontWeight) int { return (int(w) + 1) * 100 }

func engineSlant(s FontStyle) textlayout.FontSlant {
	if s == FontStyleItalic {
		return textlayout.SlantItalic
	}
	return textlayout.SlantUpright
}

func engineDecoration(d TextDecoration) textlayout.Decoration {
	out := textlayout.DecorationNone
	if d.Has(TextDecorationUnderline) {
		out |= textlayout.DecorationUnderline
	}
	if d.Has(TextDecorationOverline) {
		out |= textlayout.DecorationOverline
	}
	if d.Has(TextDecorationLineThrough) {
		out |= textlayout.DecorationLineThrough
	}
	return out
}

func engineDecorationStyle(s TextDecorationStyle) textlayout.TextDecorationStyle {
	switch s {
	case TextDecorationStyleDouble:
		return textlayout.DecorationStyleDouble
	case TextDecorationStyleDotted:
		return textlayout.DecorationStyleDotted
	case TextDecorationStyleDashed:
		return textlayout.DecorationStyleDashed
	case TextDecorationStyleWavy:
		return textlayout.DecorationStyleWavy
	default:
		return textlayout.DecorationStyleSolid
	}
}

func engineBaseline(b TextBaseline) textlayout.TextBaseline {
	if b == TextBaselineIdeographic {
		return textlayout.BaselineIdeographic
	}
	return textlayout.BaselineAlphabetic
}

func engineAlign(a TextAlign) textlayout.TextAlign {
	switch a {
	case TextAlignRight:
		return textlayout.AlignRight
	case TextAlignCenter:
		return textlayout.AlignCenter
	case TextAlignJustify:
		return textlayout.AlignJustify
	case TextAlignStart:
		return textlayout.AlignStart
	case TextAlignEnd:
		return textlayout.AlignEnd
	default:
		return textlayout.AlignLeft
	}
}

func engineDirection(d TextDirection) textlayout.TextDirection {
	if d == TextDirectionRTL {
		return textlayout.DirectionRTL
	}
	return textlayout.DirectionLTR
}

func engineShadows(shadows []Shadow) []textlayout.Shadow {
	if len(shadows) == 0 {
		return nil
	}
	out := make([]textlayout.Shadow, len(shadows))
	for i, s := range shadows {
		out[i] = textlayout.Shadow{Color: s.Color, Offset: s.Offset, BlurSigma: s.BlurSigma}
	}
	return out
}

func engineHeightStyle(s RectHeightStyle) textlayout.RectHeightStyle {
	switch s {
	case RectHeightMax:
		return textlayout.HeightMax
	case RectHeightIncludeLineSpacingMiddle:
		return textlayout.HeightIncludeLineSpacingMiddle
	case RectHeightIncludeLineSpacingTop:
		return textlayout.HeightIncludeLineSpacingTop
	case RectHeightIncludeLineSpacingBottom:
		return textlayout.HeightIncludeLineSpacingBottom
	case RectHeightStrut:
		return textlayout.HeightStrut
	default:
		return textlayout.HeightTight
	}
}

func engineWidthStyle(s RectWidthStyle) textlayout.RectWidthStyle {
	if s == RectWidthMax {
		return textlayout.WidthMax
	}
	return textlayout.WidthTight
}

func enginePlaceholder(s PlaceholderStyle) textlayout.PlaceholderStyle {
	return textlayout.PlaceholderStyle{
		Width:          s.Width,
		Height:         s.Height,
		Alignment:      enginePlaceholderAlignment(s.Alignment),
		Baseline:       engineBaseline(s.Baseline),
		BaselineOffset: s.BaselineOffset,
	}
}

func enginePlaceholderAlignment(a PlaceholderAlignment) textlayout.PlaceholderAlignment {
	switch a {
	case PlaceholderAboveBaseline:
		return textlayout.PlaceholderAboveBaseline
	case PlaceholderBelowBaseline:
		return textlayout.PlaceholderBelowBaseline
	case PlaceholderTop:
		return textlayout.PlaceholderTop
	case PlaceholderBottom:
		return textlayout.PlaceholderBottom
	case PlaceholderMiddle:
		return textlayout.PlaceholderMiddle
	default:
		return textlayout.PlaceholderBaseline
	}
}

func engineStrut(s StrutStyle) textlayout.StrutStyle {
	return textlayout.StrutStyle{
		Enabled:        s.Enabled,
		FontFamilies:   slices.Clone(s.FontFamilies),
		FontSize:       s.FontSize,
		FontWeight:     engineWeight(s.FontWeight),
		FontSlant:      engineSlant(s.FontStyle),
		Height:         s.Height,
		HeightOverride: s.HeightOverride,
		Leading:        s.Leading,
		ForceHeight:    s.ForceHeight,
	}
}
