package paragraph

import (
	"image/color"
	"testing"

	"github.com/gogpu/paragraph/recording"
	"github.com/gogpu/paragraph/textlayout"
)

func TestFontWeightFromEngine(t *testing.T) {
	tests := []struct {
		engine int
		want   FontWeight
	}{
		{100, FontWeightW100},
		{400, FontWeightW400},
		{450, FontWeightW400}, // (450-100)/100 = 3
		{700, FontWeightW700},
		{900, FontWeightW900},
		// Out-of-scale inputs clamp to the boundaries.
		{0, FontWeightW100},
		{-200, FontWeightW100},
		{99, FontWeightW100},
		{901, FontWeightW900},
		{5000, FontWeightW900},
	}
	for _, tt := range tests {
		if got := fontWeightFromEngine(tt.engine); got != tt.want {
			t.Errorf("fontWeightFromEngine(%d) = %v, want %v", tt.engine, got, tt.want)
		}
	}
}

func TestEngineWeightRoundTrip(t *testing.T) {
	for w := FontWeightW100; w <= FontWeightW900; w++ {
		if got := fontWeightFromEngine(engineWeight(w)); got != w {
			t.Errorf("round trip of %v came back as %v", w, got)
		}
	}
	if got := engineWeight(FontWeightNormal); got != 400 {
		t.Errorf("engineWeight(Normal) = %d, want 400", got)
	}
	if got := engineWeight(FontWeightBold); got != 700 {
		t.Errorf("engineWeight(Bold) = %d, want 700", got)
	}
}

func TestFontStyleFromEngine(t *testing.T) {
	// Upright maps to normal; every other slant maps to italic.
	tests := []struct {
		slant textlayout.FontSlant
		want  FontStyle
	}{
		{textlayout.SlantUpright, FontStyleNormal},
		{textlayout.SlantItalic, FontStyleItalic},
		{textlayout.SlantOblique, FontStyleItalic},
		{textlayout.FontSlant(99), FontStyleItalic},
	}
	for _, tt := range tests {
		if got := fontStyleFromEngine(tt.slant); got != tt.want {
			t.Errorf("fontStyleFromEngine(%v) = %v, want %v", tt.slant, got, tt.want)
		}
	}
}

func TestDecorationFromEngine(t *testing.T) {
	all := textlayout.DecorationUnderline | textlayout.DecorationOverline | textlayout.DecorationLineThrough
	got := decorationFromEngine(all)
	want := TextDecorationUnderline | TextDecorationOverline | TextDecorationLineThrough
	if got != want {
		t.Errorf("decorationFromEngine(all) = %v, want %v", got, want)
	}
	if got := decorationFromEngine(textlayout.DecorationNone); got != TextDecorationNone {
		t.Errorf("decorationFromEngine(none) = %v, want none", got)
	}
}

func TestResolvePaint_Nil(t *testing.T) {
	if got := resolvePaint(nil, nil); got != nil {
		t.Errorf("resolvePaint(nil) = %+v, want nil", got)
	}
	var nilPaint *textlayout.Paint
	if got := resolvePaint(nilPaint, nil); got != nil {
		t.Errorf("resolvePaint((*Paint)(nil)) = %+v, want nil", got)
	}
}

func TestResolvePaint_ByID(t *testing.T) {
	red := recording.NewPaint()
	red.Color = color.NRGBA{R: 0xFF, A: 0xFF}
	paints := []recording.Paint{recording.NewPaint(), red}

	got := resolvePaint(textlayout.PaintID(1), paints)
	if got == nil {
		t.Fatal("resolvePaint returned nil for a valid id")
	}
	if got.Color != red.Color {
		t.Errorf("resolved color = %v, want the descriptor entry %v", got.Color, red.Color)
	}

	// The resolution is a copy: mutating it leaves the list untouched.
	got.Color = color.NRGBA{G: 0xFF, A: 0xFF}
	if paints[1].Color != red.Color {
		t.Error("mutating the resolved paint changed the descriptor list")
	}
}

func TestResolvePaint_Direct(t *testing.T) {
	direct := &textlayout.Paint{
		Color:       color.NRGBA{B: 0xFF, A: 0xFF},
		Style:       textlayout.DrawStyleStroke,
		StrokeWidth: 2.5,
		AntiAlias:   true,
	}

	got := resolvePaint(direct, nil)
	if got == nil {
		t.Fatal("resolvePaint returned nil for a direct paint")
	}
	if got.Color != direct.Color {
		t.Errorf("color = %v, want %v", got.Color, direct.Color)
	}
	if got.Style != recording.DrawStyleStroke {
		t.Errorf("style = %v, want Stroke", got.Style)
	}
	if got.StrokeWidth != 2.5 {
		t.Errorf("stroke width = %v, want 2.5", got.StrokeWidth)
	}
	if !got.AntiAlias {
		t.Error("anti-alias flag was dropped")
	}
}

func TestResolvePaint_BadIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out-of-range paint id")
		}
	}()
	resolvePaint(textlayout.PaintID(3), []recording.Paint{recording.NewPaint()})
}

func TestStyleFromEngine_Shadows(t *testing.T) {
	es := textlayout.NewTextStyle()
	es.Shadows = []textlayout.Shadow{
		{Color: color.NRGBA{R: 0xFF, A: 0xFF}, BlurSigma: 2},
		{Color: color.NRGBA{B: 0xFF, A: 0xFF}},
	}

	hs := styleFromEngine(&es, nil)
	if len(hs.Shadows) != 2 {
		t.Fatalf("got %d shadows, want 2", len(hs.Shadows))
	}
	if hs.Shadows[0].BlurSigma != 2 {
		t.Errorf("shadow sigma = %v, want 2", hs.Shadows[0].BlurSigma)
	}
	if hs.Shadows[1].Color != (color.NRGBA{B: 0xFF, A: 0xFF}) {
		t.Errorf("shadow color = %v, want blue", hs.Shadows[1].Color)
	}
}

func TestStyleFromEngine_FamiliesCopied(t *testing.T) {
	es := textlayout.NewTextStyle()
	es.FontFamilies = []string{"Go", "fallback"}

	hs := styleFromEngine(&es, nil)
	hs.FontFamilies[0] = "mutated"
	if es.FontFamilies[0] != "Go" {
		t.Error("mutating the host style changed the engine style's families")
	}
}

func TestEnumRemaps(t *testing.T) {
	if got := engineAlign(TextAlignJustify); got != textlayout.AlignJustify {
		t.Errorf("engineAlign(Justify) = %v", got)
	}
	if got := engineDirection(TextDirectionRTL); got != textlayout.DirectionRTL {
		t.Errorf("engineDirection(RTL) = %v", got)
	}
	if got := engineHeightStyle(RectHeightStrut); got != textlayout.HeightStrut {
		t.Errorf("engineHeightStyle(Strut) = %v", got)
	}
	if got := engineWidthStyle(RectWidthMax); got != textlayout.WidthMax {
		t.Errorf("engineWidthStyle(Max) = %v", got)
	}
	if got := baselineFromEngine(textlayout.BaselineIdeographic); got != TextBaselineIdeographic {
		t.Errorf("baselineFromEngine(Ideographic) = %v", got)
	}
	if got := affinityFromEngine(textlayout.AffinityUpstream); got != AffinityUpstream {
		t.Errorf("affinityFromEngine(Upstream) = %v", got)
	}
	if got := decorationStyleFromEngine(textlayout.DecorationStyleWavy); got != TextDecorationStyleWavy {
		t.Errorf("decorationStyleFromEngine(Wavy) = %v", got)
	}
}
