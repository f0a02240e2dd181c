package textlayout

import (
	"math"
	"testing"
)

func TestGetRectsForRange_FullLine(t *testing.T) {
	p := buildParagraph(t, "hello", 10000)

	boxes := p.GetRectsForRange(0, 5, HeightTight, WidthTight)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1 merged box", len(boxes))
	}
	box := boxes[0]
	if math.Abs(box.Rect.MinX) > 1e-9 {
		t.Errorf("box MinX = %v, want 0", box.Rect.MinX)
	}
	if math.Abs(box.Rect.MaxX-p.LongestLine()) > 1e-6 {
		t.Errorf("box MaxX = %v, want %v", box.Rect.MaxX, p.LongestLine())
	}
	if box.Rect.MinY >= box.Rect.MaxY {
		t.Errorf("box has no height: %+v", box.Rect)
	}
	if box.Direction != DirectionLTR {
		t.Errorf("box direction = %v, want LTR", box.Direction)
	}
}

func TestGetRectsForRange_SubRange(t *testing.T) {
	p := buildParagraph(t, "hello", 10000)

	full := p.GetRectsForRange(0, 5, HeightTight, WidthTight)[0]
	sub := p.GetRectsForRange(1, 3, HeightTight, WidthTight)
	if len(sub) != 1 {
		t.Fatalf("got %d boxes, want 1", len(sub))
	}
	if sub[0].Rect.MinX <= full.Rect.MinX || sub[0].Rect.MaxX >= full.Rect.MaxX {
		t.Errorf("sub-range box %+v not inside full box %+v", sub[0].Rect, full.Rect)
	}

	// Adjacent sub-ranges tile the line without gaps.
	left := p.GetRectsForRange(0, 3, HeightTight, WidthTight)[0]
	right := p.GetRectsForRange(3, 5, HeightTight, WidthTight)[0]
	if math.Abs(left.Rect.MaxX-right.Rect.MinX) > 1e-6 {
		t.Errorf("boxes do not tile: left ends %v, right starts %v",
			left.Rect.MaxX, right.Rect.MinX)
	}
}

func TestGetRectsForRange_Invalid(t *testing.T) {
	p := buildParagraph(t, "hello", 10000)
	if got := p.GetRectsForRange(3, 3, HeightTight, WidthTight); got != nil {
		t.Errorf("empty range returned %d boxes", len(got))
	}
	if got := p.GetRectsForRange(4, 2, HeightTight, WidthTight); got != nil {
		t.Errorf("inverted range returned %d boxes", len(got))
	}

	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("x")
	q, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := q.GetRectsForRange(0, 1, HeightTight, WidthTight); got != nil {
		t.Errorf("not-laid-out paragraph returned %d boxes", len(got))
	}
}

func TestGetRectsForRange_MultiLine(t *testing.T) {
	p := buildParagraph(t, "aaa\nbbb\nccc", 10000)

	boxes := p.GetRectsForRange(0, 11, HeightTight, WidthTight)
	if len(boxes) != 3 {
		t.Fatalf("got %d boxes, want one per line", len(boxes))
	}
	for i := 1; i < len(boxes); i++ {
		if boxes[i].Rect.MinY < boxes[i-1].Rect.MaxY-1e-6 {
			t.Errorf("box %d at y=%v overlaps box %d ending at y=%v",
				i, boxes[i].Rect.MinY, i-1, boxes[i-1].Rect.MaxY)
		}
	}
}

func TestGetRectsForRange_WidthMax(t *testing.T) {
	p := buildParagraph(t, "aa \nbb \ncc", 10000)

	tight := p.GetRectsForRange(0, 10, HeightTight, WidthTight)
	widest := p.GetRectsForRange(0, 10, HeightTight, WidthMax)
	if len(tight) != 3 || len(widest) != 3 {
		t.Fatalf("got %d tight and %d max boxes, want 3 each", len(tight), len(widest))
	}

	// The interior line extends to its line extent, which drops the
	// trailing space the tight box includes.
	if widest[1].Rect.MaxX >= tight[1].Rect.MaxX {
		t.Errorf("interior box MaxX = %v, want < tight %v",
			widest[1].Rect.MaxX, tight[1].Rect.MaxX)
	}
	mid := p.GetLineMetrics()[1]
	if math.Abs(widest[1].Rect.MaxX-(mid.Left+mid.Width)) > 1e-6 {
		t.Errorf("interior box MaxX = %v, want line extent %v",
			widest[1].Rect.MaxX, mid.Left+mid.Width)
	}
	if math.Abs(widest[1].Rect.MinX-mid.Left) > 1e-6 {
		t.Errorf("interior box MinX = %v, want line left %v", widest[1].Rect.MinX, mid.Left)
	}

	// First and last lines keep their tight extents.
	if widest[0].Rect != tight[0].Rect || widest[2].Rect != tight[2].Rect {
		t.Error("outer line boxes should not change under WidthMax")
	}
}

func TestGetRectsForRange_EmptyLineCaret(t *testing.T) {
	p := buildParagraph(t, "ab\n\ncd", 10000)
	if got := p.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}

	boxes := p.GetRectsForRange(3, 4, HeightTight, WidthTight)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes for the empty line, want 1", len(boxes))
	}
	if boxes[0].Rect.Width() != 0 {
		t.Errorf("caret box width = %v, want 0", boxes[0].Rect.Width())
	}
	if boxes[0].Rect.Height() <= 0 {
		t.Errorf("caret box height = %v, want > 0", boxes[0].Rect.Height())
	}
	m := p.GetLineMetrics()[1]
	if math.Abs(boxes[0].Rect.MinY-(m.Baseline-m.Ascent)) > 1e-9 {
		t.Errorf("caret box top = %v, want line top %v",
			boxes[0].Rect.MinY, m.Baseline-m.Ascent)
	}
}

func TestGetRectsForRange_HeightStyles(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("ab")
	b.PushStyle(testStyle(32))
	b.AddText("XY")
	if err := b.Pop(); err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(10000); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	// The small run's tight box is shorter than the line box set by the
	// big run.
	tight := p.GetRectsForRange(0, 2, HeightTight, WidthTight)[0]
	lineBox := p.GetRectsForRange(0, 2, HeightMax, WidthTight)[0]
	if tight.Rect.Height() >= lineBox.Rect.Height() {
		t.Errorf("tight height %v should be less than line height %v",
			tight.Rect.Height(), lineBox.Rect.Height())
	}
	m := p.GetLineMetrics()[0]
	if math.Abs(lineBox.Rect.MinY-(m.Baseline-m.Ascent)) > 1e-9 {
		t.Errorf("HeightMax top = %v, want line top %v",
			lineBox.Rect.MinY, m.Baseline-m.Ascent)
	}
	if math.Abs(lineBox.Rect.MaxY-(m.Baseline+m.Descent)) > 1e-9 {
		t.Errorf("HeightMax bottom = %v, want line bottom %v",
			lineBox.Rect.MaxY, m.Baseline+m.Descent)
	}

	// Without a strut, HeightStrut behaves like HeightTight.
	strutless := p.GetRectsForRange(0, 2, HeightStrut, WidthTight)[0]
	if strutless.Rect != tight.Rect {
		t.Errorf("HeightStrut without strut = %+v, want tight %+v",
			strutless.Rect, tight.Rect)
	}
}

func TestGetRectsForRange_HeightStrut(t *testing.T) {
	ps := testParagraphStyle()
	ps.Strut = StrutStyle{
		Enabled:        true,
		FontFamilies:   []string{"Go"},
		FontSize:       20,
		FontWeight:     400,
		Height:         2,
		HeightOverride: true,
	}
	b := NewParagraphBuilder(ps, testCollection(t))
	b.AddText("hello")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(10000); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	box := p.GetRectsForRange(0, 5, HeightStrut, WidthTight)[0]
	if got := box.Rect.Height(); math.Abs(got-40) > 0.01 {
		t.Errorf("strut box height = %v, want 40", got)
	}
}

func TestGetGlyphPosition_Edges(t *testing.T) {
	p := buildParagraph(t, "hello", 10000)

	pos := p.GetGlyphPositionAtCoordinate(-5, 5)
	if pos.Position != 0 || pos.Affinity != AffinityDownstream {
		t.Errorf("left of line = %+v, want {0 Downstream}", pos)
	}
	pos = p.GetGlyphPositionAtCoordinate(1e6, 5)
	if pos.Position != 5 || pos.Affinity != AffinityUpstream {
		t.Errorf("right of line = %+v, want {5 Upstream}", pos)
	}
}

func TestGetGlyphPosition_BeforeLayout(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("hello")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	pos := p.GetGlyphPositionAtCoordinate(10, 10)
	if pos.Position != 0 || pos.Affinity != AffinityDownstream {
		t.Errorf("not laid out = %+v, want {0 Downstream}", pos)
	}
}

func TestGetGlyphPosition_YClamp(t *testing.T) {
	p := buildParagraph(t, "ab\ncd", 10000)

	// Above the paragraph clamps to the first line.
	pos := p.GetGlyphPositionAtCoordinate(-5, -100)
	if pos.Position != 0 {
		t.Errorf("above paragraph = %+v, want position 0", pos)
	}
	// Below it clamps to the last line.
	pos = p.GetGlyphPositionAtCoordinate(-5, 1e6)
	if pos.Position != 3 {
		t.Errorf("below paragraph at left = %+v, want position 3", pos)
	}
	pos = p.GetGlyphPositionAtCoordinate(1e6, 1e6)
	if pos.Position != 5 || pos.Affinity != AffinityUpstream {
		t.Errorf("below paragraph at right = %+v, want {5 Upstream}", pos)
	}
}

func TestGetGlyphPosition_Monotonic(t *testing.T) {
	p := buildParagraph(t, "hello world", 10000)

	prev := -1
	for x := 0.0; x <= p.LongestLine(); x += 1.5 {
		pos := p.GetGlyphPositionAtCoordinate(x, 5)
		if pos.Position < prev {
			t.Fatalf("position went backwards at x=%v: %d after %d", x, pos.Position, prev)
		}
		prev = pos.Position
	}

	pos := p.GetGlyphPositionAtCoordinate(p.LongestLine()-0.01, 5)
	if pos.Position < 10 || pos.Position > 11 {
		t.Errorf("near right edge = %+v, want position 10 or 11", pos)
	}
}

func TestGetGlyphPosition_RoundTrip(t *testing.T) {
	p := buildParagraph(t, "hello", 10000)

	for k := 0; k < 5; k++ {
		boxes := p.GetRectsForRange(k, k+1, HeightTight, WidthTight)
		if len(boxes) != 1 {
			t.Fatalf("rune %d: got %d boxes", k, len(boxes))
		}
		mid := (boxes[0].Rect.MinX + boxes[0].Rect.MaxX) / 2
		pos := p.GetGlyphPositionAtCoordinate(mid, 5)
		if pos.Position < k || pos.Position > k+1 {
			t.Errorf("clicking inside rune %d resolved to %+v", k, pos)
		}
	}
}

func TestGetWordBoundary(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("hello world")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cases := []struct {
		offset int
		want   Range
	}{
		{0, Range{Start: 0, End: 5}},
		{2, Range{Start: 0, End: 5}},
		{4, Range{Start: 0, End: 5}},
		{5, Range{Start: 5, End: 6}},
		{6, Range{Start: 6, End: 11}},
		{10, Range{Start: 6, End: 11}},
		{-1, Range{Start: 0, End: 5}},
		{99, Range{Start: 6, End: 11}},
	}
	for _, tc := range cases {
		if got := p.GetWordBoundary(tc.offset); got != tc.want {
			t.Errorf("GetWordBoundary(%d) = %+v, want %+v", tc.offset, got, tc.want)
		}
	}
}

func TestGetWordBoundary_Empty(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := p.GetWordBoundary(0); got != (Range{}) {
		t.Errorf("GetWordBoundary on empty text = %+v, want zero range", got)
	}
}

func TestGetRectsForPlaceholders_None(t *testing.T) {
	p := buildParagraph(t, "hello", 10000)
	if got := p.GetRectsForPlaceholders(); len(got) != 0 {
		t.Errorf("got %d placeholder boxes, want 0", len(got))
	}
}
