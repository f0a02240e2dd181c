package paragraph

import (
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/paragraph/recording"
)

// testFonts returns a collection with Go Regular registered under the
// family "Go".
func testFonts(t *testing.T) *FontCollection {
	t.Helper()
	fonts := NewFontCollection()
	if err := fonts.AddFont("Go", goregular.TTF); err != nil {
		t.Fatalf("failed to register Go Regular: %v", err)
	}
	return fonts
}

// testStyle returns a text style resolving to the test collection at
// the given size.
func testStyle(size float64) TextStyle {
	s := NewTextStyle()
	s.FontFamilies = []string{"Go"}
	s.FontSize = size
	return s
}

// testParagraphStyle returns a paragraph style using testStyle(16).
func testParagraphStyle() ParagraphStyle {
	ps := NewParagraphStyle()
	ps.DefaultStyle = testStyle(16)
	return ps
}

// buildTestParagraph builds and lays out text in the default test style.
func buildTestParagraph(t *testing.T, text string, width float64) *Paragraph {
	t.Helper()
	b := NewParagraphBuilder(testParagraphStyle(), testFonts(t))
	b.AddText(text)
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(width); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	return p
}

func TestParagraph_ScalarGetters(t *testing.T) {
	p := buildTestParagraph(t, "Hello World", 10000)

	if got := p.MaxWidth(); got != 10000 {
		t.Errorf("MaxWidth = %v, want 10000", got)
	}
	if p.Height() <= 0 {
		t.Errorf("Height = %v, want > 0", p.Height())
	}
	if p.LongestLine() <= 0 {
		t.Errorf("LongestLine = %v, want > 0", p.LongestLine())
	}
	if p.MinIntrinsicWidth() > p.MaxIntrinsicWidth() {
		t.Errorf("MinIntrinsicWidth %v exceeds MaxIntrinsicWidth %v",
			p.MinIntrinsicWidth(), p.MaxIntrinsicWidth())
	}
	if p.AlphabeticBaseline() <= 0 {
		t.Errorf("AlphabeticBaseline = %v, want > 0", p.AlphabeticBaseline())
	}
	if p.IdeographicBaseline() <= p.AlphabeticBaseline() {
		t.Errorf("IdeographicBaseline %v should sit below AlphabeticBaseline %v",
			p.IdeographicBaseline(), p.AlphabeticBaseline())
	}
	if p.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", p.LineCount())
	}
	if p.DidExceedMaxLines() {
		t.Error("unbounded paragraph reported exceeding max lines")
	}
}

func TestGetLineMetrics_Cached(t *testing.T) {
	p := buildTestParagraph(t, "one two\nthree", 10000)

	first := p.GetLineMetrics()
	if len(first) != 2 {
		t.Fatalf("got %d lines of metrics, want 2", len(first))
	}
	second := p.GetLineMetrics()
	if &first[0] != &second[0] {
		t.Error("GetLineMetrics without an intervening Layout returned a new slice")
	}

	// Mutating the cached slice shows through the next call, proving the
	// same backing array is returned.
	first[0].Width = -1
	if got := p.GetLineMetrics()[0].Width; got != -1 {
		t.Errorf("cached Width = %v, want the mutated -1", got)
	}

	// Layout invalidates the cache and recomputes.
	if err := p.Layout(10000); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	fresh := p.GetLineMetrics()
	if len(fresh) != 2 {
		t.Fatalf("got %d lines after relayout, want 2", len(fresh))
	}
	if fresh[0].Width <= 0 {
		t.Errorf("recomputed Width = %v, want > 0", fresh[0].Width)
	}
}

func TestGetLineMetrics_StablePointers(t *testing.T) {
	p := buildTestParagraph(t, "hello", 10000)

	var firstStyle *TextStyle
	for _, sm := range p.GetLineMetrics()[0].RunMetrics {
		firstStyle = sm.Style
	}
	if firstStyle == nil {
		t.Fatal("line metrics carry no run styles")
	}

	// The same call returns the same style pointers; the side list is
	// only cleared by Layout.
	for _, sm := range p.GetLineMetrics()[0].RunMetrics {
		if sm.Style != firstStyle {
			t.Error("second GetLineMetrics returned a different style pointer")
		}
	}
}

func TestGetLineMetrics_StyleTranslation(t *testing.T) {
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	st := testStyle(20)
	st.Color = red
	st.FontWeight = FontWeightBold
	st.LetterSpacing = 1.5

	ps := testParagraphStyle()
	ps.DefaultStyle = st
	b := NewParagraphBuilder(ps, testFonts(t))
	b.AddText("hi")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(10000); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	metrics := p.GetLineMetrics()
	if len(metrics) != 1 {
		t.Fatalf("got %d lines, want 1", len(metrics))
	}
	sm, ok := metrics[0].RunMetrics[0]
	if !ok {
		t.Fatalf("no run metrics at offset 0, got %v", metrics[0].RunMetrics)
	}

	if sm.Style.Color != red {
		t.Errorf("Style.Color = %v, want %v", sm.Style.Color, red)
	}
	if sm.Style.FontWeight != FontWeightBold {
		t.Errorf("Style.FontWeight = %v, want Bold", sm.Style.FontWeight)
	}
	if sm.Style.FontSize != 20 {
		t.Errorf("Style.FontSize = %v, want 20", sm.Style.FontSize)
	}
	if sm.Style.LetterSpacing != 1.5 {
		t.Errorf("Style.LetterSpacing = %v, want 1.5", sm.Style.LetterSpacing)
	}
	// The glyph paint the builder interned resolves back to a concrete
	// foreground carrying the style color.
	if sm.Style.Foreground == nil {
		t.Fatal("Style.Foreground = nil, want the interned glyph paint")
	}
	if sm.Style.Foreground.Color != red {
		t.Errorf("Foreground.Color = %v, want %v", sm.Style.Foreground.Color, red)
	}
	if sm.FontMetrics.Ascent <= 0 || sm.FontMetrics.Descent <= 0 {
		t.Errorf("FontMetrics ascent/descent = %v/%v, want positive",
			sm.FontMetrics.Ascent, sm.FontMetrics.Descent)
	}
}

func TestGetWordBoundary_BracketsOffset(t *testing.T) {
	text := "Hello brave new world"
	p := buildTestParagraph(t, text, 10000)

	for offset := 0; offset < len([]rune(text)); offset++ {
		r := p.GetWordBoundary(offset)
		if r.Start > offset || offset >= r.End {
			t.Errorf("GetWordBoundary(%d) = [%d,%d), does not bracket the offset",
				offset, r.Start, r.End)
		}
	}

	if got := p.GetWordBoundary(0); got != (Range{Start: 0, End: 5}) {
		t.Errorf(`word at 0 = %+v, want the range of "Hello" {0 5}`, got)
	}
}

func TestGetGlyphPositionAtCoordinate_Monotone(t *testing.T) {
	p := buildTestParagraph(t, "abcdefg", 10000)

	y := p.AlphabeticBaseline() / 2
	last := -1
	for x := -5.0; x < p.LongestLine()+5; x += 2 {
		pos := p.GetGlyphPositionAtCoordinate(x, y)
		if pos.Position < last {
			t.Fatalf("position at x=%v went backwards: %d after %d", x, pos.Position, last)
		}
		last = pos.Position
	}

	if got := p.GetGlyphPositionAtCoordinate(-10, y); got.Position != 0 || got.Affinity != AffinityDownstream {
		t.Errorf("left of line = %+v, want {0 Downstream}", got)
	}
	if got := p.GetGlyphPositionAtCoordinate(p.LongestLine()+10, y); got.Position != 7 || got.Affinity != AffinityUpstream {
		t.Errorf("right of line = %+v, want {7 Upstream}", got)
	}
}

func TestGetRectsForRange(t *testing.T) {
	p := buildTestParagraph(t, "hello", 10000)

	boxes := p.GetRectsForRange(0, 5, RectHeightMax, RectWidthTight)
	if len(boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(boxes))
	}
	box := boxes[0]
	if box.Direction != TextDirectionLTR {
		t.Errorf("box direction = %v, want LTR", box.Direction)
	}
	if box.Rect.MinX != 0 {
		t.Errorf("box MinX = %v, want 0", box.Rect.MinX)
	}
	if math.Abs(box.Rect.MaxX-p.LongestLine()) > 1e-6 {
		t.Errorf("box MaxX = %v, want line width %v", box.Rect.MaxX, p.LongestLine())
	}
	m := p.GetLineMetrics()[0]
	if want := m.Ascent + m.Descent; math.Abs(box.Rect.Height()-want) > 1e-6 {
		t.Errorf("box height = %v, want line box %v", box.Rect.Height(), want)
	}

	if got := p.GetRectsForRange(3, 3, RectHeightTight, RectWidthTight); len(got) != 0 {
		t.Errorf("empty range produced %d boxes", len(got))
	}
}

func TestGetRectsForPlaceholders(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testFonts(t))
	b.AddText("a")
	b.AddPlaceholder(PlaceholderStyle{
		Width:          24,
		Height:         12,
		Alignment:      PlaceholderBaseline,
		BaselineOffset: 12,
	})
	b.AddText("b")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(10000); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	boxes := p.GetRectsForPlaceholders()
	if len(boxes) != 1 {
		t.Fatalf("got %d placeholder boxes, want 1", len(boxes))
	}
	box := boxes[0]
	if math.Abs(box.Rect.Width()-24) > 1e-6 {
		t.Errorf("placeholder width = %v, want 24", box.Rect.Width())
	}
	if math.Abs(box.Rect.Height()-12) > 1e-6 {
		t.Errorf("placeholder height = %v, want 12", box.Rect.Height())
	}
	// With the internal baseline at the box bottom, the box bottom sits
	// on the line baseline.
	if math.Abs(box.Rect.MaxY-p.AlphabeticBaseline()) > 1e-6 {
		t.Errorf("placeholder bottom = %v, want baseline %v",
			box.Rect.MaxY, p.AlphabeticBaseline())
	}
}

func TestParagraph_MaxLines(t *testing.T) {
	ps := testParagraphStyle()
	ps.MaxLines = 2
	ps.Ellipsis = "…"
	b := NewParagraphBuilder(ps, testFonts(t))
	b.AddText("aaa bbb ccc ddd eee fff ggg hhh iii jjj")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(60); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	if got := p.LineCount(); got > 2 {
		t.Errorf("LineCount = %d, want at most 2", got)
	}
	if !p.DidExceedMaxLines() {
		t.Error("DidExceedMaxLines = false, want true for truncated text")
	}
}

func TestParagraph_Paint(t *testing.T) {
	p := buildTestParagraph(t, "hi", 10000)

	b := recording.NewBuilder(200, 50)
	if !p.Paint(b, 5, 7) {
		t.Fatal("Paint reported nothing painted")
	}
	dl := b.FinishRecording()

	cmds := dl.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1: %s", len(cmds), dl)
	}
	run, ok := cmds[0].(recording.DrawGlyphRunCommand)
	if !ok {
		t.Fatalf("command is %T, want DrawGlyphRunCommand", cmds[0])
	}
	if run.X != 5 {
		t.Errorf("run X = %v, want the paint offset 5", run.X)
	}
	if want := 7 + p.AlphabeticBaseline(); math.Abs(run.Y-want) > 1e-9 {
		t.Errorf("run Y = %v, want baseline %v", run.Y, want)
	}
	// The glyph paint resolves to the interned fill of the style color.
	if run.Paint.Color != (color.NRGBA{A: 0xFF}) {
		t.Errorf("run paint color = %v, want opaque black", run.Paint.Color)
	}
	if run.Paint.Style != recording.DrawStyleFill {
		t.Errorf("run paint style = %v, want Fill", run.Paint.Style)
	}
}

func TestParagraph_PaintLayerOrder(t *testing.T) {
	gray := recording.NewPaint()
	gray.Color = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}

	st := testStyle(16)
	st.Background = &gray
	st.Decoration = TextDecorationUnderline

	ps := testParagraphStyle()
	ps.DefaultStyle = st
	b := NewParagraphBuilder(ps, testFonts(t))
	b.AddText("hi")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := p.Layout(10000); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	rb := recording.NewBuilder(200, 50)
	p.Paint(rb, 0, 0)
	cmds := rb.FinishRecording().Commands()

	want := []recording.CommandType{
		recording.CmdDrawRect,     // background
		recording.CmdDrawGlyphRun, // glyphs
		recording.CmdDrawRect,     // underline
	}
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type(), want[i])
		}
	}

	bg := cmds[0].(recording.DrawRectCommand)
	if bg.Paint.Color != gray.Color {
		t.Errorf("background color = %v, want %v", bg.Paint.Color, gray.Color)
	}
}

func TestParagraph_PaintBeforeLayout(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testFonts(t))
	b.AddText("hello")
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rb := recording.NewBuilder(100, 100)
	if p.Paint(rb, 0, 0) {
		t.Error("Paint before Layout reported painting")
	}
	if got := len(rb.FinishRecording().Commands()); got != 0 {
		t.Errorf("Paint before Layout recorded %d commands", got)
	}
}
