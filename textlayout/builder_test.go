package textlayout

import (
	"errors"
	"testing"
)

func TestNewParagraphBuilder_NilFonts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a nil font collection")
		}
	}()
	NewParagraphBuilder(NewParagraphStyle(), nil)
}

func TestBuilder_SpanMerging(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("ab")
	b.AddText("cd")

	if len(b.spans) != 1 {
		t.Fatalf("contiguous equal-style text should merge into one span, got %d spans", len(b.spans))
	}
	if got := b.spans[0].runes; got != (Range{Start: 0, End: 4}) {
		t.Errorf("merged span covers %+v, want {0 4}", got)
	}
}

func TestBuilder_StyleSpans(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("ab")
	b.PushStyle(testStyle(24))
	b.AddText("cd")
	if err := b.Pop(); err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	b.AddText("ef")

	if len(b.spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(b.spans))
	}
	want := []Range{{0, 2}, {2, 4}, {4, 6}}
	for i, r := range want {
		if b.spans[i].runes != r {
			t.Errorf("span %d covers %+v, want %+v", i, b.spans[i].runes, r)
		}
	}
	if got := b.spans[1].style.FontSize; got != 24 {
		t.Errorf("pushed span has size %v, want 24", got)
	}
	if got := b.spans[2].style.FontSize; got != 16 {
		t.Errorf("span after Pop has size %v, want 16", got)
	}
}

func TestBuilder_CurrentStyle(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	if got := b.currentStyle().FontSize; got != 16 {
		t.Errorf("default style has size %v, want 16", got)
	}
	b.PushStyle(testStyle(20))
	b.PushStyle(testStyle(24))
	if got := b.currentStyle().FontSize; got != 24 {
		t.Errorf("after two pushes size is %v, want 24", got)
	}
	if err := b.Pop(); err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if got := b.currentStyle().FontSize; got != 20 {
		t.Errorf("after one pop size is %v, want 20", got)
	}
}

func TestBuilder_UnbalancedPop(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	if err := b.Pop(); !errors.Is(err, ErrUnbalancedPop) {
		t.Errorf("Pop on empty stack returned %v, want ErrUnbalancedPop", err)
	}
	b.PushStyle(testStyle(24))
	if err := b.Pop(); err != nil {
		t.Errorf("balanced Pop returned %v", err)
	}
}

func TestBuilder_AddTextEmpty(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("")
	if len(b.spans) != 0 || len(b.text) != 0 {
		t.Error("empty AddText should record nothing")
	}
}

func TestBuilder_BuildTwice(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("hello")
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderConsumed) {
		t.Errorf("second Build returned %v, want ErrBuilderConsumed", err)
	}
}

func TestBuilder_UseAfterBuild(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for AddText after Build")
		}
	}()
	b.AddText("late")
}

func TestBuilder_EmptyBuild(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(p.text) != 0 {
		t.Errorf("empty build has %d runes of text", len(p.text))
	}
	if len(p.spans) != 1 {
		t.Fatalf("empty build should carry one default span, got %d", len(p.spans))
	}
	if p.spans[0].placeholder != -1 {
		t.Error("default span should not be a placeholder")
	}
}

func TestBuilder_Placeholder(t *testing.T) {
	b := NewParagraphBuilder(testParagraphStyle(), testCollection(t))
	b.AddText("ab")
	b.AddPlaceholder(PlaceholderStyle{Width: 20, Height: 10, Alignment: PlaceholderBaseline, BaselineOffset: 10})
	b.AddText("cd")

	if len(b.text) != 5 {
		t.Fatalf("expected 5 runes including the replacement, got %d", len(b.text))
	}
	if b.text[2] != objectReplacement {
		t.Errorf("placeholder rune is %U, want %U", b.text[2], objectReplacement)
	}
	if len(b.spans) != 3 {
		t.Fatalf("placeholder should split spans, got %d", len(b.spans))
	}
	if b.spans[1].placeholder != 0 {
		t.Errorf("middle span placeholder index is %d, want 0", b.spans[1].placeholder)
	}
	if len(b.placeholders) != 1 {
		t.Fatalf("expected 1 recorded placeholder, got %d", len(b.placeholders))
	}
	if b.placeholders[0].runeIndex != 2 {
		t.Errorf("placeholder sits at rune %d, want 2", b.placeholders[0].runeIndex)
	}
	if b.placeholders[0].style.Width != 20 {
		t.Errorf("placeholder width is %v, want 20", b.placeholders[0].style.Width)
	}
}
