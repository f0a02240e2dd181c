package paragraph

import (
	"slices"

	"github.com/gogpu/paragraph/recording"
	"github.com/gogpu/paragraph/textlayout"
)

// FontCollection is the set of fonts available to paragraphs,
// re-exported from the layout engine so most callers need only this
// package.
type FontCollection = textlayout.FontCollection

// NewFontCollection returns an empty font collection.
func NewFontCollection() *FontCollection {
	return textlayout.NewFontCollection()
}

// Errors surfaced by builder and font-collection operations,
// re-exported from the layout engine.
var (
	ErrNoFonts         = textlayout.ErrNoFonts
	ErrInvalidFont     = textlayout.ErrInvalidFont
	ErrBuilderConsumed = textlayout.ErrBuilderConsumed
	ErrUnbalancedPop   = textlayout.ErrUnbalancedPop
)

// ParagraphBuilder assembles styled text into a Paragraph. Styles are
// pushed and popped around AddText calls. Each pushed style's paints
// are interned into a descriptor list shared with the built paragraph;
// the engine styles carry only compact identifiers into that list.
type ParagraphBuilder struct {
	engine *textlayout.ParagraphBuilder
	paints []recording.Paint
}

// NewParagraphBuilder creates a builder for one paragraph. It panics if
// fonts is nil.
func NewParagraphBuilder(style ParagraphStyle, fonts *FontCollection) *ParagraphBuilder {
	b := &ParagraphBuilder{}
	engineStyle := textlayout.ParagraphStyle{
		TextAlign:     engineAlign(style.TextAlign),
		TextDirection: engineDirection(style.TextDirection),
		MaxLines:      style.MaxLines,
		Ellipsis:      style.Ellipsis,
		Height:        style.Height,
		DefaultStyle:  b.engineStyle(&style.DefaultStyle),
		Strut:         engineStrut(style.Strut),
	}
	b.engine = textlayout.NewParagraphBuilder(engineStyle, fonts)
	return b
}

// PushStyle makes style the active style for subsequent AddText calls.
func (b *ParagraphBuilder) PushStyle(style TextStyle) {
	b.engine.PushStyle(b.engineStyle(&style))
}

// Pop restores the style that was active before the matching PushStyle.
// It returns ErrUnbalancedPop when every pushed style has already been
// popped.
func (b *ParagraphBuilder) Pop() error {
	return b.engine.Pop()
}

// AddText appends text rendered with the active style.
func (b *ParagraphBuilder) AddText(s string) {
	b.engine.AddText(s)
}

// AddPlaceholder reserves an inline box in the text flow. Its rectangle
// is reported by Paragraph.GetRectsForPlaceholders after layout.
func (b *ParagraphBuilder) AddPlaceholder(style PlaceholderStyle) {
	b.engine.AddPlaceholder(enginePlaceholder(style))
}

// Build seals the builder and moves the styled text and the paint
// descriptor list into the returned Paragraph. The builder must not be
// used afterwards; a second Build returns ErrBuilderConsumed.
func (b *ParagraphBuilder) Build() (*Paragraph, error) {
	engine, err := b.engine.Build()
	if err != nil {
		return nil, err
	}
	p := &Paragraph{engine: engine, paints: b.paints}
	b.paints = nil
	return p, nil
}

// engineStyle translates a host style to an engine style, interning its
// paints. The glyph paint is always interned, either the style's
// foreground or a plain fill of its color, so every run the engine
// paints resolves through the descriptor list.
func (b *ParagraphBuilder) engineStyle(s *TextStyle) textlayout.TextStyle {
	es := textlayout.TextStyle{
		Color:                         s.Color,
		Decoration:                    engineDecoration(s.Decoration),
		DecorationColor:               s.DecorationColor,
		DecorationStyle:               engineDecorationStyle(s.DecorationStyle),
		DecorationThicknessMultiplier: s.DecorationThicknessMultiplier,
		FontWeight:                    engineWeight(s.FontWeight),
		FontSlant:                     engineSlant(s.FontStyle),
		TextBaseline:                  engineBaseline(s.TextBaseline),
		FontFamilies:                  slices.Clone(s.FontFamilies),
		FontSize:                      s.FontSize,
		LetterSpacing:                 s.LetterSpacing,
		WordSpacing:                   s.WordSpacing,
		Height:                        s.Height,
		HeightOverride:                s.HeightOverride,
		Locale:                        s.Locale,
		Shadows:                       engineShadows(s.Shadows),
	}

	if s.Foreground != nil {
		es.Foreground = b.internPaint(*s.Foreground)
	} else {
		fg := recording.NewPaint()
		fg.Color = s.Color
		es.Foreground = b.internPaint(fg)
	}
	if s.Background != nil {
		es.Background = b.internPaint(*s.Background)
	}
	return es
}

// internPaint appends a copy of the paint to the descriptor list and
// returns its identifier.
func (b *ParagraphBuilder) internPaint(p recording.Paint) textlayout.PaintID {
	b.paints = append(b.paints, p.Clone())
	return textlayout.PaintID(len(b.paints) - 1)
}
