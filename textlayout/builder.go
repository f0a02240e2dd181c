package textlayout

// ParagraphBuilder collects styled text and placeholders for one
// Paragraph. Styles form a stack: PushStyle applies on top of the
// current style until the matching Pop, and text added outside any
// pushed style uses the paragraph's default style.
//
// A builder produces exactly one Paragraph; it must not be used after
// Build.
type ParagraphBuilder struct {
	pstyle       ParagraphStyle
	fonts        *FontCollection
	text         []rune
	spans        []styleSpan
	placeholders []placeholderSpan
	stack        []TextStyle
	consumed     bool
}

// NewParagraphBuilder returns a builder for one paragraph. The font
// collection is captured by the built paragraph and must outlive it.
func NewParagraphBuilder(style ParagraphStyle, fonts *FontCollection) *ParagraphBuilder {
	if fonts == nil {
		panic("textlayout: NewParagraphBuilder called with nil font collection")
	}
	return &ParagraphBuilder{pstyle: style, fonts: fonts}
}

// PushStyle applies a style to all text added until the matching Pop.
func (b *ParagraphBuilder) PushStyle(style TextStyle) {
	b.checkUsable()
	b.stack = append(b.stack, style.clone())
}

// Pop restores the style in effect before the matching PushStyle. It
// returns ErrUnbalancedPop when no style is pushed.
func (b *ParagraphBuilder) Pop() error {
	b.checkUsable()
	if len(b.stack) == 0 {
		return ErrUnbalancedPop
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// AddText appends text in the current style.
func (b *ParagraphBuilder) AddText(s string) {
	b.checkUsable()
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}
	start := len(b.text)
	b.text = append(b.text, runes...)
	b.appendSpan(Range{Start: start, End: start + len(runes)}, -1)
}

// AddPlaceholder reserves an inline box in the current style. Its
// laid-out rectangle is reported by Paragraph.GetRectsForPlaceholders
// in insertion order.
func (b *ParagraphBuilder) AddPlaceholder(style PlaceholderStyle) {
	b.checkUsable()
	start := len(b.text)
	b.text = append(b.text, objectReplacement)
	idx := len(b.placeholders)
	b.placeholders = append(b.placeholders, placeholderSpan{style: style, runeIndex: start})
	b.appendSpan(Range{Start: start, End: start + 1}, idx)
}

// Build produces the Paragraph and consumes the builder. A second call
// returns ErrBuilderConsumed.
func (b *ParagraphBuilder) Build() (*Paragraph, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	spans := b.spans
	if len(spans) == 0 {
		spans = []styleSpan{{
			style:       b.pstyle.DefaultStyle.clone(),
			runes:       Range{Start: 0, End: len(b.text)},
			placeholder: -1,
		}}
	}

	pstyle := b.pstyle
	pstyle.DefaultStyle = b.pstyle.DefaultStyle.clone()

	return &Paragraph{
		text:         b.text,
		spans:        spans,
		placeholders: b.placeholders,
		pstyle:       pstyle,
		fonts:        b.fonts,
		shaper:       newShaper(b.fonts),
	}, nil
}

// currentStyle returns the style in effect: the top of the stack or the
// paragraph default.
func (b *ParagraphBuilder) currentStyle() *TextStyle {
	if len(b.stack) > 0 {
		return &b.stack[len(b.stack)-1]
	}
	return &b.pstyle.DefaultStyle
}

// appendSpan records a span of the current style, merging contiguous
// spans of equal style so style runs stay maximal.
func (b *ParagraphBuilder) appendSpan(r Range, placeholder int) {
	style := b.currentStyle()
	if placeholder < 0 && len(b.spans) > 0 {
		last := &b.spans[len(b.spans)-1]
		if last.placeholder < 0 && last.runes.End == r.Start && last.style.Equal(style) {
			last.runes.End = r.End
			return
		}
	}
	b.spans = append(b.spans, styleSpan{style: style.clone(), runes: r, placeholder: placeholder})
}

func (b *ParagraphBuilder) checkUsable() {
	if b.consumed {
		panic("textlayout: ParagraphBuilder used after Build")
	}
}
