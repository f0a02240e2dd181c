package textlayout

import (
	"math"

	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/paragraph/geom"
	"github.com/gogpu/paragraph/textlayout/cache"
)

// placeholderSpan records one inline placeholder: its style and the
// offset of the object replacement rune standing in for it.
type placeholderSpan struct {
	style     PlaceholderStyle
	runeIndex int
}

// objectReplacement stands in for placeholder content in the text.
const objectReplacement = '￼'

// Paragraph is a styled block of text. Build one with ParagraphBuilder,
// call Layout to break it into lines, then query metrics, hit-test, or
// hand it to a Painter.
//
// Paragraph is not safe for concurrent use.
type Paragraph struct {
	text         []rune
	spans        []styleSpan
	placeholders []placeholderSpan
	pstyle       ParagraphStyle
	fonts        *FontCollection
	shaper       *shaper

	attrs      charAttrs
	levels     []int
	attrsValid bool

	// Layout results.
	laidOut             bool
	maxWidth            float64
	height              float64
	longestLine         float64
	minIntrinsicWidth   float64
	maxIntrinsicWidth   float64
	alphabeticBaseline  float64
	ideographicBaseline float64
	didExceedMaxLines   bool
	lines               []line
	placeholderBoxes    []TextBox
	strut               strutMetrics
}

// strutMetrics is the resolved minimum line box.
type strutMetrics struct {
	enabled bool
	force   bool
	ascent  float64
	descent float64
}

// textSegment is a hard-break-delimited slice of the paragraph text.
type textSegment struct {
	start, end int // rune offsets, end excludes the newline
	hardBreak  bool
}

// Layout breaks the text into lines no wider than maxWidth and computes
// all paragraph metrics. It may be called repeatedly with different
// widths; each call replaces the previous layout.
func (p *Paragraph) Layout(maxWidth float64) error {
	if p.fonts.empty() {
		return ErrNoFonts
	}

	p.laidOut = false
	p.maxWidth = maxWidth
	p.height = 0
	p.longestLine = 0
	p.minIntrinsicWidth = 0
	p.maxIntrinsicWidth = 0
	p.didExceedMaxLines = false
	p.lines = p.lines[:0]
	p.placeholderBoxes = make([]TextBox, len(p.placeholders))

	p.ensureAttrs()
	p.strut = p.computeStrut()

	baseDir := baseDirection(p.pstyle.TextDirection)
	ellipsis := []rune(p.pstyle.Ellipsis)

	remaining := math.MaxInt
	if !p.pstyle.unlimited() {
		remaining = p.pstyle.MaxLines
	}

	segments := p.segments()
	for segIdx, seg := range segments {
		if remaining <= 0 {
			p.didExceedMaxLines = true
			break
		}

		parText := p.text[seg.start:seg.end]
		outs := p.shapeSegment(seg)
		p.accumulateIntrinsics(outs, seg)

		if len(outs) == 0 {
			ln := p.emptyLine(seg.start, seg.hardBreak)
			p.lines = append(p.lines, ln)
			remaining--
			continue
		}

		textContinues := len(ellipsis) > 0 && segIdx < len(segments)-1
		wrapped, truncated := p.shaper.wrapLines(
			parText, outs, baseDir, maxWidth, capLines(remaining),
			ellipsis, &p.pstyle.DefaultStyle, textContinues)

		for i, wl := range wrapped {
			lastOfSegment := i == len(wrapped)-1
			ln := p.buildLine(wl, seg.start)
			if lastOfSegment && truncated == 0 && seg.hardBreak {
				ln.hardBreak = true
				ln.endIncludingNewline = seg.end + 1
			}
			p.lines = append(p.lines, ln)
		}
		remaining -= len(wrapped)

		if truncated > 0 {
			p.didExceedMaxLines = true
			break
		}
		if remaining <= 0 && segIdx < len(segments)-1 {
			p.didExceedMaxLines = true
			break
		}
	}

	p.finishLayout()
	p.laidOut = true
	slogger().Debug("paragraph laid out",
		"runes", len(p.text),
		"lines", len(p.lines),
		"maxWidth", maxWidth,
		"exceededMaxLines", p.didExceedMaxLines)
	return nil
}

// capLines clamps the remaining line budget to the wrapper's domain,
// where zero means unlimited.
func capLines(remaining int) int {
	if remaining == math.MaxInt {
		return 0
	}
	return remaining
}

// segments splits the text at hard breaks. The final segment is always
// emitted, so a trailing newline produces an empty last line and an
// empty paragraph produces one empty segment.
func (p *Paragraph) segments() []textSegment {
	var segs []textSegment
	start := 0
	for i, r := range p.text {
		if r == '\n' {
			segs = append(segs, textSegment{start: start, end: i, hardBreak: true})
			start = i + 1
		}
	}
	segs = append(segs, textSegment{start: start, end: len(p.text)})
	return segs
}

// shapeSegment shapes the spans overlapping one segment, splitting each
// span at embedding level boundaries first so every shaped range is
// directionally uniform. Offsets in the returned outputs are relative
// to the segment start.
func (p *Paragraph) shapeSegment(seg textSegment) []shaping.Output {
	if seg.end <= seg.start {
		return nil
	}

	parText := p.text[seg.start:seg.end]
	parHash := cache.HashRunes(parText)

	var outs []shaping.Output
	for i := range p.spans {
		span := &p.spans[i]
		overlap := span.runes.Intersect(Range{Start: seg.start, End: seg.end})
		if overlap.IsEmpty() {
			continue
		}
		for _, lr := range splitLevels(p.levels, overlap) {
			shaped := p.shaper.shapeRange(parText, parHash, lr.runes.Start-seg.start, lr.runes.End-seg.start, &span.style, levelDirection(lr.level))
			if span.placeholder >= 0 {
				for j := range shaped {
					overridePlaceholder(&shaped[j], p.placeholders[span.placeholder].style.Width)
				}
			}
			outs = append(outs, shaped...)
		}
	}
	return outs
}

// overridePlaceholder replaces a shaped object replacement rune with a
// box of the placeholder's width. The glyph itself is never painted;
// only its advance participates in layout.
func overridePlaceholder(out *shaping.Output, width float64) {
	adv := floatToFixed(width)
	for i := range out.Glyphs {
		out.Glyphs[i].XAdvance = 0
		out.Glyphs[i].XOffset = 0
	}
	if len(out.Glyphs) > 0 {
		out.Glyphs[0].XAdvance = adv
	}
	out.Advance = adv
}

// buildLine assembles one wrapped line into the internal line model:
// run metrics, rune ranges, visual order, positions, and width trims.
func (p *Paragraph) buildLine(wl shaping.Line, parStart int) line {
	ln := line{}
	ln.textRange = Range{Start: math.MaxInt, End: 0}

	for _, out := range wl {
		absStart := parStart + out.Runes.Offset
		absEnd := absStart + out.Runes.Count
		styleIdx := p.spanAt(min(absStart, len(p.text)-1))
		span := &p.spans[styleIdx]

		run := lineRun{
			out:         out,
			runes:       Range{Start: absStart, End: absEnd},
			rebase:      parStart,
			level:       p.levelAt(absStart),
			styleIdx:    styleIdx,
			placeholder: span.placeholder,
		}
		if span.placeholder < 0 {
			run.ascent, run.descent, run.gap = p.scaledRunMetrics(&out, &span.style)
			run.unscaledAscent = fixedToFloat(out.LineBounds.Ascent)
		}

		if absStart < ln.textRange.Start {
			ln.textRange.Start = absStart
		}
		if absEnd > ln.textRange.End {
			ln.textRange.End = absEnd
		}
		ln.runs = append(ln.runs, run)
	}

	if ln.textRange.Start == math.MaxInt {
		ln.textRange = Range{Start: parStart, End: parStart}
	}
	ln.endIncludingNewline = ln.textRange.End
	ln.endExcludingWhitespace = ln.textRange.End

	p.finishLineBox(&ln)
	ln.computeVisualOrder()
	ln.position()
	ln.trimTrailingWhitespace(p.text)
	return ln
}

// finishLineBox aggregates the line box from run metrics, the strut,
// and placeholder alignment in two phases: baseline-relative placeholder
// kinds participate like runs, then box-relative kinds grow whichever
// side they need.
func (p *Paragraph) finishLineBox(ln *line) {
	var a, d, g, ua float64

	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			continue
		}
		a = math.Max(a, run.ascent)
		d = math.Max(d, run.descent)
		g = math.Max(g, run.gap)
		ua = math.Max(ua, run.unscaledAscent)
	}

	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder < 0 {
			continue
		}
		ph := p.placeholders[run.placeholder].style
		switch ph.Alignment {
		case PlaceholderBaseline:
			a = math.Max(a, ph.BaselineOffset)
			d = math.Max(d, ph.Height-ph.BaselineOffset)
		case PlaceholderAboveBaseline:
			a = math.Max(a, ph.Height)
		case PlaceholderBelowBaseline:
			d = math.Max(d, ph.Height)
		}
	}

	if p.strut.enabled {
		if p.strut.force {
			a, d, g = p.strut.ascent, p.strut.descent, 0
		} else {
			a = math.Max(a, p.strut.ascent)
			d = math.Max(d, p.strut.descent)
		}
	}

	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder < 0 {
			continue
		}
		ph := p.placeholders[run.placeholder].style
		switch ph.Alignment {
		case PlaceholderTop:
			d = math.Max(d, ph.Height-a)
		case PlaceholderBottom:
			a = math.Max(a, ph.Height-d)
		case PlaceholderMiddle:
			if grow := (ph.Height - (a + d)) / 2; grow > 0 {
				a += grow
				d += grow
			}
		}
	}

	ln.ascent, ln.descent, ln.gap, ln.unscaledAscent = a, d, g, ua
}

// scaledRunMetrics extracts a run's line metrics and applies the height
// multiplier from the style or the paragraph style.
func (p *Paragraph) scaledRunMetrics(out *shaping.Output, style *TextStyle) (a, d, g float64) {
	a = fixedToFloat(out.LineBounds.Ascent)
	d = -fixedToFloat(out.LineBounds.Descent)
	g = fixedToFloat(out.LineBounds.Gap)

	mult := 0.0
	if style.HeightOverride && style.Height > 0 {
		mult = style.Height
	} else if p.pstyle.Height > 0 {
		mult = p.pstyle.Height
	}
	if mult > 0 && a+d > 0 {
		scale := mult * style.FontSize / (a + d)
		a *= scale
		d *= scale
		g = 0
	}
	return a, d, g
}

// emptyLine builds the line for an empty segment: a blank line whose
// height comes from the style in effect at that offset.
func (p *Paragraph) emptyLine(offset int, hardBreak bool) line {
	styleIdx := p.spanAt(min(offset, len(p.text)-1))
	style := &p.spans[styleIdx].style

	var a, d float64
	p.fonts.setQuery(style.FontFamilies, style.FontWeight, style.FontSlant)
	if face := p.fonts.ResolveFace(' '); face != nil {
		_, bounds, _ := p.shaper.probe(face, style.FontSize, ' ')
		a = fixedToFloat(bounds.Ascent)
		d = -fixedToFloat(bounds.Descent)
	}
	ua := a

	mult := 0.0
	if style.HeightOverride && style.Height > 0 {
		mult = style.Height
	} else if p.pstyle.Height > 0 {
		mult = p.pstyle.Height
	}
	if mult > 0 && a+d > 0 {
		scale := mult * style.FontSize / (a + d)
		a *= scale
		d *= scale
	}

	if p.strut.enabled {
		if p.strut.force {
			a, d = p.strut.ascent, p.strut.descent
		} else {
			a = math.Max(a, p.strut.ascent)
			d = math.Max(d, p.strut.descent)
		}
	}

	end := offset
	if hardBreak {
		end = offset + 1
	}
	return line{
		textRange:              Range{Start: offset, End: offset},
		endIncludingNewline:    end,
		endExcludingWhitespace: offset,
		hardBreak:              hardBreak,
		ascent:                 a,
		descent:                d,
		unscaledAscent:         ua,
	}
}

// computeStrut resolves the paragraph strut against the font collection.
func (p *Paragraph) computeStrut() strutMetrics {
	st := &p.pstyle.Strut
	if !st.Enabled || st.FontSize <= 0 {
		return strutMetrics{}
	}

	p.fonts.setQuery(st.FontFamilies, st.FontWeight, st.FontSlant)
	face := p.fonts.ResolveFace(' ')
	if face == nil {
		return strutMetrics{}
	}

	_, bounds, _ := p.shaper.probe(face, st.FontSize, ' ')
	a := fixedToFloat(bounds.Ascent)
	d := -fixedToFloat(bounds.Descent)

	if st.HeightOverride && st.Height > 0 && a+d > 0 {
		scale := st.Height * st.FontSize / (a + d)
		a *= scale
		d *= scale
	}
	if st.Leading > 0 {
		half := st.Leading * st.FontSize / 2
		a += half
		d += half
	}
	return strutMetrics{enabled: true, force: st.ForceHeight, ascent: a, descent: d}
}

// finishLayout stacks lines vertically, aligns them horizontally, and
// derives the paragraph-level metrics.
func (p *Paragraph) finishLayout() {
	align := p.pstyle.effectiveAlign()
	alignWidth := p.maxWidth
	if math.IsInf(alignWidth, 1) {
		align = AlignLeft
	}

	y := 0.0
	for i := range p.lines {
		ln := &p.lines[i]
		ln.lineNumber = i
		ln.baseline = y + ln.ascent
		y += ln.height()

		if align == AlignJustify {
			lastLine := i == len(p.lines)-1
			if !ln.hardBreak && !lastLine {
				ln.justify(p.text, alignWidth)
			}
			ln.align(AlignLeft, alignWidth)
		} else {
			ln.align(align, alignWidth)
		}

		if ln.width > p.longestLine {
			p.longestLine = ln.width
		}
	}
	p.height = y

	if len(p.lines) > 0 {
		p.alphabeticBaseline = p.lines[0].baseline
		p.ideographicBaseline = p.lines[0].baseline + p.lines[0].descent
	}

	p.collectPlaceholderBoxes()
}

// collectPlaceholderBoxes computes the laid-out rectangle of every
// placeholder, indexed in the order they were added.
func (p *Paragraph) collectPlaceholderBoxes() {
	for i := range p.lines {
		ln := &p.lines[i]
		for j := range ln.runs {
			run := &ln.runs[j]
			if run.placeholder < 0 {
				continue
			}
			ph := p.placeholders[run.placeholder].style

			var top float64
			switch ph.Alignment {
			case PlaceholderBaseline:
				top = ln.baseline - ph.BaselineOffset
			case PlaceholderAboveBaseline:
				top = ln.baseline - ph.Height
			case PlaceholderBelowBaseline:
				top = ln.baseline
			case PlaceholderTop:
				top = ln.top()
			case PlaceholderBottom:
				top = ln.bottom() - ph.Height
			case PlaceholderMiddle:
				top = (ln.top()+ln.bottom())/2 - ph.Height/2
			}

			left := ln.left + run.x
			p.placeholderBoxes[run.placeholder] = TextBox{
				Rect:      geom.NewRectFromPoints(left, top, left+ph.Width, top+ph.Height),
				Direction: run.direction(),
			}
		}
	}
}

// spanAt returns the index of the span containing the rune offset,
// clamped to the closest span for out-of-range offsets.
func (p *Paragraph) spanAt(offset int) int {
	if offset < 0 {
		return 0
	}
	for i := range p.spans {
		if p.spans[i].runes.Contains(offset) {
			return i
		}
	}
	return len(p.spans) - 1
}

// ensureAttrs computes the per-rune attributes and embedding levels
// once per paragraph.
func (p *Paragraph) ensureAttrs() {
	if !p.attrsValid {
		p.attrs = computeCharAttrs(p.text)
		p.levels = bidiLevels(p.text, p.pstyle.TextDirection)
		p.attrsValid = true
	}
}

// levelAt returns the resolved embedding level at the rune offset,
// falling back to the base level outside the text.
func (p *Paragraph) levelAt(offset int) int {
	if offset < 0 || offset >= len(p.levels) {
		if p.pstyle.TextDirection == DirectionRTL {
			return 1
		}
		return 0
	}
	return p.levels[offset]
}

// DidExceedMaxLines reports whether the text did not fit in
// ParagraphStyle.MaxLines lines at the last layout width.
func (p *Paragraph) DidExceedMaxLines() bool { return p.didExceedMaxLines }

// MaxWidth returns the width constraint of the last Layout call.
func (p *Paragraph) MaxWidth() float64 { return p.maxWidth }

// Height returns the total height of the laid-out text.
func (p *Paragraph) Height() float64 { return p.height }

// LongestLine returns the width of the widest laid-out line, excluding
// trailing whitespace.
func (p *Paragraph) LongestLine() float64 { return p.longestLine }

// MinIntrinsicWidth returns the width of the widest unbreakable unit.
// Laying out at least this wide avoids breaking inside a word.
func (p *Paragraph) MinIntrinsicWidth() float64 { return p.minIntrinsicWidth }

// MaxIntrinsicWidth returns the width the text would occupy with no line
// wrapping at all.
func (p *Paragraph) MaxIntrinsicWidth() float64 { return p.maxIntrinsicWidth }

// AlphabeticBaseline returns the distance from the paragraph top to the
// first line's alphabetic baseline.
func (p *Paragraph) AlphabeticBaseline() float64 { return p.alphabeticBaseline }

// IdeographicBaseline returns the distance from the paragraph top to the
// first line's ideographic baseline, which sits at the bottom of the
// line's glyph boxes.
func (p *Paragraph) IdeographicBaseline() float64 { return p.ideographicBaseline }

// LineCount returns the number of laid-out lines.
func (p *Paragraph) LineCount() int { return len(p.lines) }

// GetLineMetrics returns the metrics of every laid-out line. The style
// pointers in RunMetrics reference the paragraph's own styles and stay
// valid until the paragraph is released.
func (p *Paragraph) GetLineMetrics() []LineMetrics {
	if !p.laidOut {
		return nil
	}
	return p.lineMetrics()
}

// GetRectsForPlaceholders returns the laid-out box of every placeholder
// in the order they were added to the builder.
func (p *Paragraph) GetRectsForPlaceholders() []TextBox {
	if !p.laidOut {
		return nil
	}
	out := make([]TextBox, len(p.placeholderBoxes))
	copy(out, p.placeholderBoxes)
	return out
}
