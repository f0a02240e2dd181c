package textlayout

import (
	"github.com/gogpu/paragraph/geom"
)

// Paint replays the laid-out paragraph through the painter with the
// paragraph's top-left corner at (x, y). Per line, backgrounds are
// painted first, then shadows, then glyphs, then decorations.
//
// It reports whether anything was painted; a paragraph that has not
// been laid out paints nothing.
func (p *Paragraph) Paint(painter Painter, x, y float64) bool {
	if !p.laidOut {
		return false
	}
	for i := range p.lines {
		ln := &p.lines[i]
		p.paintBackgrounds(painter, ln, x, y)
		p.paintShadows(painter, ln, x, y)
		p.paintGlyphRuns(painter, ln, x, y)
		p.paintDecorations(painter, ln, x, y)
	}
	return true
}

func (p *Paragraph) paintBackgrounds(painter Painter, ln *line, x, y float64) {
	for i := range ln.runs {
		run := &ln.runs[i]
		style := &p.spans[run.styleIdx].style
		if style.Background == nil {
			continue
		}
		left := x + ln.left + run.x
		rect := geom.NewRectFromPoints(left, y+ln.top(), left+run.advance(), y+ln.bottom())
		painter.DrawRect(rect, style.Background)
	}
}

func (p *Paragraph) paintShadows(painter Painter, ln *line, x, y float64) {
	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			continue
		}
		style := &p.spans[run.styleIdx].style
		if len(style.Shadows) == 0 {
			continue
		}
		glyphRun := p.makeGlyphRun(run)
		for _, sh := range style.Shadows {
			painter.DrawShadow(glyphRun,
				x+ln.left+run.x+sh.Offset.X,
				y+ln.baseline+sh.Offset.Y,
				sh.Color, sh.BlurSigma)
		}
	}
}

func (p *Paragraph) paintGlyphRuns(painter Painter, ln *line, x, y float64) {
	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			continue
		}
		style := &p.spans[run.styleIdx].style

		paint := style.Foreground
		if paint == nil {
			paint = &Paint{Color: style.Color, Style: DrawStyleFill, AntiAlias: true}
		}
		painter.DrawGlyphRun(p.makeGlyphRun(run), x+ln.left+run.x, y+ln.baseline, paint)
	}
}

// makeGlyphRun converts a line run to the painter's glyph run form,
// accumulating pen advances into per-glyph offsets.
func (p *Paragraph) makeGlyphRun(run *lineRun) *GlyphRun {
	style := &p.spans[run.styleIdx].style
	glyphs := make([]Glyph, len(run.out.Glyphs))
	penX := 0.0
	for i, g := range run.out.Glyphs {
		adv := fixedToFloat(g.XAdvance)
		glyphs[i] = Glyph{
			ID:       uint32(g.GlyphID),
			Cluster:  run.rebase + g.ClusterIndex,
			X:        penX + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		penX += adv
	}
	return &GlyphRun{
		Face:      run.out.Face,
		Size:      style.FontSize,
		Glyphs:    glyphs,
		Runes:     run.runes,
		Direction: run.direction(),
	}
}

func (p *Paragraph) paintDecorations(painter Painter, ln *line, x, y float64) {
	for i := range ln.runs {
		run := &ln.runs[i]
		if run.placeholder >= 0 {
			continue
		}
		style := &p.spans[run.styleIdx].style
		if style.Decoration == DecorationNone {
			continue
		}

		left := x + ln.left + run.x
		right := left + run.advance()
		thickness := style.FontSize * decorationThicknessFactor * style.DecorationThicknessMultiplier
		baseline := y + ln.baseline

		if style.Decoration.Has(DecorationUnderline) {
			center := baseline + style.FontSize*underlineOffsetFactor + thickness/2
			p.paintDecorationLine(painter, style, left, right, center, thickness, 1)
		}
		if style.Decoration.Has(DecorationOverline) {
			center := baseline - run.ascent + thickness/2
			p.paintDecorationLine(painter, style, left, right, center, thickness, -1)
		}
		if style.Decoration.Has(DecorationLineThrough) {
			center := baseline - p.shaper.xHeight(run.out.Face, style.FontSize)/2
			p.paintDecorationLine(painter, style, left, right, center, thickness, 1)
		}
	}
}

// paintDecorationLine draws one decoration line centered on the given
// y. doubleDir picks which side the second line of a double decoration
// falls on.
func (p *Paragraph) paintDecorationLine(painter Painter, style *TextStyle, left, right, center, thickness float64, doubleDir float64) {
	ds := DecorationStyle{Color: style.DecorationColor, StrokeWidth: thickness}

	switch style.DecorationStyle {
	case DecorationStyleSolid:
		painter.DrawFilledRect(decorationRect(left, right, center, thickness), ds)

	case DecorationStyleDouble:
		painter.DrawFilledRect(decorationRect(left, right, center, thickness), ds)
		second := center + doubleDir*2*thickness
		painter.DrawFilledRect(decorationRect(left, right, second, thickness), ds)

	case DecorationStyleDotted:
		ds.Dash = &DashSpec{OnLength: thickness, OffLength: thickness * 1.5}
		painter.DrawLine(left, center, right, center, ds)

	case DecorationStyleDashed:
		ds.Dash = &DashSpec{OnLength: thickness * 4, OffLength: thickness * 2}
		painter.DrawLine(left, center, right, center, ds)

	case DecorationStyleWavy:
		painter.Save()
		painter.ClipRect(geom.NewRectFromPoints(left, center-2*thickness, right, center+2*thickness))
		painter.DrawPath(wavyPath(left, right, center, thickness), ds)
		painter.Restore()
	}
}

// decorationRect builds the filled rectangle of a solid decoration line
// centered vertically on center.
func decorationRect(left, right, center, thickness float64) geom.Rect {
	return geom.NewRectFromPoints(left, center-thickness/2, right, center+thickness/2)
}

// wavyPath builds a quadratic wave along [left, right] with an
// amplitude of the line thickness. The last period may overshoot; the
// caller clips it to the decoration band.
func wavyPath(left, right, center, thickness float64) *geom.Path {
	quarter := 2 * thickness
	amp := thickness

	path := geom.NewPath()
	path.MoveTo(left, center)
	dir := 1.0
	for x := left; x < right; x += 2 * quarter {
		path.QuadraticTo(x+quarter, center+dir*2*amp, x+2*quarter, center)
		dir = -dir
	}
	return path
}
