package paragraph

import (
	"fmt"
	"image/color"

	"github.com/gogpu/paragraph/geom"
	"github.com/gogpu/paragraph/recording"
	"github.com/gogpu/paragraph/textlayout"
)

// displayListPainter adapts the layout engine's painter callbacks to
// display-list builder calls. Commands are issued in exactly the order
// received, with no reordering or batching. Glyph and background draws
// arrive with a paint identifier that is resolved against the
// paragraph's descriptor list; decoration draws carry their parameters
// directly and a paint is synthesized per call.
type displayListPainter struct {
	builder *recording.Builder
	paints  []recording.Paint
}

var _ textlayout.Painter = (*displayListPainter)(nil)

// resolve maps a paint identifier to its descriptor-list entry. The
// engine hands back the identifiers the builder stored in its styles,
// so anything else is a programming error.
func (p *displayListPainter) resolve(paint textlayout.PaintRef) recording.Paint {
	id, ok := paint.(textlayout.PaintID)
	if !ok {
		panic(fmt.Sprintf("paragraph: draw call carries a %T, want a paint id", paint))
	}
	if int(id) < 0 || int(id) >= len(p.paints) {
		panic(fmt.Sprintf("paragraph: paint id %d out of range [0,%d)", int(id), len(p.paints)))
	}
	return p.paints[id]
}

func (p *displayListPainter) DrawGlyphRun(run *textlayout.GlyphRun, x, y float64, paint textlayout.PaintRef) {
	if run == nil {
		return
	}
	p.builder.DrawGlyphRun(run, x, y, p.resolve(paint))
}

func (p *displayListPainter) DrawShadow(run *textlayout.GlyphRun, x, y float64, col color.NRGBA, blurSigma float64) {
	if run == nil {
		return
	}
	paint := recording.NewPaint()
	paint.Color = col
	if blurSigma > 0 {
		paint.MaskFilter = &recording.BlurMaskFilter{
			Style: recording.BlurStyleNormal,
			Sigma: blurSigma,
		}
	}
	p.builder.DrawGlyphRun(run, x, y, paint)
}

func (p *displayListPainter) DrawRect(r geom.Rect, paint textlayout.PaintRef) {
	p.builder.DrawRect(r, p.resolve(paint))
}

func (p *displayListPainter) DrawFilledRect(r geom.Rect, style textlayout.DecorationStyle) {
	paint := decorationPaint(style)
	paint.Style = recording.DrawStyleFill
	p.builder.DrawRect(r, paint)
}

func (p *displayListPainter) DrawPath(path *geom.Path, style textlayout.DecorationStyle) {
	p.builder.DrawPath(path, decorationPaint(style))
}

func (p *displayListPainter) DrawLine(x0, y0, x1, y1 float64, style textlayout.DecorationStyle) {
	p.builder.DrawLine(geom.Pt(x0, y0), geom.Pt(x1, y1), decorationPaint(style))
}

func (p *displayListPainter) ClipRect(r geom.Rect) {
	p.builder.ClipRect(r, false)
}

func (p *displayListPainter) Translate(dx, dy float64) {
	p.builder.Translate(dx, dy)
}

func (p *displayListPainter) Save() {
	p.builder.Save()
}

func (p *displayListPainter) Restore() {
	p.builder.Restore()
}

// decorationPaint synthesizes an anti-aliased stroke paint from a
// decoration descriptor. A dash descriptor becomes a two-interval dash
// effect with zero phase.
func decorationPaint(style textlayout.DecorationStyle) recording.Paint {
	paint := recording.NewPaint()
	paint.Style = recording.DrawStyleStroke
	paint.AntiAlias = true
	paint.Color = style.Color
	paint.StrokeWidth = style.StrokeWidth
	if style.Dash != nil {
		paint.PathEffect = &recording.DashPathEffect{
			Intervals: []float64{style.Dash.OnLength, style.Dash.OffLength},
			Phase:     0,
		}
	}
	return paint
}
