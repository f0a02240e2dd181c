package textlayout

import (
	"image/color"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/paragraph/geom"
)

// Glyph is a single positioned glyph within a GlyphRun. X and Y are
// offsets from the run origin, with the pen advance already accumulated;
// Y grows downward. Cluster is the rune offset, into the paragraph text,
// of the cluster the glyph belongs to.
type Glyph struct {
	ID       uint32
	Cluster  int
	X        float64
	Y        float64
	XAdvance float64
}

// GlyphRun is a horizontal run of shaped glyphs sharing one face, size,
// and direction. Runes is the rune range of the paragraph text the run
// covers. Glyph positions are relative to the run origin on the
// baseline.
type GlyphRun struct {
	Face      *font.Face
	Size      float64
	Glyphs    []Glyph
	Runes     Range
	Direction TextDirection
}

// Advance returns the total advance width of the run.
func (r *GlyphRun) Advance() float64 {
	total := 0.0
	for i := range r.Glyphs {
		total += r.Glyphs[i].XAdvance
	}
	return total
}

// Painter receives the positioned output of Paragraph.Paint. Coordinates
// are absolute: the paragraph offset passed to Paint is already applied.
// Glyph run origins sit on the line baseline.
//
// Paint references are passed through from the styles that produced
// them; resolving a PaintID against the caller's paint list is the
// Painter's job.
type Painter interface {
	// DrawGlyphRun draws a shaped glyph run with its origin at (x, y).
	DrawGlyphRun(run *GlyphRun, x, y float64, paint PaintRef)

	// DrawShadow draws a shadow copy of a glyph run. The offset of the
	// shadow is already folded into (x, y). A blurSigma of zero means a
	// hard-edged shadow.
	DrawShadow(run *GlyphRun, x, y float64, col color.NRGBA, blurSigma float64)

	// DrawRect fills a rectangle with a referenced paint. Used for run
	// backgrounds.
	DrawRect(r geom.Rect, paint PaintRef)

	// DrawFilledRect fills a rectangle with a decoration paint. Used for
	// solid decoration lines.
	DrawFilledRect(r geom.Rect, style DecorationStyle)

	// DrawPath strokes a path with a decoration paint. Used for wavy
	// decorations.
	DrawPath(p *geom.Path, style DecorationStyle)

	// DrawLine strokes a line segment with a decoration paint. Used for
	// dotted and dashed decorations.
	DrawLine(x0, y0, x1, y1 float64, style DecorationStyle)

	// ClipRect intersects the current clip with a rectangle until the
	// matching Restore.
	ClipRect(r geom.Rect)

	// Translate shifts the coordinate origin until the matching Restore.
	Translate(dx, dy float64)

	// Save pushes the current clip and transform state.
	Save()

	// Restore pops state pushed by Save.
	Restore()
}
