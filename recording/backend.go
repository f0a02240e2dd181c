package recording

import (
	"github.com/gogpu/paragraph/geom"
	"github.com/gogpu/paragraph/textlayout"
)

// Backend is the interface implemented by display-list consumers.
// Backends receive drawing commands during DisplayList.Playback and
// translate them to their output format (raster pixels, vector
// documents, further command streams).
//
// A Backend manages its own state stack for Save/Restore and applies
// the current translation and clip to subsequent drawing commands.
type Backend interface {
	// Begin initializes the backend for rendering at the given
	// dimensions. It is called once, before any other method.
	Begin(width, height int) error

	// Save pushes the current clip and translation state.
	Save()

	// Restore pops state pushed by Save.
	Restore()

	// Translate shifts the coordinate origin by (dx, dy).
	Translate(dx, dy float64)

	// ClipRect intersects the current clip with r.
	ClipRect(r geom.Rect, antiAlias bool)

	// DrawRect fills a rectangle.
	DrawRect(r geom.Rect, paint Paint)

	// DrawLine strokes a line segment.
	DrawLine(from, to geom.Point, paint Paint)

	// DrawPath draws a path.
	DrawPath(p *geom.Path, paint Paint)

	// DrawGlyphRun draws a shaped glyph run with its origin on the
	// baseline at (x, y).
	DrawGlyphRun(run *textlayout.GlyphRun, x, y float64, paint Paint)

	// End finalizes rendering. It is called once, after the last
	// drawing command. Output methods of concrete backends may only
	// be used after End returns.
	End() error
}
