package recording

import (
	"github.com/gogpu/paragraph/geom"
	"github.com/gogpu/paragraph/textlayout"
)

// Builder records paragraph drawing operations as commands. Use
// FinishRecording to obtain an immutable DisplayList that can be
// replayed to different backends.
//
// The Builder is not safe for concurrent use.
type Builder struct {
	width, height int
	commands      []Command
	saveDepth     int
	finished      bool
}

// NewBuilder creates a Builder for a canvas of the given dimensions.
func NewBuilder(width, height int) *Builder {
	return &Builder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width returns the width of the recording canvas.
func (b *Builder) Width() int {
	return b.width
}

// Height returns the height of the recording canvas.
func (b *Builder) Height() int {
	return b.height
}

// Depth returns the number of saved states that have not been restored.
func (b *Builder) Depth() int {
	return b.saveDepth
}

// Save pushes the current clip and translation state.
func (b *Builder) Save() {
	b.record(SaveCommand{})
	b.saveDepth++
}

// Restore pops state pushed by the matching Save. Restoring with no
// saved state is a no-op.
func (b *Builder) Restore() {
	if b.saveDepth == 0 {
		return
	}
	b.record(RestoreCommand{})
	b.saveDepth--
}

// Translate shifts the coordinate origin by (dx, dy) until the matching
// Restore.
func (b *Builder) Translate(dx, dy float64) {
	b.record(TranslateCommand{Dx: dx, Dy: dy})
}

// ClipRect intersects the current clip with r until the matching
// Restore.
func (b *Builder) ClipRect(r geom.Rect, antiAlias bool) {
	b.record(ClipRectCommand{Rect: r, AntiAlias: antiAlias})
}

// DrawRect fills r with paint.
func (b *Builder) DrawRect(r geom.Rect, paint Paint) {
	b.record(DrawRectCommand{Rect: r, Paint: paint})
}

// DrawLine strokes a line segment from from to to with paint.
func (b *Builder) DrawLine(from, to geom.Point, paint Paint) {
	b.record(DrawLineCommand{From: from, To: to, Paint: paint})
}

// DrawPath draws p with paint.
func (b *Builder) DrawPath(p *geom.Path, paint Paint) {
	b.record(DrawPathCommand{Path: p, Paint: paint})
}

// DrawGlyphRun draws run with its origin on the baseline at (x, y).
func (b *Builder) DrawGlyphRun(run *textlayout.GlyphRun, x, y float64, paint Paint) {
	b.record(DrawGlyphRunCommand{Run: run, X: x, Y: y, Paint: paint})
}

func (b *Builder) record(cmd Command) {
	if b.finished {
		panic("recording: Builder used after FinishRecording")
	}
	b.commands = append(b.commands, cmd)
}

// FinishRecording returns the recorded commands as an immutable
// DisplayList. The Builder must not be used afterwards.
func (b *Builder) FinishRecording() *DisplayList {
	b.finished = true
	return &DisplayList{
		width:    b.width,
		height:   b.height,
		commands: b.commands,
	}
}
