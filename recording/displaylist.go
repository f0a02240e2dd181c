package recording

import (
	"fmt"
	"strings"
)

// DisplayList is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type DisplayList struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (d *DisplayList) Width() int {
	return d.width
}

// Height returns the height of the recording canvas.
func (d *DisplayList) Height() int {
	return d.height
}

// Commands returns the recorded commands. The returned slice must not
// be modified.
func (d *DisplayList) Commands() []Command {
	return d.commands
}

// Playback replays the display list to the given backend.
func (d *DisplayList) Playback(backend Backend) error {
	if err := backend.Begin(d.width, d.height); err != nil {
		return err
	}

	for _, cmd := range d.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case TranslateCommand:
			backend.Translate(c.Dx, c.Dy)
		case ClipRectCommand:
			backend.ClipRect(c.Rect, c.AntiAlias)
		case DrawRectCommand:
			backend.DrawRect(c.Rect, c.Paint)
		case DrawLineCommand:
			backend.DrawLine(c.From, c.To, c.Paint)
		case DrawPathCommand:
			backend.DrawPath(c.Path, c.Paint)
		case DrawGlyphRunCommand:
			backend.DrawGlyphRun(c.Run, c.X, c.Y, c.Paint)
		}
	}

	return backend.End()
}

// String renders the display list one command per line, for tests and
// debugging.
func (d *DisplayList) String() string {
	var sb strings.Builder
	for _, cmd := range d.commands {
		switch c := cmd.(type) {
		case TranslateCommand:
			fmt.Fprintf(&sb, "Translate(%g, %g)\n", c.Dx, c.Dy)
		case ClipRectCommand:
			fmt.Fprintf(&sb, "ClipRect(%g, %g, %g, %g)\n",
				c.Rect.MinX, c.Rect.MinY, c.Rect.MaxX, c.Rect.MaxY)
		case DrawRectCommand:
			fmt.Fprintf(&sb, "DrawRect(%g, %g, %g, %g)\n",
				c.Rect.MinX, c.Rect.MinY, c.Rect.MaxX, c.Rect.MaxY)
		case DrawLineCommand:
			fmt.Fprintf(&sb, "DrawLine(%g, %g -> %g, %g)\n",
				c.From.X, c.From.Y, c.To.X, c.To.Y)
		case DrawPathCommand:
			fmt.Fprintf(&sb, "DrawPath(%d elements)\n", len(c.Path.Elements()))
		case DrawGlyphRunCommand:
			fmt.Fprintf(&sb, "DrawGlyphRun(%d glyphs at %g, %g)\n",
				len(c.Run.Glyphs), c.X, c.Y)
		default:
			sb.WriteString(cmd.Type().String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
