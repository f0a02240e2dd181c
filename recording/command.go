package recording

import (
	"github.com/gogpu/paragraph/geom"
	"github.com/gogpu/paragraph/textlayout"
)

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Push clip and translation state
	CmdRestore                      // Pop clip and translation state
	CmdTranslate                    // Shift the coordinate origin
	CmdClipRect                     // Intersect the clip with a rectangle

	// Drawing commands
	CmdDrawRect     // Fill a rectangle
	CmdDrawLine     // Stroke a line segment
	CmdDrawPath     // Draw a path
	CmdDrawGlyphRun // Draw a positioned glyph run
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdTranslate:    "Translate",
	CmdClipRect:     "ClipRect",
	CmdDrawRect:     "DrawRect",
	CmdDrawLine:     "DrawLine",
	CmdDrawPath:     "DrawPath",
	CmdDrawGlyphRun: "DrawGlyphRun",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual drawing operations that can be
// inspected and replayed to different backends.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCommand pushes the current clip and translation state.
type SaveCommand struct{}

// Type returns CmdSave.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops state pushed by the matching SaveCommand.
type RestoreCommand struct{}

// Type returns CmdRestore.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand shifts the coordinate origin by (Dx, Dy).
type TranslateCommand struct {
	Dx, Dy float64
}

// Type returns CmdTranslate.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// ClipRectCommand intersects the current clip with Rect.
type ClipRectCommand struct {
	Rect      geom.Rect
	AntiAlias bool
}

// Type returns CmdClipRect.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// DrawRectCommand fills Rect with Paint.
type DrawRectCommand struct {
	Rect  geom.Rect
	Paint Paint
}

// Type returns CmdDrawRect.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawLineCommand strokes a line segment from From to To with Paint.
type DrawLineCommand struct {
	From  geom.Point
	To    geom.Point
	Paint Paint
}

// Type returns CmdDrawLine.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawPathCommand draws Path with Paint.
type DrawPathCommand struct {
	Path  *geom.Path
	Paint Paint
}

// Type returns CmdDrawPath.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawGlyphRunCommand draws a shaped glyph run with its origin on the
// baseline at (X, Y).
type DrawGlyphRunCommand struct {
	Run   *textlayout.GlyphRun
	X, Y  float64
	Paint Paint
}

// Type returns CmdDrawGlyphRun.
func (DrawGlyphRunCommand) Type() CommandType { return CmdDrawGlyphRun }
