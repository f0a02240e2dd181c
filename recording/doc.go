// Package recording provides a command-based recording system for
// paragraph drawing.
//
// The recording system decouples text layout from rasterization by
// capturing drawing operations as typed commands that can be played back
// to different backends.
//
// # Architecture
//
// The system follows a command pattern with three main components:
//
//   - Builder: captures drawing operations as commands
//   - DisplayList: stores commands for playback
//   - Backend: renders commands to a specific output format
//
// Commands are typed structs rather than a binary serialization format,
// so a recorded display list can be inspected and asserted on directly.
//
// # Basic Usage
//
// Record drawing operations using a Builder:
//
//	b := recording.NewBuilder(800, 600)
//
//	paint := recording.NewPaint()
//	paint.Color = color.NRGBA{R: 255, A: 255}
//	b.DrawRect(geom.NewRect(100, 100, 200, 150), paint)
//
//	dl := b.FinishRecording()
//
// Play back the display list to any Backend:
//
//	if err := dl.Playback(backend); err != nil {
//		log.Fatal(err)
//	}
//
// Builders and display lists are not safe for concurrent use.
package recording
