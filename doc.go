// Package paragraph lays out and records styled paragraphs of text.
//
// # Overview
//
// The package is an adapter between two object models: the textlayout
// engine, which shapes, wraps, and measures text, and the recording
// display list, which captures drawing commands for deferred execution.
// It exposes paragraph metrics (width, height, baselines, line metrics),
// hit-testing (glyph position at a coordinate, word boundaries,
// selection rectangles), and painting into a recording.Builder.
//
// # Quick Start
//
//	fonts := paragraph.NewFontCollection()
//	if err := fonts.AddFont("Go", goregular.TTF); err != nil {
//		log.Fatal(err)
//	}
//
//	pb := paragraph.NewParagraphBuilder(paragraph.NewParagraphStyle(), fonts)
//	pb.AddText("Hello, world")
//	p, err := pb.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := p.Layout(300); err != nil {
//		log.Fatal(err)
//	}
//
//	b := recording.NewBuilder(300, int(math.Ceil(p.Height())))
//	p.Paint(b, 0, 0)
//	dl := b.FinishRecording()
//
// The display list can then be played back to any recording.Backend.
//
// # Architecture
//
// The package is organized into:
//   - Root: paragraph and builder facades, style translation, painter
//     adapter
//   - textlayout: shaping, line wrapping, measurement, hit-testing
//   - recording: display-list builder, commands, playback
//   - geom: points, rectangles, paths
//
// Styles pushed on the builder carry their background and foreground
// paints by value; the builder interns them into a paint descriptor
// list and hands the layout engine compact paint identifiers. During
// painting the identifiers are resolved back to concrete paints before
// commands reach the display list.
//
// # Concurrency
//
// A Paragraph is not safe for concurrent use. Layout must not race
// queries or painting on the same instance; callers serialize access.
package paragraph
