// Package textlayout shapes, wraps, and measures styled paragraphs.
//
// The package wraps go-text/typesetting's HarfBuzz shaper and line
// wrapper behind a paragraph model: a ParagraphBuilder collects styled
// text runs and inline placeholders, Build produces a Paragraph, and
// Layout breaks the text into positioned lines. A laid-out Paragraph
// answers metric queries (line metrics, intrinsic widths, baselines),
// hit-testing queries (rectangles for a text range, the glyph position
// under a coordinate, word boundaries), and replays its content through
// a caller-supplied Painter.
//
// The Painter interface receives fully positioned glyph runs and
// decoration geometry; it carries no drawing state of its own. Paint
// colors are expressed either directly or as indices into a
// caller-managed paint list, so a display-list consumer can intern
// paints once and reference them cheaply per run.
//
// Paragraph, ParagraphBuilder, and FontCollection are not safe for
// concurrent use. Callers that share them across goroutines must
// serialize access.
package textlayout
