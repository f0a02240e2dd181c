package textlayout

import "errors"

// Sentinel errors returned by this package.
// Use errors.Is to test for them.
var (
	// ErrNoFonts is returned by Paragraph.Layout when the font collection
	// has no registered faces and no system fallback to resolve against.
	ErrNoFonts = errors.New("textlayout: font collection is empty")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("textlayout: invalid font data")

	// ErrBuilderConsumed is returned by ParagraphBuilder methods after
	// Build has been called.
	ErrBuilderConsumed = errors.New("textlayout: builder already consumed by Build")

	// ErrUnbalancedPop is returned by ParagraphBuilder.Pop when there is
	// no pushed style to pop.
	ErrUnbalancedPop = errors.New("textlayout: Pop without matching PushStyle")
)
