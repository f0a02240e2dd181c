package textlayout

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// maxWrapWidth caps the width handed to the line wrapper so that an
// unconstrained layout never overflows the wrapper's integer math.
const maxWrapWidth = 1 << 30

// wrapLines breaks one shaped paragraph into lines. maxLines caps the
// number of produced lines when positive; textContinues marks that more
// paragraphs follow, which forces the truncator onto the last line even
// when this paragraph fits. The returned count is the number of runes
// dropped by truncation.
func (s *shaper) wrapLines(par []rune, outs []shaping.Output, baseDir di.Direction, maxWidth float64, maxLines int, ellipsis []rune, defaultStyle *TextStyle, textContinues bool) ([]shaping.Line, int) {
	cfg := shaping.WrapConfig{
		Direction:                     baseDir,
		BreakPolicy:                   shaping.WhenNecessary,
		DisableTrailingWhitespaceTrim: true,
	}
	if maxLines > 0 {
		cfg.TruncateAfterLines = maxLines
		cfg.TextContinues = textContinues
		if len(ellipsis) > 0 {
			cfg = cfg.WithTruncator(&s.hb, s.ellipsisInput(ellipsis, defaultStyle, baseDir))
		}
	}
	return s.wrapper.WrapParagraph(cfg, wrapWidth(maxWidth), par, shaping.NewSliceIterator(outs))
}

// ellipsisInput prepares the truncator run shaped from the paragraph's
// ellipsis string using the default style.
func (s *shaper) ellipsisInput(ellipsis []rune, style *TextStyle, dir di.Direction) shaping.Input {
	s.fonts.setQuery(style.FontFamilies, style.FontWeight, style.FontSlant)
	r := ellipsis[0]
	return shaping.Input{
		Text:      ellipsis,
		RunStart:  0,
		RunEnd:    len(ellipsis),
		Direction: dir,
		Face:      s.fonts.ResolveFace(r),
		Size:      floatToFixed(style.FontSize),
		Script:    language.LookupScript(r),
		Language:  languageFor(style.Locale),
	}
}

// wrapWidth converts the layout width to the wrapper's integer domain.
func wrapWidth(maxWidth float64) int {
	if math.IsInf(maxWidth, 1) || maxWidth >= maxWrapWidth {
		return maxWrapWidth
	}
	if maxWidth < 0 {
		return 0
	}
	return int(maxWidth)
}
