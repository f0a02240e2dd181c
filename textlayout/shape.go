package textlayout

import (
	"slices"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paragraph/textlayout/cache"
)

// styleSpan is a maximal run of text sharing one TextStyle. Spans
// partition the paragraph text; placeholder spans cover exactly one
// object replacement rune.
type styleSpan struct {
	style TextStyle
	runes Range // absolute rune offsets

	// placeholder indexes into the paragraph's placeholder list, or -1
	// for ordinary text spans.
	placeholder int
}

// shaper drives HarfBuzz shaping for one paragraph layout pass. It is
// created per Paragraph and reused across Layout calls; none of its
// state is safe for concurrent use.
type shaper struct {
	hb      shaping.HarfbuzzShaper
	seg     shaping.Segmenter
	wrapper shaping.LineWrapper
	fonts   *FontCollection

	probes map[probeKey]probeResult
}

type probeKey struct {
	face *font.Face
	size float64
	r    rune
}

type probeResult struct {
	glyph  shaping.Glyph
	bounds shaping.Bounds
	ok     bool
}

func newShaper(fonts *FontCollection) *shaper {
	s := &shaper{fonts: fonts, probes: make(map[probeKey]probeResult)}
	s.hb.SetFontCacheSize(32)
	return s
}

// shapeRange shapes par[start:end) with one style and one resolved
// direction, splitting it into runs of uniform face and script first.
// parHash must be the hash of par in full. Offsets in the returned
// outputs are relative to par.
func (s *shaper) shapeRange(par []rune, parHash uint64, start, end int, style *TextStyle, dir di.Direction) []shaping.Output {
	s.fonts.setQuery(style.FontFamilies, style.FontWeight, style.FontSlant)

	input := shaping.Input{
		Text:      par,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Size:      floatToFixed(style.FontSize),
		Language:  languageFor(style.Locale),
	}

	inputs := s.seg.Split(input, s.fonts)
	outs := make([]shaping.Output, 0, len(inputs))
	for _, in := range inputs {
		out := s.shape(in, parHash)
		applySpacing(&out, par, style.LetterSpacing, style.WordSpacing)
		outs = append(outs, out)
	}
	return outs
}

// shape runs HarfBuzz for one segmented input, consulting the shared
// run cache first. Hits never return the cached output directly: the
// glyph slice is cloned so later layout stages can mutate advances.
func (s *shaper) shape(in shaping.Input, textHash uint64) shaping.Output {
	key := cache.NewRunKey(&in, textHash, s.fonts.faceID(in.Face))
	cached := s.fonts.runs.GetOrCreate(key, func() *shaping.Output {
		out := s.hb.Shape(in)
		return &out
	})

	out := *cached
	out.Glyphs = slices.Clone(cached.Glyphs)
	return out
}

// probe shapes a single rune against an explicit face and caches the
// result. It is used for x-height measurement, strut seeding, and
// empty-line metrics.
func (s *shaper) probe(face *font.Face, size float64, r rune) (shaping.Glyph, shaping.Bounds, bool) {
	key := probeKey{face: face, size: size, r: r}
	if res, ok := s.probes[key]; ok {
		return res.glyph, res.bounds, res.ok
	}

	out := s.hb.Shape(shaping.Input{
		Text:      []rune{r},
		RunStart:  0,
		RunEnd:    1,
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	})

	res := probeResult{bounds: out.LineBounds, ok: len(out.Glyphs) > 0}
	if res.ok {
		res.glyph = out.Glyphs[0]
	}
	s.probes[key] = res
	return res.glyph, res.bounds, res.ok
}

// xHeight measures the height of a lowercase x in the face at the given
// size, falling back to half the size when the face has no x.
func (s *shaper) xHeight(face *font.Face, size float64) float64 {
	if face != nil {
		if g, _, ok := s.probe(face, size, 'x'); ok && g.YBearing > 0 {
			return fixedToFloat(g.YBearing)
		}
	}
	return size / 2
}

// applySpacing adds letter spacing after every glyph cluster and word
// spacing after whitespace clusters, updating the output's total
// advance. Spacing is applied before wrapping so that break decisions
// account for it.
func applySpacing(out *shaping.Output, par []rune, letterSpacing, wordSpacing float64) {
	if (letterSpacing == 0 && wordSpacing == 0) || len(out.Glyphs) == 0 {
		return
	}

	letter := floatToFixed(letterSpacing)
	word := floatToFixed(wordSpacing)
	var added fixed.Int26_6

	glyphs := out.Glyphs
	for i := 0; i < len(glyphs); {
		j := i
		for j+1 < len(glyphs) && glyphs[j+1].ClusterIndex == glyphs[i].ClusterIndex {
			j++
		}

		extra := letter
		if word != 0 && clusterIsWhitespace(par, glyphs[i].ClusterIndex, glyphs[i].RuneCount) {
			extra += word
		}
		if extra != 0 {
			glyphs[j].XAdvance += extra
			added += extra
		}
		i = j + 1
	}

	out.Advance += added
}

// clusterIsWhitespace reports whether every rune of the cluster starting
// at the given offset is whitespace.
func clusterIsWhitespace(par []rune, offset, count int) bool {
	if count <= 0 || offset < 0 || offset+count > len(par) {
		return false
	}
	for _, r := range par[offset : offset+count] {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// baseDirection converts the paragraph direction to the shaper's
// direction type.
func baseDirection(d TextDirection) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// levelDirection converts a resolved embedding level to the shaper's
// direction type.
func levelDirection(level int) di.Direction {
	if level%2 == 1 {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// runDirection converts a shaped run's resolved direction back to the
// package direction type.
func runDirection(d di.Direction) TextDirection {
	if d.Progression() == di.TowardTopLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// languageFor maps a BCP 47 locale tag to a shaping language, defaulting
// to English when the style does not specify one.
func languageFor(locale string) language.Language {
	if locale == "" {
		return language.NewLanguage("en")
	}
	return language.NewLanguage(locale)
}

// floatToFixed converts a float64 value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
