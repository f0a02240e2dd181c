package textlayout

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/paragraph/textlayout/cache"
)

var _ shaping.Fontmap = (*FontCollection)(nil)

// FontCollection resolves text styles to font faces. Faces registered
// with AddFont take priority; when none of them covers a rune the
// collection falls back to system fonts, if enabled with UseSystemFonts.
//
// FontCollection implements shaping.Fontmap so it can drive run
// segmentation directly. It is not safe for concurrent use.
type FontCollection struct {
	faces  []registeredFace
	system *fontscan.FontMap

	// query is the style currently being resolved, set by the layout
	// pipeline before segmentation.
	query fontscan.Query

	// runs caches shaped runs across all paragraphs built against this
	// collection; faceIDs assigns the stable identifiers its keys use.
	runs    *cache.RunCache
	faceIDs map[*font.Face]uint64
}

type registeredFace struct {
	face   *font.Face
	family string // lowercased
	aspect font.Aspect
}

// NewFontCollection returns an empty collection.
func NewFontCollection() *FontCollection {
	return &FontCollection{
		runs:    cache.DefaultRunCache(),
		faceIDs: make(map[*font.Face]uint64),
	}
}

// AddFont parses TTF or OTF font data and registers it under the given
// family name as a regular upright face.
func (c *FontCollection) AddFont(family string, data []byte) error {
	return c.AddFontVariant(family, 400, SlantUpright, data)
}

// AddFontVariant parses TTF or OTF font data and registers it under the
// given family name with an explicit weight (100 through 900) and slant.
// Styles asking for that family resolve to the registered variant whose
// weight and slant sit closest to the request.
func (c *FontCollection) AddFontVariant(family string, weight int, slant FontSlant, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty font data", ErrInvalidFont)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	c.faces = append(c.faces, registeredFace{
		face:   face,
		family: strings.ToLower(family),
		aspect: aspectFor(weight, slant),
	})
	return nil
}

// UseSystemFonts enables fallback to the fonts installed on the system.
// The scan result is cached in cacheDir; pass an empty string to use the
// default user cache directory.
func (c *FontCollection) UseSystemFonts(cacheDir string) error {
	fm := fontscan.NewFontMap(nil)
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		return fmt.Errorf("textlayout: system font scan: %w", err)
	}
	c.system = fm
	return nil
}

// FaceCount returns the number of registered faces, not counting system
// fonts.
func (c *FontCollection) FaceCount() int { return len(c.faces) }

// ShapeCacheStats reports the counters of the shared shaped-run cache.
func (c *FontCollection) ShapeCacheStats() cache.Stats { return c.runs.Stats() }

// ClearShapeCache drops all cached shaped runs. Laid-out paragraphs are
// unaffected; subsequent layouts reshape from scratch.
func (c *FontCollection) ClearShapeCache() { c.runs.Clear() }

// faceID returns a stable identifier for a face, assigning one on first
// sight. System fallback faces get identifiers as they appear.
func (c *FontCollection) faceID(face *font.Face) uint64 {
	id, ok := c.faceIDs[face]
	if !ok {
		id = uint64(len(c.faceIDs)) + 1
		c.faceIDs[face] = id
	}
	return id
}

// empty reports whether the collection has nothing to resolve against.
func (c *FontCollection) empty() bool {
	return len(c.faces) == 0 && c.system == nil
}

// setQuery installs the style the next ResolveFace calls resolve for.
func (c *FontCollection) setQuery(families []string, weight int, slant FontSlant) {
	lowered := make([]string, len(families))
	for i, f := range families {
		lowered[i] = strings.ToLower(f)
	}
	c.query = fontscan.Query{Families: lowered, Aspect: aspectFor(weight, slant)}
	if c.system != nil {
		c.system.SetQuery(c.query)
	}
}

// ResolveFace implements shaping.Fontmap. It returns the best registered
// face for the current query that covers r, then consults system fonts,
// and finally falls back to the first registered face so that shaping
// always has a face to work with.
func (c *FontCollection) ResolveFace(r rune) *font.Face {
	// Requested families first, best aspect match among covering faces.
	for _, family := range c.query.Families {
		if face := c.bestForFamily(family, r); face != nil {
			return face
		}
	}

	// Any registered face covering the rune.
	for i := range c.faces {
		if _, ok := c.faces[i].face.NominalGlyph(r); ok {
			return c.faces[i].face
		}
	}

	if c.system != nil {
		if face := c.system.ResolveFace(r); face != nil {
			return face
		}
	}

	if len(c.faces) > 0 {
		slogger().Debug("no face covers rune, using first registered face",
			"rune", string(r))
		return c.faces[0].face
	}
	return nil
}

// bestForFamily returns the registered face of the family with the
// aspect closest to the current query, among faces covering r.
func (c *FontCollection) bestForFamily(family string, r rune) *font.Face {
	var best *font.Face
	bestScore := 0
	for i := range c.faces {
		rf := &c.faces[i]
		if rf.family != family {
			continue
		}
		if _, ok := rf.face.NominalGlyph(r); !ok {
			continue
		}
		score := aspectDistance(rf.aspect, c.query.Aspect)
		if best == nil || score < bestScore {
			best = rf.face
			bestScore = score
		}
	}
	return best
}

// aspectFor converts the style axes to a font aspect. Oblique requests
// resolve as italic.
func aspectFor(weight int, slant FontSlant) font.Aspect {
	style := font.StyleNormal
	if slant != SlantUpright {
		style = font.StyleItalic
	}
	return font.Aspect{Style: style, Weight: font.Weight(weight)}
}

// aspectDistance scores how far a candidate aspect is from a requested
// one. Lower is better; a style mismatch outweighs any weight distance.
func aspectDistance(have, want font.Aspect) int {
	d := int(have.Weight) - int(want.Weight)
	if d < 0 {
		d = -d
	}
	if have.Style != want.Style {
		d += 1000
	}
	return d
}
