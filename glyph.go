package pixel2ascii

import (
	"math"
	"sort"
)

// Logger receives non-fatal diagnostics. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Glyph is a character of the output ramp together with its rasterized
// bitmap and mean brightness in [0, 255].
type Glyph struct {
	Rune      rune
	Cells     [GlyphHeight][GlyphWidth]uint8
	Intensity float32
}

// BuildGlyphs builds the intensity table for chars, which are expected to be
// ordered from dark to light. Characters the font does not know are dropped
// and reported to logger; the order of the remaining ones is kept.
func BuildGlyphs(chars []rune, font FontFunc, logger Logger) []Glyph {
	if logger == nil {
		logger = nopLogger{}
	}
	glyphs := make([]Glyph, 0, len(chars))
	for _, r := range chars {
		bitmap, ok := font(r)
		if !ok {
			logger.Printf("warning: character %q not found in font", r)
			continue
		}
		cells := bitmap.Cells()
		glyphs = append(glyphs, Glyph{
			Rune:      r,
			Cells:     cells,
			Intensity: intensity(cells),
		})
	}
	return glyphs
}

func intensity(cells [GlyphHeight][GlyphWidth]uint8) float32 {
	var sum uint32
	for _, row := range cells {
		for _, v := range row {
			sum += uint32(v)
		}
	}
	return float32(sum) / float32(GlyphWidth*GlyphHeight)
}

// MatchRune picks the glyph for a luminance in [0, 255]. The table is indexed
// by position, so the declared dark-to-light order is the ramp; Intensity is
// not consulted. An empty table yields a space.
func MatchRune(lum float32, glyphs []Glyph) rune {
	if len(glyphs) == 0 {
		return ' '
	}
	last := len(glyphs) - 1
	idx := int(math.Round(float64((lum / 255) * float32(last))))
	if idx < 0 {
		idx = 0
	}
	if idx > last {
		idx = last
	}
	return glyphs[idx].Rune
}

// SortByIntensity returns a copy of glyphs ordered from darkest to lightest
// by measured intensity. Ties keep their declared order.
func SortByIntensity(glyphs []Glyph) []Glyph {
	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Intensity < sorted[j].Intensity
	})
	return sorted
}
