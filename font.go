package pixel2ascii

const (
	// GlyphWidth and GlyphHeight are the cell size of the built-in font.
	GlyphWidth  = 8
	GlyphHeight = 8
)

// Bitmap is an 8x8 monochrome glyph, one byte per row from top to bottom.
// Bit x of a row is column x, least significant bit first.
type Bitmap [GlyphHeight]byte

// Set reports whether the pixel at column x, row y is lit.
func (b Bitmap) Set(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return (b[y]>>uint(x))&1 == 1
}

// Cells expands the bitmap into a grid of 0 (clear) and 255 (set) values,
// indexed [row][column].
func (b Bitmap) Cells() [GlyphHeight][GlyphWidth]uint8 {
	var cells [GlyphHeight][GlyphWidth]uint8
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if b.Set(x, y) {
				cells[y][x] = 255
			}
		}
	}
	return cells
}

// FontFunc looks up the bitmap for a rune. The second return value is false
// when the font has no glyph for r.
type FontFunc func(r rune) (Bitmap, bool)

// Font8x8 is the built-in font: the 128 ASCII code points first, falling
// back to the Unicode block elements. Control characters and DEL are known
// to the font but blank.
func Font8x8(r rune) (Bitmap, bool) {
	switch {
	case r >= 0 && r < ' ', r == 0x7f:
		return Bitmap{}, true
	case r >= ' ' && r <= '~':
		return basicGlyphs[r-' '], true
	case r >= '▀' && r <= '▟':
		return blockGlyphs[r-'▀'], true
	}
	return Bitmap{}, false
}
