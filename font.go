package gfx

// Glyph holds the metrics of one character of a custom Font.
//
// The bitmap of a glyph is Width*Height bits packed MSB first with no
// padding between rows, starting at Bitmap[BitmapOffset]. XOffset and
// YOffset place the top-left corner of the bitmap relative to the cursor,
// which sits on the baseline; YOffset is usually negative.
type Glyph struct {
	BitmapOffset int
	Width        int
	Height       int
	XAdvance     int
	XOffset      int
	YOffset      int
}

// Font is a proportional bitmap font covering the contiguous character
// range [First, Last]. Fonts are immutable once built and may be shared by
// any number of surfaces.
//
// Fonts are usually generated with the fontconv package.
type Font struct {
	Bitmap   []byte
	Glyphs   []Glyph // Glyphs[i] describes character First+i
	First    rune
	Last     rune
	YAdvance int // line height
}

// Glyph returns the metrics for r. ok is false when r is outside the range
// of the font.
func (f *Font) Glyph(r rune) (g Glyph, ok bool) {
	if r < f.First || r > f.Last {
		return Glyph{}, false
	}
	i := int(r - f.First)
	if i >= len(f.Glyphs) {
		return Glyph{}, false
	}
	return f.Glyphs[i], true
}

// classicGlyphWidth and classicGlyphHeight are the cell size of the
// built-in font, including the spacing column.
const (
	classicGlyphWidth  = 6
	classicGlyphHeight = 8
)

// classicColumn returns column i (0-4) of the built-in glyph for code.
func classicColumn(code, i int) byte {
	idx := code*5 + i
	if idx < 0 || idx >= len(classicFont) {
		return 0
	}
	return classicFont[idx]
}

// classicIndex returns the table index DrawChar uses for code.
func (s *Surface) classicIndex(code rune) int {
	c := int(code)
	if !s.text.cp437 && c >= 176 {
		c++ // legacy table offset
	}
	return c
}

// classicBlank reports whether the built-in glyph at index c has no set
// pixels.
func classicBlank(c int) bool {
	for i := range 5 {
		if classicColumn(c, i) != 0 {
			return false
		}
	}
	return true
}
