package gfx

// DrawChar draws one character of the bound font.
//
// With the built-in font (x, y) is the top-left corner of the 6x8 cell and
// code is a font index from 0 to 255. Unset pixels are painted with bg
// unless bg equals fg; an opaque character also paints the spacing column.
//
// With a custom font (x, y) is the cursor position on the baseline and code
// must lie in the font's range; anything else is ignored. Custom fonts never
// paint a background: glyphs differ in size and may overlap, so erasing old
// text requires clearing its TextBounds first.
//
// size magnifies each font pixel to a size x size square; values below 1
// are treated as 1.
func (s *Surface) DrawChar(x, y int, code rune, fg, bg Color, size int) {
	size = max(size, 1)
	if s.text.font == nil {
		s.drawClassicChar(x, y, code, fg, bg, size)
		return
	}
	s.drawCustomChar(x, y, code, fg, size)
}

func (s *Surface) drawClassicChar(x, y int, code rune, fg, bg Color, size int) {
	if code < 0 || code > 0xFF {
		return
	}
	if x >= s.width || y >= s.height ||
		x+classicGlyphWidth*size-1 < 0 || y+classicGlyphHeight*size-1 < 0 {
		return
	}

	c := s.classicIndex(code)

	s.StartWrite()
	defer s.EndWrite()

	for i := range 5 {
		line := classicColumn(c, i)
		for j := 0; j < 8; j, line = j+1, line>>1 {
			switch {
			case line&1 != 0:
				s.writeFontPixel(x+i*size, y+j*size, size, fg)
			case bg != fg:
				s.writeFontPixel(x+i*size, y+j*size, size, bg)
			}
		}
	}
	if bg != fg {
		if size == 1 {
			s.WriteFastVLine(x+5, y, 8, bg)
		} else {
			s.WriteFillRect(x+5*size, y, size, 8*size, bg)
		}
	}
}

func (s *Surface) drawCustomChar(x, y int, code rune, fg Color, size int) {
	f := s.text.font
	g, ok := f.Glyph(code)
	if !ok {
		return
	}

	bo := g.BitmapOffset
	var bits byte
	bit := 0

	s.StartWrite()
	defer s.EndWrite()

	for yy := range g.Height {
		for xx := range g.Width {
			if bit&7 == 0 {
				if bo < 0 || bo >= len(f.Bitmap) {
					return
				}
				bits = f.Bitmap[bo]
				bo++
			}
			bit++
			if bits&0x80 != 0 {
				if size == 1 {
					s.WritePixel(x+g.XOffset+xx, y+g.YOffset+yy, fg)
				} else {
					s.WriteFillRect(x+(g.XOffset+xx)*size, y+(g.YOffset+yy)*size, size, size, fg)
				}
			}
			bits <<= 1
		}
	}
}

// writeFontPixel writes one magnified font pixel.
func (s *Surface) writeFontPixel(x, y, size int, c Color) {
	if size == 1 {
		s.WritePixel(x, y, c)
		return
	}
	s.WriteFillRect(x, y, size, size, c)
}
