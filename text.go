package gfx

import (
	"image"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// fontSwitchNudge is the distance between the top-left anchor of the
// built-in font and the baseline anchor of custom fonts.
const fontSwitchNudge = 6

// textState is the cursor and style used by the text writer.
type textState struct {
	cursorX, cursorY int
	fg, bg           Color
	size             int
	wrap             bool
	cp437            bool
	font             *Font
}

// SetCursor moves the text cursor.
func (s *Surface) SetCursor(x, y int) {
	s.text.cursorX = x
	s.text.cursorY = y
}

// Cursor returns the text cursor position.
func (s *Surface) Cursor() (x, y int) {
	return s.text.cursorX, s.text.cursorY
}

// SetTextColor sets the text color with a transparent background.
func (s *Surface) SetTextColor(c Color) {
	s.text.fg = c
	s.text.bg = c
}

// SetTextColors sets the text color and an opaque background color.
// Background colors only apply to the built-in font.
func (s *Surface) SetTextColors(fg, bg Color) {
	s.text.fg = fg
	s.text.bg = bg
}

// SetTextSize sets the text magnification. 1 is the native size; values
// below 1 clamp to 1.
func (s *Surface) SetTextSize(size int) {
	s.text.size = max(size, 1)
}

// TextSize returns the text magnification.
func (s *Surface) TextSize() int {
	return s.text.size
}

// SetTextWrap sets whether text wraps at the right edge of the surface.
func (s *Surface) SetTextWrap(wrap bool) {
	s.text.wrap = wrap
}

// SetCP437 selects correct Code Page 437 indexing for the built-in font.
//
// The table historically lacked code 176, so every code from 176 up was
// off by one. The default keeps that behavior for compatibility with text
// written against it; SetCP437(true) uses the codes as they are.
func (s *Surface) SetCP437(enabled bool) {
	s.text.cp437 = enabled
}

// Font returns the bound custom font, or nil for the built-in font.
func (s *Surface) Font() *Font {
	return s.text.font
}

// SetFont binds a custom font, or the built-in font when f is nil.
//
// Custom fonts anchor glyphs on the baseline while the built-in font
// anchors them at the top-left, so switching between the two kinds moves
// the cursor by 6 pixels to keep text in place.
func (s *Surface) SetFont(f *Font) {
	switch {
	case f != nil && s.text.font == nil:
		s.text.cursorY += fontSwitchNudge
	case f == nil && s.text.font != nil:
		s.text.cursorY -= fontSwitchNudge
	}
	s.text.font = f
}

// lineHeight returns the distance between two text lines.
func (s *Surface) lineHeight() int {
	if s.text.font != nil {
		return s.text.size * s.text.font.YAdvance
	}
	return s.text.size * classicGlyphHeight
}

// WriteByte writes one font code at the cursor and advances it.
// '\n' moves to the start of the next line and '\r' is ignored. With wrap
// enabled a character that would cross the right edge starts a new line
// first. Codes missing from a custom font are dropped.
//
// WriteByte always returns nil; it implements io.ByteWriter.
func (s *Surface) WriteByte(c byte) error {
	s.writeCode(rune(c))
	return nil
}

// WriteRune writes one character. For the built-in font runes outside
// ASCII are mapped to their Code Page 437 code, or '?' when there is none;
// for custom fonts the rune is used as the code.
func (s *Surface) WriteRune(r rune) (int, error) {
	s.writeCode(s.fontCode(r))
	return utf8.RuneLen(r), nil
}

// WriteString writes UTF-8 text. It implements io.StringWriter.
func (s *Surface) WriteString(str string) (int, error) {
	for _, r := range str {
		s.writeCode(s.fontCode(r))
	}
	return len(str), nil
}

// Write writes UTF-8 text. It implements io.Writer so that a Surface can
// be the destination of fmt.Fprintf.
func (s *Surface) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		s.writeCode(s.fontCode(r))
		p = p[size:]
	}
	return n, nil
}

// fontCode maps a rune to a code of the bound font.
func (s *Surface) fontCode(r rune) rune {
	if s.text.font != nil || r < utf8.RuneSelf {
		return r
	}
	if b, ok := charmap.CodePage437.EncodeRune(r); ok {
		return rune(b)
	}
	return '?'
}

func (s *Surface) writeCode(c rune) {
	t := &s.text
	switch c {
	case '\n':
		t.cursorX = 0
		t.cursorY += s.lineHeight()
		return
	case '\r':
		return
	}

	if t.font == nil {
		if t.wrap && t.cursorX+t.size*classicGlyphWidth > s.width {
			t.cursorX = 0
			t.cursorY += s.lineHeight()
		}
		s.DrawChar(t.cursorX, t.cursorY, c, t.fg, t.bg, t.size)
		t.cursorX += t.size * classicGlyphWidth
		return
	}

	g, ok := t.font.Glyph(c)
	if !ok {
		return
	}
	if g.Width > 0 && g.Height > 0 {
		if t.wrap && t.cursorX+t.size*(g.XOffset+g.Width) > s.width {
			t.cursorX = 0
			t.cursorY += s.lineHeight()
		}
		s.DrawChar(t.cursorX, t.cursorY, c, t.fg, t.bg, t.size)
	}
	t.cursorX += g.XAdvance * t.size
}

// textBounds accumulates the extent of laid out characters.
type textBounds struct {
	x, y       int
	minX, minY int
	maxX, maxY int
}

// TextBounds returns the smallest rectangle covering str as it would be
// drawn with the cursor at (x, y), using the current font, size and wrap
// settings. Nothing is drawn and the cursor does not move.
//
// Only glyphs with set pixels extend the rectangle, so a string of spaces
// or other blank glyphs yields an empty rectangle at (x, y), and leading or
// trailing spaces are not part of it.
func (s *Surface) TextBounds(str string, x, y int) image.Rectangle {
	b := textBounds{
		x: x, y: y,
		minX: s.width, minY: s.height,
		maxX: -1, maxY: -1,
	}
	for _, r := range str {
		s.charBounds(s.fontCode(r), &b)
	}

	rect := image.Rect(x, y, x, y)
	if b.maxX >= b.minX {
		rect.Min.X = b.minX
		rect.Max.X = b.maxX + 1
	}
	if b.maxY >= b.minY {
		rect.Min.Y = b.minY
		rect.Max.Y = b.maxY + 1
	}
	return rect
}

// charBounds advances b over one code the same way writeCode advances the
// cursor.
func (s *Surface) charBounds(c rune, b *textBounds) {
	t := &s.text
	switch c {
	case '\n':
		b.x = 0
		b.y += s.lineHeight()
		return
	case '\r':
		return
	}

	if t.font == nil {
		if t.wrap && b.x+t.size*classicGlyphWidth > s.width {
			b.x = 0
			b.y += s.lineHeight()
		}
		if !classicBlank(s.classicIndex(c)) {
			b.include(b.x, b.y, b.x+t.size*classicGlyphWidth-1, b.y+t.size*classicGlyphHeight-1)
		}
		b.x += t.size * classicGlyphWidth
		return
	}

	g, ok := t.font.Glyph(c)
	if !ok {
		return
	}
	if g.Width > 0 && g.Height > 0 {
		if t.wrap && b.x+(g.XOffset+g.Width)*t.size > s.width {
			b.x = 0
			b.y += s.lineHeight()
		}
		x1 := b.x + g.XOffset*t.size
		y1 := b.y + g.YOffset*t.size
		b.include(x1, y1, x1+g.Width*t.size-1, y1+g.Height*t.size-1)
	}
	b.x += g.XAdvance * t.size
}

func (b *textBounds) include(x1, y1, x2, y2 int) {
	b.minX = min(b.minX, x1)
	b.minY = min(b.minY, y1)
	b.maxX = max(b.maxX, x2)
	b.maxY = max(b.maxY, y2)
}
