package gfx

import "image"

// Bitmap sources are row-major. 1-bit sources and masks pad every row to a
// whole byte, so a row takes (w+7)/8 bytes; grayscale and color sources are
// unpadded. A source slice that is too short for w x h ends the blit at the
// first missing byte.

// bitmapRowBytes returns the stride of a 1-bit bitmap of width w.
func bitmapRowBytes(w int) int {
	return (w + 7) / 8
}

// maskBit reports whether bit i of row j is set in an MSB-first 1-bit
// bitmap. ok is false when the byte lies outside src.
func maskBit(src []byte, stride, i, j int) (set, ok bool) {
	idx := j*stride + i/8
	if idx >= len(src) {
		return false, false
	}
	return src[idx]&(0x80>>(i&7)) != 0, true
}

// DrawBitmap draws a 1-bit bitmap with its top-left corner at (x, y). Set
// bits are drawn in c and clear bits are left untouched.
func (s *Surface) DrawBitmap(x, y int, bitmap []byte, w, h int, c Color) {
	stride := bitmapRowBytes(w)
	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			set, ok := maskBit(bitmap, stride, i, j)
			if !ok {
				return
			}
			if set {
				s.WritePixel(x+i, y+j, c)
			}
		}
	}
}

// DrawBitmapOpaque draws a 1-bit bitmap, painting set bits in fg and clear
// bits in bg.
func (s *Surface) DrawBitmapOpaque(x, y int, bitmap []byte, w, h int, fg, bg Color) {
	stride := bitmapRowBytes(w)
	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			set, ok := maskBit(bitmap, stride, i, j)
			if !ok {
				return
			}
			if set {
				s.WritePixel(x+i, y+j, fg)
			} else {
				s.WritePixel(x+i, y+j, bg)
			}
		}
	}
}

// DrawXBitmap draws a 1-bit bitmap in XBM layout, where the leftmost pixel
// of each byte is the least significant bit. This is the format exported by
// GIMP and most X11 tools.
func (s *Surface) DrawXBitmap(x, y int, bitmap []byte, w, h int, c Color) {
	stride := bitmapRowBytes(w)
	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			idx := j*stride + i/8
			if idx >= len(bitmap) {
				return
			}
			if bitmap[idx]&(1<<(i&7)) != 0 {
				s.WritePixel(x+i, y+j, c)
			}
		}
	}
}

// DrawGrayscaleBitmap draws an 8-bit bitmap. Each byte is written as the
// color value unchanged, which suits 8-bit canvases; convert to 565 first
// for color sinks.
func (s *Surface) DrawGrayscaleBitmap(x, y int, bitmap []byte, w, h int) {
	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			idx := j*w + i
			if idx >= len(bitmap) {
				return
			}
			s.WritePixel(x+i, y+j, Color(bitmap[idx]))
		}
	}
}

// DrawGrayscaleBitmapMasked draws an 8-bit bitmap through a 1-bit mask.
// Pixels whose mask bit is clear are skipped.
func (s *Surface) DrawGrayscaleBitmapMasked(x, y int, bitmap, mask []byte, w, h int) {
	stride := bitmapRowBytes(w)
	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			set, ok := maskBit(mask, stride, i, j)
			if !ok {
				return
			}
			if !set {
				continue
			}
			idx := j*w + i
			if idx >= len(bitmap) {
				return
			}
			s.WritePixel(x+i, y+j, Color(bitmap[idx]))
		}
	}
}

// DrawRGBBitmap draws a 565 color bitmap.
//
// When the sink streams pixel blocks and no coordinate rotation is
// involved, the bitmap is clipped once and sent as one block per visible
// row.
func (s *Surface) DrawRGBBitmap(x, y int, bitmap []Color, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	// A short slice draws its complete rows only.
	h = min(h, len(bitmap)/w)
	if s.caps.stream != nil && (s.rotation == Rotate0 || s.caps.rotator != nil) {
		s.streamRGBBitmap(x, y, bitmap, w, h)
		return
	}

	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			s.WritePixel(x+i, y+j, bitmap[j*w+i])
		}
	}
}

func (s *Surface) streamRGBBitmap(x, y int, bitmap []Color, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if x >= s.width || y >= s.height || x+w-1 < 0 || y+h-1 < 0 {
		return
	}

	stride := w
	bx, by := 0, 0
	if x < 0 {
		w += x
		bx = -x
		x = 0
	}
	if y < 0 {
		h += y
		by = -y
		y = 0
	}
	w = min(w, s.width-x)
	h = min(h, s.height-y)

	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		off := (by+j)*stride + bx
		s.caps.stream.WritePixels(x, y+j, w, 1, bitmap[off:off+w])
	}
}

// DrawRGBBitmapMasked draws a 565 color bitmap through a 1-bit mask.
// Pixels whose mask bit is clear are skipped.
func (s *Surface) DrawRGBBitmapMasked(x, y int, bitmap []Color, mask []byte, w, h int) {
	stride := bitmapRowBytes(w)
	s.StartWrite()
	defer s.EndWrite()
	for j := range h {
		for i := range w {
			set, ok := maskBit(mask, stride, i, j)
			if !ok {
				return
			}
			if !set {
				continue
			}
			idx := j*w + i
			if idx >= len(bitmap) {
				return
			}
			s.WritePixel(x+i, y+j, bitmap[idx])
		}
	}
}

// DrawImage draws img with the top-left corner of its bounds at (x, y).
// Colors are reduced to 565 and fully transparent pixels are skipped.
func (s *Surface) DrawImage(x, y int, img image.Image) {
	b := img.Bounds()
	s.StartWrite()
	defer s.EndWrite()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			c := img.At(px, py)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			s.WritePixel(x+px-b.Min.X, y+py-b.Min.Y, FromColor(c))
		}
	}
}
