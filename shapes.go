package gfx

// Corner selects quadrants for the quarter-circle helpers. Values can be
// or-ed together.
type Corner uint8

// Quadrants, in screen orientation (y grows downwards).
const (
	CornerTopLeft     Corner = 1 << iota // up and to the left of the center
	CornerTopRight                       // up and to the right
	CornerBottomRight                    // down and to the right
	CornerBottomLeft                     // down and to the left
)

// Halves for FillCircleHelper.
const (
	HalfRight Corner = 1 // columns to the right of the center
	HalfLeft  Corner = 2 // columns to the left of the center
)

// DrawCircle draws a circle outline of radius r centered on (x0, y0).
func (s *Surface) DrawCircle(x0, y0, r int, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	s.StartWrite()
	s.WritePixel(x0, y0+r, c)
	s.WritePixel(x0, y0-r, c)
	s.WritePixel(x0+r, y0, c)
	s.WritePixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		s.WritePixel(x0+x, y0+y, c)
		s.WritePixel(x0-x, y0+y, c)
		s.WritePixel(x0+x, y0-y, c)
		s.WritePixel(x0-x, y0-y, c)
		s.WritePixel(x0+y, y0+x, c)
		s.WritePixel(x0-y, y0+x, c)
		s.WritePixel(x0+y, y0-x, c)
		s.WritePixel(x0-y, y0-x, c)
	}
	s.EndWrite()
}

// DrawCircleHelper draws the quadrants of a circle outline selected by
// corners. The axis points are not drawn; callers join the arcs with
// straight runs. It must be called inside an open batch.
func (s *Surface) DrawCircleHelper(x0, y0, r int, corners Corner, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		if corners&CornerBottomRight != 0 {
			s.WritePixel(x0+x, y0+y, c)
			s.WritePixel(x0+y, y0+x, c)
		}
		if corners&CornerTopRight != 0 {
			s.WritePixel(x0+x, y0-y, c)
			s.WritePixel(x0+y, y0-x, c)
		}
		if corners&CornerBottomLeft != 0 {
			s.WritePixel(x0-y, y0+x, c)
			s.WritePixel(x0-x, y0+y, c)
		}
		if corners&CornerTopLeft != 0 {
			s.WritePixel(x0-y, y0-x, c)
			s.WritePixel(x0-x, y0-y, c)
		}
	}
}

// FillCircle fills a circle of radius r centered on (x0, y0).
func (s *Surface) FillCircle(x0, y0, r int, c Color) {
	s.StartWrite()
	s.WriteFastVLine(x0, y0-r, 2*r+1, c)
	s.FillCircleHelper(x0, y0, r, HalfRight|HalfLeft, 0, c)
	s.EndWrite()
}

// FillCircleHelper fills the halves of a circle selected by halves with
// vertical runs, leaving out the center column. delta stretches every run
// downwards by that many pixels, which lets rounded rectangles reuse the
// arcs. It must be called inside an open batch.
//
// No pixel is written twice, so the helper is safe on sinks whose fill is
// an XOR.
func (s *Surface) FillCircleHelper(x0, y0, r int, halves Corner, delta int, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r
	px := x
	py := y

	delta++

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx
		// Skip the spans already covered when x crosses y.
		if x < y+1 {
			if halves&HalfRight != 0 {
				s.WriteFastVLine(x0+x, y0-y, 2*y+delta, c)
			}
			if halves&HalfLeft != 0 {
				s.WriteFastVLine(x0-x, y0-y, 2*y+delta, c)
			}
		}
		if y != py {
			if halves&HalfRight != 0 {
				s.WriteFastVLine(x0+py, y0-px, 2*px+delta, c)
			}
			if halves&HalfLeft != 0 {
				s.WriteFastVLine(x0-py, y0-px, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}

// DrawRect draws a rectangle outline.
func (s *Surface) DrawRect(x, y, w, h int, c Color) {
	s.StartWrite()
	s.WriteFastHLine(x, y, w, c)
	s.WriteFastHLine(x, y+h-1, w, c)
	s.WriteFastVLine(x, y, h, c)
	s.WriteFastVLine(x+w-1, y, h, c)
	s.EndWrite()
}

// roundRadius clamps a corner radius to half of the shorter side.
func roundRadius(w, h, r int) int {
	r = min(r, min(w, h)/2)
	return max(r, 0)
}

// DrawRoundRect draws a rectangle outline with corners of radius r.
func (s *Surface) DrawRoundRect(x, y, w, h, r int, c Color) {
	r = roundRadius(w, h, r)

	s.StartWrite()
	s.WriteFastHLine(x+r, y, w-2*r, c)
	s.WriteFastHLine(x+r, y+h-1, w-2*r, c)
	s.WriteFastVLine(x, y+r, h-2*r, c)
	s.WriteFastVLine(x+w-1, y+r, h-2*r, c)

	s.DrawCircleHelper(x+r, y+r, r, CornerTopLeft, c)
	s.DrawCircleHelper(x+w-r-1, y+r, r, CornerTopRight, c)
	s.DrawCircleHelper(x+w-r-1, y+h-r-1, r, CornerBottomRight, c)
	s.DrawCircleHelper(x+r, y+h-r-1, r, CornerBottomLeft, c)
	s.EndWrite()
}

// FillRoundRect fills a rectangle with corners of radius r.
func (s *Surface) FillRoundRect(x, y, w, h, r int, c Color) {
	r = roundRadius(w, h, r)

	s.StartWrite()
	s.WriteFillRect(x+r, y, w-2*r, h, c)
	s.FillCircleHelper(x+w-r-1, y+r, r, HalfRight, h-2*r-1, c)
	s.FillCircleHelper(x+r, y+r, r, HalfLeft, h-2*r-1, c)
	s.EndWrite()
}

// DrawTriangle draws the outline of a triangle.
func (s *Surface) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	s.StartWrite()
	s.DrawLine(x0, y0, x1, y1, c)
	s.DrawLine(x1, y1, x2, y2, c)
	s.DrawLine(x2, y2, x0, y0, c)
	s.EndWrite()
}

// FillTriangle fills a triangle with horizontal runs, one per scanline.
func (s *Surface) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	// Sort by y so that y0 <= y1 <= y2.
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}
	if y1 > y2 {
		y2, y1 = y1, y2
		x2, x1 = x1, x2
	}
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}

	s.StartWrite()
	defer s.EndWrite()

	if y0 == y2 {
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		s.WriteFastHLine(a, y0, b-a+1, c)
		return
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	sa, sb := 0, 0

	// Upper part: edges 0-1 and 0-2. Scanline y1 belongs here only for a
	// flat-bottomed triangle; otherwise the lower part draws it. Either way
	// neither loop divides by a zero height.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		s.WriteFastHLine(a, y, b-a+1, c)
	}

	// Lower part: edges 1-2 and 0-2. Skipped when y1 == y2.
	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		s.WriteFastHLine(a, y, b-a+1, c)
	}
}
