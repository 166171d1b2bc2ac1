package gfx

// WriteLine writes a line from (x0, y0) to (x1, y1), both ends included,
// inside an open batch.
//
// The walk uses Bresenham's algorithm along the major axis. Steep lines are
// walked in transposed space so that the loop always advances x by one.
func (s *Surface) WriteLine(x0, y0, x1, y1 int, c Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			s.WritePixel(y0, x0, c)
		} else {
			s.WritePixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both ends included.
// Horizontal and vertical lines are drawn as runs.
func (s *Surface) DrawLine(x0, y0, x1, y1 int, c Color) {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		s.DrawFastVLine(x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		s.DrawFastHLine(x0, y0, x1-x0+1, c)
	default:
		s.StartWrite()
		s.WriteLine(x0, y0, x1, y1, c)
		s.EndWrite()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
