package gfx

// clipSpan clips the span of n pixels starting at pos against [0, limit).
//
// A negative n is normalised first by moving pos to the other end of the
// span. The span is then rejected if it has no overlap with [0, limit), and
// only after that are the two ends clamped individually. ok is false for
// empty or rejected spans.
func clipSpan(pos, n, limit int) (start, length int, ok bool) {
	if n == 0 {
		return 0, 0, false
	}
	if n < 0 {
		pos += n + 1
		n = -n
	}
	if pos >= limit {
		return 0, 0, false
	}
	end := pos + n - 1
	if end < 0 {
		return 0, 0, false
	}
	if pos < 0 {
		pos = 0
		n = end + 1
	}
	if end >= limit {
		n = limit - pos
	}
	return pos, n, true
}

// clipRect clips a rectangle against the surface bounds.
func (s *Surface) clipRect(x, y, w, h int) (cx, cy, cw, ch int, ok bool) {
	cx, cw, ok = clipSpan(x, w, s.width)
	if !ok {
		return 0, 0, 0, 0, false
	}
	cy, ch, ok = clipSpan(y, h, s.height)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return cx, cy, cw, ch, true
}
