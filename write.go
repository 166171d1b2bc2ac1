package gfx

// StartWrite opens a batch. Batches nest: only the outermost StartWrite and
// its matching EndWrite reach the sink, so a drawing call composed of other
// drawing calls still produces a single sink batch.
func (s *Surface) StartWrite() {
	s.batchDepth++
	if s.batchDepth == 1 && s.caps.batch != nil {
		s.caps.batch.BeginBatch()
	}
}

// EndWrite closes the batch opened by the matching StartWrite.
// Unbalanced calls are ignored.
func (s *Surface) EndWrite() {
	if s.batchDepth == 0 {
		return
	}
	s.batchDepth--
	if s.batchDepth == 0 && s.caps.batch != nil {
		s.caps.batch.EndBatch()
	}
}

// WritePixel writes one pixel inside an open batch. Off-surface pixels are
// dropped.
func (s *Surface) WritePixel(x, y int, c Color) {
	if !s.contains(x, y) {
		return
	}
	x, y, _, _ = s.toRaw(x, y, 1, 1)
	s.sink.SetPixel(x, y, c)
}

// WriteFastHLine writes a horizontal run of w pixels inside an open batch.
// A negative w extends the run to the left of x.
func (s *Surface) WriteFastHLine(x, y, w int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	x, w, ok := clipSpan(x, w, s.width)
	if !ok {
		return
	}
	s.fillPreclipped(x, y, w, 1, c)
}

// WriteFastVLine writes a vertical run of h pixels inside an open batch.
// A negative h extends the run above y.
func (s *Surface) WriteFastVLine(x, y, h int, c Color) {
	if x < 0 || x >= s.width {
		return
	}
	y, h, ok := clipSpan(y, h, s.height)
	if !ok {
		return
	}
	s.fillPreclipped(x, y, 1, h, c)
}

// WriteFillRect fills a rectangle inside an open batch. Negative sizes
// extend the rectangle to the left of x and above y.
func (s *Surface) WriteFillRect(x, y, w, h int, c Color) {
	x, y, w, h, ok := s.clipRect(x, y, w, h)
	if !ok {
		return
	}
	s.fillPreclipped(x, y, w, h, c)
}

// DrawPixel draws one pixel.
func (s *Surface) DrawPixel(x, y int, c Color) {
	if !s.contains(x, y) {
		return
	}
	s.StartWrite()
	s.WritePixel(x, y, c)
	s.EndWrite()
}

// DrawFastHLine draws a horizontal run of w pixels.
func (s *Surface) DrawFastHLine(x, y, w int, c Color) {
	s.StartWrite()
	s.WriteFastHLine(x, y, w, c)
	s.EndWrite()
}

// DrawFastVLine draws a vertical run of h pixels.
func (s *Surface) DrawFastVLine(x, y, h int, c Color) {
	s.StartWrite()
	s.WriteFastVLine(x, y, h, c)
	s.EndWrite()
}

// FillRect fills a rectangle.
func (s *Surface) FillRect(x, y, w, h int, c Color) {
	s.StartWrite()
	s.WriteFillRect(x, y, w, h, c)
	s.EndWrite()
}

// FillScreen fills the whole surface.
func (s *Surface) FillScreen(c Color) {
	if s.caps.screen == nil {
		s.FillRect(0, 0, s.width, s.height, c)
		return
	}
	s.StartWrite()
	s.caps.screen.FillScreen(c)
	s.EndWrite()
}

// fillPreclipped fills an on-surface logical rectangle with positive size,
// choosing the best capability of the sink.
func (s *Surface) fillPreclipped(x, y, w, h int, c Color) {
	x, y, w, h = s.toRaw(x, y, w, h)
	switch {
	case h == 1 && s.caps.runs != nil:
		s.caps.runs.FillRun(x, y, w, c)
	case w == 1 && s.caps.columns != nil:
		s.caps.columns.FillColumn(x, y, h, c)
	case s.caps.rects != nil:
		s.caps.rects.FillRect(x, y, w, h, c)
	case h == 1:
		s.fillRun(x, y, w, c)
	case s.caps.columns == nil && s.caps.runs != nil:
		for j := range h {
			s.caps.runs.FillRun(x, y+j, w, c)
		}
	default:
		for i := range w {
			s.fillColumn(x+i, y, h, c)
		}
	}
}

// fillRun fills a raw horizontal run.
func (s *Surface) fillRun(x, y, w int, c Color) {
	if s.caps.runs != nil {
		s.caps.runs.FillRun(x, y, w, c)
		return
	}
	for i := range w {
		s.sink.SetPixel(x+i, y, c)
	}
}

// fillColumn fills a raw vertical run.
func (s *Surface) fillColumn(x, y, h int, c Color) {
	if s.caps.columns != nil {
		s.caps.columns.FillColumn(x, y, h, c)
		return
	}
	for j := range h {
		s.sink.SetPixel(x, y+j, c)
	}
}
