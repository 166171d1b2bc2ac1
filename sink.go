package gfx

// Sink is the minimal capability a drawing destination must provide.
//
// SetPixel writes one pixel. The Surface clips every coordinate before it
// reaches a sink, so implementations need no bounds checks of their own.
// Coordinates are in raw panel orientation unless the sink also implements
// Rotator.
//
// Every other primitive of the package is built on SetPixel alone. A sink
// can implement any of the optional capability interfaces below to replace
// the default decomposition with something faster; the observable result
// must stay the same.
type Sink interface {
	SetPixel(x, y int, c Color)
}

// RunFiller is an optional interface for sinks that can fill a horizontal
// run of w pixels starting at (x, y).
//
// Default: w calls to SetPixel.
type RunFiller interface {
	FillRun(x, y, w int, c Color)
}

// ColumnFiller is an optional interface for sinks that can fill a vertical
// run of h pixels starting at (x, y).
//
// Default: h calls to SetPixel.
type ColumnFiller interface {
	FillColumn(x, y, h int, c Color)
}

// RectFiller is an optional interface for sinks that can fill a rectangle
// in one operation.
//
// Default: one column fill per column, left to right.
type RectFiller interface {
	FillRect(x, y, w, h int, c Color)
}

// PixelStreamer is an optional interface for sinks that accept a block of
// distinct colors for a rectangle, row-major, len(colors) == w*h.
//
// Default: one SetPixel per entry.
type PixelStreamer interface {
	WritePixels(x, y, w, h int, colors []Color)
}

// Batcher is an optional interface for sinks that want to know when a
// sequence of writes begins and ends, for example to hold a bus for the
// duration of a drawing call. Calls are always balanced and never nested.
//
// Default: no-op.
type Batcher interface {
	BeginBatch()
	EndBatch()
}

// ScreenFiller is an optional interface for sinks that can fill their whole
// area at once.
//
// Default: a rectangle fill covering the surface.
type ScreenFiller interface {
	FillScreen(c Color)
}

// Rotator is an optional interface for sinks that rotate in hardware.
// When present the Surface passes logical coordinates through unchanged and
// forwards every rotation change to the sink.
//
// Default: the Surface maps logical coordinates to raw panel coordinates.
type Rotator interface {
	SetRotation(r Rotation)
}

// Inverter is an optional interface for sinks that can invert the display
// colors in hardware.
//
// Default: no-op.
type Inverter interface {
	InvertDisplay(invert bool)
}

// capabilities caches the optional interfaces of a sink so that the type
// assertions run once per Surface instead of once per primitive.
type capabilities struct {
	runs    RunFiller
	columns ColumnFiller
	rects   RectFiller
	stream  PixelStreamer
	batch   Batcher
	screen  ScreenFiller
	rotator Rotator
	invert  Inverter
}

func detectCapabilities(s Sink) capabilities {
	var c capabilities
	c.runs, _ = s.(RunFiller)
	c.columns, _ = s.(ColumnFiller)
	c.rects, _ = s.(RectFiller)
	c.stream, _ = s.(PixelStreamer)
	c.batch, _ = s.(Batcher)
	c.screen, _ = s.(ScreenFiller)
	c.rotator, _ = s.(Rotator)
	c.invert, _ = s.(Inverter)
	return c
}
