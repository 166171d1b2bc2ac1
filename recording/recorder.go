package recording

import (
	"image"
	"slices"

	"github.com/gogpu/gfx"
)

// Recorder captures sink calls as commands.
//
// Recorder implements gfx.Sink and gfx.Batcher only, so a Surface bound to
// it decomposes every primitive into single pixels.
//
// Example:
//
//	rec := recording.NewRecorder(64, 64)
//	s := gfx.NewSurface(rec, 64, 64)
//	s.DrawLine(0, 0, 10, 4, gfx.White)
//	for _, c := range rec.Commands() {
//	    fmt.Println(c)
//	}
type Recorder struct {
	width, height int
	commands      []Command

	depth    int
	maxDepth int
}

// NewRecorder creates a Recorder for a sink of the given size. The size is
// used by FillScreen and by OutOfBounds.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width returns the recorder width.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the recorder height.
func (r *Recorder) Height() int {
	return r.height
}

// SetPixel implements gfx.Sink.
func (r *Recorder) SetPixel(x, y int, c gfx.Color) {
	r.record(Command{Type: CmdSetPixel, X: x, Y: y, W: 1, H: 1, Color: c})
}

// BeginBatch implements gfx.Batcher.
func (r *Recorder) BeginBatch() {
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
	r.record(Command{Type: CmdBeginBatch})
}

// EndBatch implements gfx.Batcher.
func (r *Recorder) EndBatch() {
	r.depth--
	r.record(Command{Type: CmdEndBatch})
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Commands returns the recorded commands in call order.
// The returned slice must not be modified.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// DrawCommands returns the recorded commands that write pixels.
func (r *Recorder) DrawCommands() []Command {
	var out []Command
	for _, c := range r.commands {
		if c.draws() {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of recorded commands of type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Batches returns the number of batches begun.
func (r *Recorder) Batches() int {
	return r.Count(CmdBeginBatch)
}

// Depth returns the number of currently open batches.
func (r *Recorder) Depth() int {
	return r.depth
}

// MaxDepth returns the deepest batch nesting seen. A Surface never nests
// sink batches, so this is at most 1 for well-behaved callers.
func (r *Recorder) MaxDepth() int {
	return r.maxDepth
}

// Unbatched returns the number of drawing commands issued outside any
// batch.
func (r *Recorder) Unbatched() int {
	n, depth := 0, 0
	for _, c := range r.commands {
		switch {
		case c.Type == CmdBeginBatch:
			depth++
		case c.Type == CmdEndBatch:
			depth--
		case c.draws() && depth == 0:
			n++
		}
	}
	return n
}

// Writes returns how many times each pixel was written, over all drawing
// commands.
func (r *Recorder) Writes() map[image.Point]int {
	w := make(map[image.Point]int)
	for _, c := range r.commands {
		if !c.draws() {
			continue
		}
		for y := c.Y; y < c.Y+c.H; y++ {
			for x := c.X; x < c.X+c.W; x++ {
				w[image.Pt(x, y)]++
			}
		}
	}
	return w
}

// Pixels returns the last color written to each pixel.
func (r *Recorder) Pixels() map[image.Point]gfx.Color {
	p := make(map[image.Point]gfx.Color)
	for _, c := range r.commands {
		if !c.draws() {
			continue
		}
		i := 0
		for y := c.Y; y < c.Y+c.H; y++ {
			for x := c.X; x < c.X+c.W; x++ {
				if c.Type == CmdWritePixels {
					p[image.Pt(x, y)] = c.Pixels[i]
					i++
				} else {
					p[image.Pt(x, y)] = c.Color
				}
			}
		}
	}
	return p
}

// OutOfBounds returns the number of drawing commands that touch a pixel
// outside the recorder area, or have a non-positive size.
func (r *Recorder) OutOfBounds() int {
	n := 0
	for _, c := range r.commands {
		if !c.draws() {
			continue
		}
		if c.W <= 0 || c.H <= 0 || c.X < 0 || c.Y < 0 || c.X+c.W > r.width || c.Y+c.H > r.height {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands and batch state.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.depth = 0
	r.maxDepth = 0
}

// Playback replays the recorded commands onto sink, using the optional
// capabilities of sink where it has them and single pixels otherwise.
func (r *Recorder) Playback(sink gfx.Sink) {
	for _, c := range r.commands {
		replay(sink, c)
	}
}

func replay(sink gfx.Sink, c Command) {
	switch c.Type {
	case CmdBeginBatch:
		if b, ok := sink.(gfx.Batcher); ok {
			b.BeginBatch()
		}
	case CmdEndBatch:
		if b, ok := sink.(gfx.Batcher); ok {
			b.EndBatch()
		}
	case CmdSetPixel:
		sink.SetPixel(c.X, c.Y, c.Color)
	case CmdFillRun:
		if f, ok := sink.(gfx.RunFiller); ok {
			f.FillRun(c.X, c.Y, c.W, c.Color)
			return
		}
		fillPixels(sink, c)
	case CmdFillColumn:
		if f, ok := sink.(gfx.ColumnFiller); ok {
			f.FillColumn(c.X, c.Y, c.H, c.Color)
			return
		}
		fillPixels(sink, c)
	case CmdFillRect:
		if f, ok := sink.(gfx.RectFiller); ok {
			f.FillRect(c.X, c.Y, c.W, c.H, c.Color)
			return
		}
		fillPixels(sink, c)
	case CmdFillScreen:
		if f, ok := sink.(gfx.ScreenFiller); ok {
			f.FillScreen(c.Color)
			return
		}
		fillPixels(sink, c)
	case CmdWritePixels:
		if p, ok := sink.(gfx.PixelStreamer); ok {
			p.WritePixels(c.X, c.Y, c.W, c.H, c.Pixels)
			return
		}
		for j := range c.H {
			for i := range c.W {
				sink.SetPixel(c.X+i, c.Y+j, c.Pixels[j*c.W+i])
			}
		}
	case CmdInvert:
		if inv, ok := sink.(gfx.Inverter); ok {
			inv.InvertDisplay(c.Invert)
		}
	}
}

func fillPixels(sink gfx.Sink, c Command) {
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			sink.SetPixel(x, y, c.Color)
		}
	}
}

// AcceleratedRecorder is a Recorder that also implements every optional
// sink capability except gfx.Rotator.
type AcceleratedRecorder struct {
	*Recorder
	inverted bool
}

// NewAcceleratedRecorder creates an AcceleratedRecorder of the given size.
func NewAcceleratedRecorder(width, height int) *AcceleratedRecorder {
	return &AcceleratedRecorder{Recorder: NewRecorder(width, height)}
}

// FillRun implements gfx.RunFiller.
func (r *AcceleratedRecorder) FillRun(x, y, w int, c gfx.Color) {
	r.record(Command{Type: CmdFillRun, X: x, Y: y, W: w, H: 1, Color: c})
}

// FillColumn implements gfx.ColumnFiller.
func (r *AcceleratedRecorder) FillColumn(x, y, h int, c gfx.Color) {
	r.record(Command{Type: CmdFillColumn, X: x, Y: y, W: 1, H: h, Color: c})
}

// FillRect implements gfx.RectFiller.
func (r *AcceleratedRecorder) FillRect(x, y, w, h int, c gfx.Color) {
	r.record(Command{Type: CmdFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

// WritePixels implements gfx.PixelStreamer.
func (r *AcceleratedRecorder) WritePixels(x, y, w, h int, colors []gfx.Color) {
	r.record(Command{Type: CmdWritePixels, X: x, Y: y, W: w, H: h, Pixels: slices.Clone(colors)})
}

// FillScreen implements gfx.ScreenFiller.
func (r *AcceleratedRecorder) FillScreen(c gfx.Color) {
	r.record(Command{Type: CmdFillScreen, W: r.width, H: r.height, Color: c})
}

// InvertDisplay implements gfx.Inverter.
func (r *AcceleratedRecorder) InvertDisplay(invert bool) {
	r.inverted = invert
	r.record(Command{Type: CmdInvert, Invert: invert})
}

// Inverted reports the last inversion state set.
func (r *AcceleratedRecorder) Inverted() bool {
	return r.inverted
}
