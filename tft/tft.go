package tft

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/gogpu/gfx"
)

// MIPI DCS commands used by the driver.
const (
	cmdInvertOff   = 0x20
	cmdInvertOn    = 0x21
	cmdColumnAddr  = 0x2A // CASET
	cmdRowAddr     = 0x2B // RASET
	cmdMemoryWrite = 0x2C // RAMWR
)

// blockPixels is the number of pixels sent per bus transfer when streaming
// a solid color or a pixel block.
const blockPixels = 32

// DefaultFrequency is the SPI clock used by Open.
const DefaultFrequency = 24 * physic.MegaHertz

// Conn is the bus a Display talks to. spi.Conn satisfies it.
type Conn interface {
	Tx(w, r []byte) error
}

// Pin is an output line. gpio.PinOut satisfies it.
type Pin interface {
	Out(l gpio.Level) error
}

// Opts is the panel configuration.
type Opts struct {
	// Width and Height are the panel size in its native orientation.
	Width  int
	Height int

	// DC selects between command (low) and data (high) bytes. Required.
	DC Pin
	// CS is the chip select line, active low. Optional when the bus
	// drives chip select itself.
	CS Pin
	// Reset is the hardware reset line, active low. Optional.
	Reset Pin

	// ColumnOffset and RowOffset are added to every address window, for
	// panels whose visible area does not start at controller RAM (0, 0).
	ColumnOffset int
	RowOffset    int
}

// Display is an SPI color panel. It implements gfx.Sink with the
// gfx.RunFiller, gfx.ColumnFiller, gfx.RectFiller, gfx.PixelStreamer,
// gfx.ScreenFiller, gfx.Batcher and gfx.Inverter capabilities.
//
// Colors are sent big-endian, high byte first.
//
// A Display is not safe for concurrent use.
type Display struct {
	conn Conn
	opts Opts

	inBatch bool
	err     error

	block [blockPixels * 2]byte
	sleep func(time.Duration)
}

// New returns a Display talking over conn. Chip select is released and the
// data/command line is left in data mode.
func New(conn Conn, opts *Opts) (*Display, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	if opts == nil || opts.DC == nil {
		return nil, ErrNoDataCommandPin
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	d := &Display{conn: conn, opts: *opts, sleep: time.Sleep}
	if d.opts.CS != nil {
		if err := d.opts.CS.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("tft: release chip select: %w", err)
		}
	}
	if err := d.opts.DC.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("tft: set data mode: %w", err)
	}

	gfx.Logger().Info("tft: display ready", "width", d.opts.Width, "height", d.opts.Height)
	return d, nil
}

// Open connects to port at DefaultFrequency in SPI mode 0 with 8-bit
// words and returns a Display on that connection.
func Open(port spi.Port, opts *Opts) (*Display, error) {
	c, err := port.Connect(DefaultFrequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("tft: connect: %w", err)
	}
	return New(c, opts)
}

// Width returns the native panel width.
func (d *Display) Width() int {
	return d.opts.Width
}

// Height returns the native panel height.
func (d *Display) Height() int {
	return d.opts.Height
}

// Surface returns a gfx.Surface drawing on the display.
func (d *Display) Surface(opts ...gfx.Option) *gfx.Surface {
	return gfx.NewSurface(d, d.opts.Width, d.opts.Height, opts...)
}

// Err returns the first bus or pin error since the last ClearErr.
func (d *Display) Err() error {
	return d.err
}

// ClearErr forgets the kept error and resumes bus traffic.
func (d *Display) ClearErr() {
	d.err = nil
}

func (d *Display) fail(err error) {
	if d.err != nil {
		return
	}
	d.err = err
	gfx.Logger().Warn("tft: bus error, output suspended", "err", err)
}

// Reset pulses the hardware reset line: high 100ms, low 100ms, then high
// and 200ms for the controller to come up. It does nothing without a reset
// pin.
func (d *Display) Reset() error {
	if d.opts.Reset == nil {
		return d.err
	}
	d.out(d.opts.Reset, gpio.High)
	d.sleep(100 * time.Millisecond)
	d.out(d.opts.Reset, gpio.Low)
	d.sleep(100 * time.Millisecond)
	d.out(d.opts.Reset, gpio.High)
	d.sleep(200 * time.Millisecond)
	return d.err
}

// Command sends a command byte followed by its parameter bytes.
func (d *Display) Command(cmd byte, args ...byte) error {
	defer d.end(d.begin())
	d.writeCommand(cmd)
	if len(args) > 0 {
		d.tx(args)
	}
	return d.err
}

// BeginBatch implements gfx.Batcher by asserting chip select.
func (d *Display) BeginBatch() {
	if d.inBatch {
		return
	}
	d.chipSelect(true)
	d.inBatch = true
}

// EndBatch implements gfx.Batcher by releasing chip select.
func (d *Display) EndBatch() {
	if !d.inBatch {
		return
	}
	d.inBatch = false
	d.chipSelect(false)
}

// begin selects the chip unless a batch already holds it. The result is
// passed to end.
func (d *Display) begin() bool {
	if d.inBatch {
		return false
	}
	d.chipSelect(true)
	return true
}

func (d *Display) end(owned bool) {
	if owned {
		d.chipSelect(false)
	}
}

func (d *Display) chipSelect(on bool) {
	if d.opts.CS == nil {
		return
	}
	if on {
		d.out(d.opts.CS, gpio.Low)
		return
	}
	// Release even when failed, so a bus error never leaves the chip held.
	if err := d.opts.CS.Out(gpio.High); err != nil {
		d.fail(fmt.Errorf("tft: pin: %w", err))
	}
}

// SetPixel implements gfx.Sink.
func (d *Display) SetPixel(x, y int, c gfx.Color) {
	defer d.end(d.begin())
	d.setAddrWindow(x, y, 1, 1)
	d.write16(c)
}

// FillRun implements gfx.RunFiller.
func (d *Display) FillRun(x, y, w int, c gfx.Color) {
	d.FillRect(x, y, w, 1, c)
}

// FillColumn implements gfx.ColumnFiller.
func (d *Display) FillColumn(x, y, h int, c gfx.Color) {
	d.FillRect(x, y, 1, h, c)
}

// FillRect implements gfx.RectFiller.
func (d *Display) FillRect(x, y, w, h int, c gfx.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	defer d.end(d.begin())
	d.setAddrWindow(x, y, w, h)
	d.writeColor(c, w*h)
}

// FillScreen implements gfx.ScreenFiller.
func (d *Display) FillScreen(c gfx.Color) {
	d.FillRect(0, 0, d.opts.Width, d.opts.Height, c)
}

// WritePixels implements gfx.PixelStreamer.
func (d *Display) WritePixels(x, y, w, h int, colors []gfx.Color) {
	n := w * h
	if w <= 0 || h <= 0 || len(colors) < n {
		return
	}
	defer d.end(d.begin())
	d.setAddrWindow(x, y, w, h)
	for i := 0; i < n; i += blockPixels {
		k := min(blockPixels, n-i)
		for j, c := range colors[i : i+k] {
			d.block[2*j] = byte(c >> 8)
			d.block[2*j+1] = byte(c)
		}
		d.tx(d.block[:2*k])
	}
}

// InvertDisplay implements gfx.Inverter.
func (d *Display) InvertDisplay(invert bool) {
	if invert {
		_ = d.Command(cmdInvertOn)
	} else {
		_ = d.Command(cmdInvertOff)
	}
}

// setAddrWindow selects the RAM window for the following pixel data.
func (d *Display) setAddrWindow(x, y, w, h int) {
	x += d.opts.ColumnOffset
	y += d.opts.RowOffset
	x2 := x + w - 1
	y2 := y + h - 1

	d.writeCommand(cmdColumnAddr)
	d.tx([]byte{byte(x >> 8), byte(x), byte(x2 >> 8), byte(x2)})
	d.writeCommand(cmdRowAddr)
	d.tx([]byte{byte(y >> 8), byte(y), byte(y2 >> 8), byte(y2)})
	d.writeCommand(cmdMemoryWrite)
}

// writeColor sends n pixels of color c. Short runs are sent pixel by
// pixel, longer ones in blocks of blockPixels.
func (d *Display) writeColor(c gfx.Color, n int) {
	if n <= 4 {
		for range n {
			d.write16(c)
		}
		return
	}
	k := min(blockPixels, n)
	for i := range k {
		d.block[2*i] = byte(c >> 8)
		d.block[2*i+1] = byte(c)
	}
	full := n / blockPixels
	for range full {
		d.tx(d.block[:])
	}
	if rest := n - full*blockPixels; rest > 0 {
		d.tx(d.block[:2*rest])
	}
}

func (d *Display) write16(c gfx.Color) {
	d.tx([]byte{byte(c >> 8), byte(c)})
}

func (d *Display) writeCommand(cmd byte) {
	d.out(d.opts.DC, gpio.Low)
	d.tx([]byte{cmd})
	d.out(d.opts.DC, gpio.High)
}

func (d *Display) tx(b []byte) {
	if d.err != nil {
		return
	}
	if err := d.conn.Tx(b, nil); err != nil {
		d.fail(fmt.Errorf("tft: tx: %w", err))
	}
}

func (d *Display) out(p Pin, l gpio.Level) {
	if d.err != nil {
		return
	}
	if err := p.Out(l); err != nil {
		d.fail(fmt.Errorf("tft: pin: %w", err))
	}
}
