package gfx

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// MaxCanvasPixels is the largest canvas, in pixels, that the canvas
// constructors agree to allocate.
const MaxCanvasPixels = 1 << 22

// validCanvasSize reports whether a canvas of w x h pixels may be allocated
// and logs a warning when it may not.
func validCanvasSize(kind string, w, h int) bool {
	if w > 0 && h > 0 && w <= MaxCanvasPixels/h {
		return true
	}
	Logger().Warn("gfx: invalid canvas size, drawing disabled",
		"canvas", kind, "width", w, "height", h, "max_pixels", MaxCanvasPixels)
	return false
}

// Canvas1 is an offscreen 1-bit canvas. Rows are packed MSB first and
// padded to a whole byte, the layout DrawBitmap reads, so a canvas can be
// blitted onto another surface with DrawBitmap(x, y, c.Buffer(), ...).
//
// Any non-zero color sets a pixel.
type Canvas1 struct {
	*Surface
	buf *buffer1
}

// NewCanvas1 creates a cleared 1-bit canvas of the given raw size.
// The returned canvas is invalid, and every drawing call a no-op, when the
// size is not positive or exceeds MaxCanvasPixels.
func NewCanvas1(width, height int, opts ...Option) *Canvas1 {
	b := &buffer1{width: width, height: height}
	if validCanvasSize("1-bit", width, height) {
		b.stride = (width + 7) / 8
		b.pix = make([]byte, b.stride*height)
		Logger().Debug("gfx: canvas allocated", "depth", 1, "width", width, "height", height)
	}
	return &Canvas1{Surface: NewSurface(b, width, height, opts...), buf: b}
}

// Valid reports whether the canvas has a buffer.
func (c *Canvas1) Valid() bool {
	return c.buf.pix != nil
}

// Buffer returns the backing buffer in raw orientation, (RawWidth()+7)/8
// bytes per row.
func (c *Canvas1) Buffer() []byte {
	return c.buf.pix
}

// Pixel reports whether the pixel at (x, y) is set. Coordinates are in the
// current rotation; off-canvas pixels read as unset.
func (c *Canvas1) Pixel(x, y int) bool {
	if !c.contains(x, y) {
		return false
	}
	x, y, _, _ = c.toRaw(x, y, 1, 1)
	return c.RawPixel(x, y)
}

// RawPixel is like Pixel but ignores the rotation.
func (c *Canvas1) RawPixel(x, y int) bool {
	return c.buf.get(x, y)
}

// At implements the image.Image interface.
func (c *Canvas1) At(x, y int) color.Color {
	if c.Pixel(x, y) {
		return color.Gray{Y: 0xFF}
	}
	return color.Gray{}
}

// Bounds implements the image.Image interface.
func (c *Canvas1) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// ColorModel implements the image.Image interface.
func (c *Canvas1) ColorModel() color.Model {
	return color.GrayModel
}

// SavePNG saves the canvas, as currently rotated, to a PNG file.
func (c *Canvas1) SavePNG(path string) error {
	return savePNG(path, c)
}

type buffer1 struct {
	width, height int
	stride        int
	pix           []byte
}

func (b *buffer1) inBounds(x, y int) bool {
	return b.pix != nil && x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *buffer1) get(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.pix[y*b.stride+x/8]&(0x80>>(x&7)) != 0
}

func (b *buffer1) SetPixel(x, y int, c Color) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.stride + x/8
	if c != 0 {
		b.pix[i] |= 0x80 >> (x & 7)
	} else {
		b.pix[i] &^= 0x80 >> (x & 7)
	}
}

func (b *buffer1) FillScreen(c Color) {
	v := byte(0)
	if c != 0 {
		v = 0xFF
	}
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Canvas8 is an offscreen 8-bit canvas, one byte per pixel. Only the low
// byte of a color is stored, which suits grayscale and palette indices.
type Canvas8 struct {
	*Surface
	buf *buffer8
}

// NewCanvas8 creates a cleared 8-bit canvas of the given raw size. See
// NewCanvas1 for invalid sizes.
func NewCanvas8(width, height int, opts ...Option) *Canvas8 {
	b := &buffer8{width: width, height: height}
	if validCanvasSize("8-bit", width, height) {
		b.pix = make([]uint8, width*height)
		Logger().Debug("gfx: canvas allocated", "depth", 8, "width", width, "height", height)
	}
	return &Canvas8{Surface: NewSurface(b, width, height, opts...), buf: b}
}

// Valid reports whether the canvas has a buffer.
func (c *Canvas8) Valid() bool {
	return c.buf.pix != nil
}

// Buffer returns the backing buffer in raw orientation, RawWidth() bytes
// per row.
func (c *Canvas8) Buffer() []uint8 {
	return c.buf.pix
}

// Pixel returns the value at (x, y) in the current rotation, or 0 off the
// canvas.
func (c *Canvas8) Pixel(x, y int) uint8 {
	if !c.contains(x, y) {
		return 0
	}
	x, y, _, _ = c.toRaw(x, y, 1, 1)
	return c.RawPixel(x, y)
}

// RawPixel is like Pixel but ignores the rotation.
func (c *Canvas8) RawPixel(x, y int) uint8 {
	if !c.buf.inBounds(x, y) {
		return 0
	}
	return c.buf.pix[y*c.buf.width+x]
}

// At implements the image.Image interface.
func (c *Canvas8) At(x, y int) color.Color {
	return color.Gray{Y: c.Pixel(x, y)}
}

// Bounds implements the image.Image interface.
func (c *Canvas8) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// ColorModel implements the image.Image interface.
func (c *Canvas8) ColorModel() color.Model {
	return color.GrayModel
}

// SavePNG saves the canvas, as currently rotated, to a PNG file.
func (c *Canvas8) SavePNG(path string) error {
	return savePNG(path, c)
}

type buffer8 struct {
	width, height int
	pix           []uint8
}

func (b *buffer8) inBounds(x, y int) bool {
	return b.pix != nil && x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *buffer8) SetPixel(x, y int, c Color) {
	if b.inBounds(x, y) {
		b.pix[y*b.width+x] = uint8(c)
	}
}

func (b *buffer8) FillRun(x, y, w int, c Color) {
	if !b.inBounds(x, y) || !b.inBounds(x+w-1, y) {
		return
	}
	row := b.pix[y*b.width+x : y*b.width+x+w]
	for i := range row {
		row[i] = uint8(c)
	}
}

func (b *buffer8) FillScreen(c Color) {
	for i := range b.pix {
		b.pix[i] = uint8(c)
	}
}

// Canvas16 is an offscreen 565 color canvas.
type Canvas16 struct {
	*Surface
	buf *buffer16
}

// NewCanvas16 creates a black 565 canvas of the given raw size. See
// NewCanvas1 for invalid sizes.
func NewCanvas16(width, height int, opts ...Option) *Canvas16 {
	b := &buffer16{width: width, height: height}
	if validCanvasSize("16-bit", width, height) {
		b.pix = make([]Color, width*height)
		Logger().Debug("gfx: canvas allocated", "depth", 16, "width", width, "height", height)
	}
	return &Canvas16{Surface: NewSurface(b, width, height, opts...), buf: b}
}

// Valid reports whether the canvas has a buffer.
func (c *Canvas16) Valid() bool {
	return c.buf.pix != nil
}

// Buffer returns the backing buffer in raw orientation, RawWidth() colors
// per row. It can be passed to DrawRGBBitmap of another surface.
func (c *Canvas16) Buffer() []Color {
	return c.buf.pix
}

// Pixel returns the color at (x, y) in the current rotation, or Black off
// the canvas.
func (c *Canvas16) Pixel(x, y int) Color {
	if !c.contains(x, y) {
		return Black
	}
	x, y, _, _ = c.toRaw(x, y, 1, 1)
	return c.RawPixel(x, y)
}

// RawPixel is like Pixel but ignores the rotation.
func (c *Canvas16) RawPixel(x, y int) Color {
	if !c.buf.inBounds(x, y) {
		return Black
	}
	return c.buf.pix[y*c.buf.width+x]
}

// At implements the image.Image interface.
func (c *Canvas16) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas16) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// ColorModel implements the image.Image interface.
func (c *Canvas16) ColorModel() color.Model {
	return ColorModel
}

// SavePNG saves the canvas, as currently rotated, to a PNG file.
func (c *Canvas16) SavePNG(path string) error {
	return savePNG(path, c)
}

type buffer16 struct {
	width, height int
	pix           []Color
}

func (b *buffer16) inBounds(x, y int) bool {
	return b.pix != nil && x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *buffer16) SetPixel(x, y int, c Color) {
	if b.inBounds(x, y) {
		b.pix[y*b.width+x] = c
	}
}

func (b *buffer16) FillRun(x, y, w int, c Color) {
	if !b.inBounds(x, y) || !b.inBounds(x+w-1, y) {
		return
	}
	row := b.pix[y*b.width+x : y*b.width+x+w]
	for i := range row {
		row[i] = c
	}
}

func (b *buffer16) FillColumn(x, y, h int, c Color) {
	if !b.inBounds(x, y) || !b.inBounds(x, y+h-1) {
		return
	}
	for i := y*b.width + x; h > 0; i, h = i+b.width, h-1 {
		b.pix[i] = c
	}
}

func (b *buffer16) WritePixels(x, y, w, h int, colors []Color) {
	if !b.inBounds(x, y) || !b.inBounds(x+w-1, y+h-1) || len(colors) < w*h {
		return
	}
	for j := range h {
		copy(b.pix[(y+j)*b.width+x:], colors[j*w:(j+1)*w])
	}
}

func (b *buffer16) FillScreen(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// savePNG encodes img to a PNG file at path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
