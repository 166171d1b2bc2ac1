// Package fontconv builds gfx bitmap fonts from scalable and bitmap faces.
//
// Glyphs are rendered once with golang.org/x/image/font, reduced to one bit
// per pixel by an alpha threshold and trimmed to their ink bounds. The
// result can be bound to a surface directly or written out as Go source
// with WriteGo, so that small targets embed the font without a parser.
package fontconv

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gfx"
)

// DefaultThreshold is the alpha at or above which a pixel is set.
const DefaultThreshold = 0x80

// Option configures a conversion.
type Option func(*options)

type options struct {
	threshold uint8
}

// WithThreshold sets the alpha at or above which a rendered pixel becomes
// a set bit. 0 is treated as 1.
func WithThreshold(t uint8) Option {
	return func(o *options) {
		o.threshold = max(t, 1)
	}
}

// FromFace renders the characters first through last of face into a
// gfx.Font. Characters the face does not have become empty glyphs with
// zero advance.
func FromFace(face font.Face, first, last rune, opts ...Option) (*gfx.Font, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	if last < first {
		return nil, fmt.Errorf("%w: %U..%U", ErrEmptyRange, first, last)
	}
	o := options{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	f := &gfx.Font{
		First:    first,
		Last:     last,
		Glyphs:   make([]gfx.Glyph, 0, last-first+1),
		YAdvance: face.Metrics().Height.Ceil(),
	}
	for r := first; r <= last; r++ {
		f.Glyphs = append(f.Glyphs, appendGlyph(f, face, r, o.threshold))
	}

	gfx.Logger().Debug("fontconv: font converted",
		"first", first, "last", last, "glyphs", len(f.Glyphs), "bytes", len(f.Bitmap))
	return f, nil
}

// appendGlyph renders r, appends its packed bitmap to f.Bitmap and returns
// its metrics.
func appendGlyph(f *gfx.Font, face font.Face, r rune, threshold uint8) gfx.Glyph {
	g := gfx.Glyph{BitmapOffset: len(f.Bitmap)}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return g
	}
	g.XAdvance = advance.Round()

	ink := inkBounds(dr, mask, maskp, threshold)
	if ink.Empty() {
		return g
	}
	g.Width = ink.Dx()
	g.Height = ink.Dy()
	g.XOffset = ink.Min.X
	g.YOffset = ink.Min.Y

	var acc byte
	n := 0
	for y := ink.Min.Y; y < ink.Max.Y; y++ {
		for x := ink.Min.X; x < ink.Max.X; x++ {
			acc <<= 1
			if set(mask, maskp, dr, x, y, threshold) {
				acc |= 1
			}
			n++
			if n == 8 {
				f.Bitmap = append(f.Bitmap, acc)
				acc, n = 0, 0
			}
		}
	}
	if n > 0 {
		// Glyphs start on a byte boundary.
		f.Bitmap = append(f.Bitmap, acc<<(8-n))
	}
	return g
}

// set reports whether the pixel at (x, y), relative to the dot, is inked.
func set(mask image.Image, maskp image.Point, dr image.Rectangle, x, y int, threshold uint8) bool {
	_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
	return uint8(a>>8) >= threshold
}

// inkBounds returns the smallest rectangle, relative to the dot, holding
// every inked pixel of the glyph.
func inkBounds(dr image.Rectangle, mask image.Image, maskp image.Point, threshold uint8) image.Rectangle {
	var ink image.Rectangle
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if !set(mask, maskp, dr, x, y, threshold) {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if ink.Empty() {
				ink = px
			} else {
				ink = ink.Union(px)
			}
		}
	}
	return ink
}

// ParseTTF parses a TrueType or OpenType font and converts the characters
// first through last at the given size in points and resolution in dots
// per inch.
func ParseTTF(data []byte, size, dpi float64, first, last rune, opts ...Option) (*gfx.Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontconv: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontconv: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	if name, err := otf.Name(nil, sfnt.NameIDFamily); err == nil {
		gfx.Logger().Debug("fontconv: parsed font", "family", name, "size", size, "dpi", dpi)
	}
	return FromFace(face, first, last, opts...)
}

// GoRegular converts the printable ASCII range of the Go Regular font at
// the given size in pixels.
func GoRegular(size float64, opts ...Option) (*gfx.Font, error) {
	return ParseTTF(goregular.TTF, size, 72, 0x20, 0x7E, opts...)
}
