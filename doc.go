// Package gfx provides 2D drawing primitives for small pixel displays.
//
// # Overview
//
// gfx renders shapes, bitmaps and text into any destination that can set a
// single 565 color pixel: an SPI panel (see package tft), an offscreen
// canvas, or a recorder used in tests. Drivers implement one method and
// inherit the full set of primitives; faster paths are opt-in through
// small capability interfaces.
//
// # Quick Start
//
//	import "github.com/gogpu/gfx"
//
//	// Draw into a 16-bit offscreen canvas
//	c := gfx.NewCanvas16(160, 128)
//
//	c.FillScreen(gfx.Black)
//	c.FillRoundRect(10, 10, 60, 40, 8, gfx.Blue)
//	c.DrawCircle(110, 64, 30, gfx.Yellow)
//
//	c.SetCursor(12, 80)
//	c.SetTextSize(2)
//	fmt.Fprintf(c, "T=%d", 21)
//
//	// Save to PNG
//	c.SavePNG("output.png")
//
// # Sinks and capabilities
//
// A Sink only needs SetPixel. A sink that also implements RunFiller,
// ColumnFiller, RectFiller, PixelStreamer, ScreenFiller, Batcher, Rotator
// or Inverter gets the matching operation forwarded instead of being
// decomposed into pixels. The Surface clips every call first, so sinks
// never see off-screen coordinates.
//
// # Batches
//
// Every DrawXxx and FillXxx method brackets its writes in exactly one
// sink batch. WriteXxx methods do not, and are meant to be composed inside
// an explicit StartWrite/EndWrite pair. Batches nest.
//
// # Coordinate System
//
// Uses display coordinates:
//   - Origin (0,0) at top-left of the current rotation
//   - X increases right
//   - Y increases down
//   - Rotation is clockwise in steps of 90 degrees
//
// # Text
//
// The built-in font is a 5x7 font in a 6x8 cell indexed by Code Page 437
// codes; the text writer maps other runes to that code page. Custom proportional fonts use the Font type and are usually produced
// from TrueType files or x/image faces by package fontconv.
package gfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
