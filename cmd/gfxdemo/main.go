// Command gfxdemo demonstrates the gfx drawing primitives on an offscreen
// canvas and saves the result as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/fontconv"
)

func main() {
	var (
		width    = flag.Int("width", 320, "canvas width")
		height   = flag.Int("height", 240, "canvas height")
		rotation = flag.Int("rotation", 0, "rotation in quarter turns clockwise")
		output   = flag.String("output", "demo.png", "output file")
		fontSize = flag.Float64("font-size", 14, "size of the proportional font in pixels, 0 to skip it")
		emitFont = flag.String("emit-font", "", "also write the proportional font as Go source to this file")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := gfx.NewCanvas16(*width, *height, gfx.WithRotation(gfx.Rotation(*rotation)))
	if !c.Valid() {
		log.Fatalf("Invalid canvas size %dx%d", *width, *height)
	}

	c.FillScreen(gfx.Color565(16, 24, 48))
	drawShapesDemo(c.Surface)
	drawTextDemo(c.Surface)

	if *fontSize > 0 {
		f, err := fontconv.GoRegular(*fontSize)
		if err != nil {
			log.Fatalf("Failed to convert font: %v", err)
		}
		drawFontDemo(c.Surface, f)
		if *emitFont != "" {
			if err := writeFont(*emitFont, f); err != nil {
				log.Fatalf("Failed to write font: %v", err)
			}
		}
	}

	drawButtonDemo(c.Surface)

	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, c.Width(), c.Height())
}

func drawShapesDemo(s *gfx.Surface) {
	// Circles
	s.FillCircle(40, 40, 24, gfx.Red)
	s.DrawCircle(40, 40, 28, gfx.White)

	// Rectangles
	s.FillRoundRect(80, 16, 70, 48, 10, gfx.Orange)
	s.DrawRoundRect(80, 16, 70, 48, 10, gfx.White)
	s.DrawRect(160, 16, 48, 48, gfx.Cyan)

	// Triangles
	s.FillTriangle(220, 64, 250, 14, 280, 64, gfx.Green)
	s.DrawTriangle(220, 64, 250, 14, 280, 64, gfx.White)

	// Line fan
	for i := 0; i <= 8; i++ {
		s.DrawLine(10, 120, 10+i*12, 80, gfx.Color565(uint8(i*30), 200, 255-uint8(i*30)))
	}

	// Checker bitmap
	checker := []byte{0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55}
	s.DrawBitmapOpaque(120, 84, checker, 8, 8, gfx.White, gfx.Black)
	s.DrawXBitmap(132, 84, checker, 8, 8, gfx.Magenta)
}

func drawTextDemo(s *gfx.Surface) {
	s.SetCursor(4, 132)
	s.SetTextColors(gfx.Yellow, gfx.Blue)
	s.SetTextSize(2)
	fmt.Fprintf(s, "gfx %s\n", gfx.Version)

	s.SetTextColor(gfx.White)
	s.SetTextSize(1)
	_, _ = s.WriteString("The quick brown fox jumps over the lazy dog. ")
	_, _ = s.WriteString("Long lines wrap at the right edge of the canvas.\n")

	s.SetCP437(true)
	_, _ = s.WriteString("Grüße ░▒▓█ ±½°\n")
	s.SetCP437(false)
}

func drawFontDemo(s *gfx.Surface, f *gfx.Font) {
	s.SetFont(f)
	s.SetTextColor(gfx.Cyan)
	s.SetCursor(4, s.Height()-40)
	_, _ = s.WriteString("Proportional Go Regular")

	b := s.TextBounds("Proportional Go Regular", 4, s.Height()-40)
	s.DrawRect(b.Min.X-1, b.Min.Y-1, b.Dx()+2, b.Dy()+2, gfx.Green)
	s.SetFont(nil)
}

func drawButtonDemo(s *gfx.Surface) {
	var ok gfx.Button
	ok.InitButton(s, s.Width()-50, s.Height()-20, 80, 30, gfx.White, gfx.Blue, gfx.White, "OK", 2)
	ok.Draw(false)
}

func writeFont(path string, f *gfx.Font) error {
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := fontconv.WriteGo(out, "fonts", "GoRegular", f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
