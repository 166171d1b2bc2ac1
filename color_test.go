package gfx

import (
	"image/color"
	"testing"
)

func TestColor565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 255, 255, 255, White},
		{"red", 255, 0, 0, Red},
		{"green", 0, 255, 0, Green},
		{"blue", 0, 0, 255, Blue},
		{"orange", 255, 128, 0, Orange},
		{"low bits dropped", 7, 3, 7, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color565(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Color565(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorRGBExpandsFullIntensity(t *testing.T) {
	r, g, b := White.RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("White.RGB() = (%d, %d, %d), want (255, 255, 255)", r, g, b)
	}
	r, g, b = Black.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Black.RGB() = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Red, Green, Blue, Cyan, Magenta, Yellow, Orange, 0x1234, 0xBEEF} {
		if got := FromColor(c); got != c {
			t.Errorf("FromColor(%#04x) = %#04x", c, got)
		}
		r, g, b := c.RGB()
		if got := Color565(r, g, b); got != c {
			t.Errorf("Color565(%#04x.RGB()) = %#04x", c, got)
		}
	}
}

func TestColorModel(t *testing.T) {
	got := ColorModel.Convert(color.RGBA{R: 255, A: 255})
	if got != Red {
		t.Errorf("ColorModel.Convert(red) = %v, want %v", got, Red)
	}
	_, _, _, a := Blue.RGBA()
	if a != 0xFFFF {
		t.Errorf("Blue alpha = %#x, want 0xffff", a)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"fff", White},
		{"#ff8000", Orange},
		{"bogus", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}
}
