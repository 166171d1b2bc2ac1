package gfx_test

import (
	"image"
	"image/color"
	"maps"
	"testing"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/recording"
)

func TestOneBitBitmaps(t *testing.T) {
	tests := []struct {
		name   string
		draw   func(s *gfx.Surface)
		want   map[image.Point]gfx.Color
		writes int
	}{
		{
			name: "msb first",
			draw: func(s *gfx.Surface) {
				s.DrawBitmap(3, 4, []byte{0x80, 0x40, 0x01, 0x00}, 10, 2, gfx.Red)
			},
			want: map[image.Point]gfx.Color{{3, 4}: gfx.Red, {12, 4}: gfx.Red, {10, 5}: gfx.Red},
		},
		{
			name: "xbm lsb first",
			draw: func(s *gfx.Surface) {
				s.DrawXBitmap(3, 4, []byte{0x80, 0x02, 0x01, 0x00}, 10, 2, gfx.Red)
			},
			want: map[image.Point]gfx.Color{{10, 4}: gfx.Red, {12, 4}: gfx.Red, {3, 5}: gfx.Red},
		},
		{
			name: "padding bits ignored",
			draw: func(s *gfx.Surface) {
				s.DrawBitmap(0, 0, []byte{0x00, 0x3F}, 10, 1, gfx.Red)
			},
			want: map[image.Point]gfx.Color{},
		},
		{
			name: "opaque",
			draw: func(s *gfx.Surface) {
				s.DrawBitmapOpaque(0, 0, []byte{0xA5}, 8, 1, gfx.White, gfx.Blue)
			},
			want: map[image.Point]gfx.Color{
				{0, 0}: gfx.White, {1, 0}: gfx.Blue, {2, 0}: gfx.White, {3, 0}: gfx.Blue,
				{4, 0}: gfx.Blue, {5, 0}: gfx.White, {6, 0}: gfx.Blue, {7, 0}: gfx.White,
			},
		},
		{
			name: "short slice stops",
			draw: func(s *gfx.Surface) {
				s.DrawBitmap(0, 0, []byte{0x80, 0x80}, 8, 4, gfx.Red)
			},
			want: map[image.Point]gfx.Color{{0, 0}: gfx.Red, {0, 1}: gfx.Red},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newRecorded(32, 32)
			tt.draw(s)
			if got := rec.Pixels(); !maps.Equal(got, tt.want) {
				t.Errorf("pixels = %v, want %v", got, tt.want)
			}
			if rec.Batches() != 1 {
				t.Errorf("%d batches, want 1", rec.Batches())
			}
		})
	}
}

func TestGrayscaleBitmaps(t *testing.T) {
	gray := []byte{10, 20, 30, 40}

	s, rec := newRecorded(8, 8)
	s.DrawGrayscaleBitmap(1, 1, gray, 2, 2)
	want := map[image.Point]gfx.Color{{1, 1}: 10, {2, 1}: 20, {1, 2}: 30, {2, 2}: 40}
	if got := rec.Pixels(); !maps.Equal(got, want) {
		t.Errorf("grayscale pixels = %v, want %v", got, want)
	}

	s, rec = newRecorded(8, 8)
	s.DrawGrayscaleBitmapMasked(1, 1, gray, []byte{0x80, 0x40}, 2, 2)
	want = map[image.Point]gfx.Color{{1, 1}: 10, {2, 2}: 40}
	if got := rec.Pixels(); !maps.Equal(got, want) {
		t.Errorf("masked grayscale pixels = %v, want %v", got, want)
	}
}

func TestRGBBitmapMasked(t *testing.T) {
	s, rec := newRecorded(8, 8)
	rgb := []gfx.Color{gfx.Red, gfx.Green, gfx.Blue, gfx.White}
	s.DrawRGBBitmapMasked(0, 0, rgb, []byte{0x40, 0x80}, 2, 2)

	want := map[image.Point]gfx.Color{{1, 0}: gfx.Green, {0, 1}: gfx.Blue}
	if got := rec.Pixels(); !maps.Equal(got, want) {
		t.Errorf("pixels = %v, want %v", got, want)
	}
}

func sequence(n int) []gfx.Color {
	out := make([]gfx.Color, n)
	for i := range out {
		out[i] = gfx.Color(i + 1)
	}
	return out
}

func TestRGBBitmapStreamsClippedRows(t *testing.T) {
	a := recording.NewAcceleratedRecorder(10, 10)
	s := gfx.NewSurface(a, 10, 10)

	// 4x3 bitmap with two columns off the left edge and one row off the
	// bottom.
	s.DrawRGBBitmap(-2, 8, sequence(12), 4, 3)

	cmds := a.DrawCommands()
	if len(cmds) != 2 {
		t.Fatalf("got %v, want one block per visible row", cmds)
	}
	for i, c := range cmds {
		if c.Type != recording.CmdWritePixels || c.X != 0 || c.Y != 8+i || c.W != 2 || c.H != 1 {
			t.Errorf("command %d = %v, want a 2x1 block at (0,%d)", i, c, 8+i)
		}
	}
	want := map[image.Point]gfx.Color{{0, 8}: 3, {1, 8}: 4, {0, 9}: 7, {1, 9}: 8}
	if got := a.Pixels(); !maps.Equal(got, want) {
		t.Errorf("pixels = %v, want %v", got, want)
	}
}

func TestRGBBitmapRotated(t *testing.T) {
	a := recording.NewAcceleratedRecorder(10, 6)
	s := gfx.NewSurface(a, 10, 6, gfx.WithRotation(gfx.Rotate90))

	s.DrawRGBBitmap(0, 0, sequence(6), 3, 2)

	if n := a.Count(recording.CmdWritePixels); n != 0 {
		t.Errorf("rotated bitmap streamed %d blocks, want per-pixel writes", n)
	}
	// Logical (x, y) lands on raw (rawWidth-1-y, x).
	want := map[image.Point]gfx.Color{
		{9, 0}: 1, {9, 1}: 2, {9, 2}: 3,
		{8, 0}: 4, {8, 1}: 5, {8, 2}: 6,
	}
	if got := a.Pixels(); !maps.Equal(got, want) {
		t.Errorf("pixels = %v, want %v", got, want)
	}
}

func TestRGBBitmapShortSlice(t *testing.T) {
	for _, accelerated := range []bool{false, true} {
		var rec *recording.Recorder
		var sink gfx.Sink
		if accelerated {
			a := recording.NewAcceleratedRecorder(10, 10)
			rec, sink = a.Recorder, a
		} else {
			rec = recording.NewRecorder(10, 10)
			sink = rec
		}
		s := gfx.NewSurface(sink, 10, 10)

		s.DrawRGBBitmap(0, 0, sequence(7), 3, 3)
		if n := len(rec.Pixels()); n != 6 {
			t.Errorf("accelerated=%v: drew %d pixels, want the two complete rows", accelerated, n)
		}

		rec.Reset()
		s.DrawRGBBitmap(0, 0, sequence(4), 0, 3)
		if n := len(rec.Commands()); n != 0 {
			t.Errorf("accelerated=%v: zero-width bitmap recorded %v", accelerated, rec.Commands())
		}
	}
}

func TestDrawImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	img.Set(6, 5, color.NRGBA{R: 255, A: 255})
	img.Set(5, 6, color.NRGBA{G: 255, A: 255})
	img.Set(6, 6, color.NRGBA{B: 255, A: 255})

	s, rec := newRecorded(8, 8)
	s.DrawImage(2, 3, img)

	want := map[image.Point]gfx.Color{{3, 3}: gfx.Red, {2, 4}: gfx.Green, {3, 4}: gfx.Blue}
	if got := rec.Pixels(); !maps.Equal(got, want) {
		t.Errorf("pixels = %v, want %v", got, want)
	}
}
