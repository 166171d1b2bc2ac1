package gfx_test

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/recording"
)

const (
	cx, cy = 32, 32
)

func newRecorded(w, h int, opts ...gfx.Option) (*gfx.Surface, *recording.Recorder) {
	rec := recording.NewRecorder(w, h)
	return gfx.NewSurface(rec, w, h, opts...), rec
}

func TestDrawCircleOutline(t *testing.T) {
	for r := 1; r <= 25; r++ {
		s, rec := newRecorded(64, 64)
		s.DrawCircle(cx, cy, r, gfx.White)

		if n := rec.Count(recording.CmdSetPixel); (n-4)%8 != 0 {
			t.Errorf("r=%d: %d pixel writes, want 4 plus a multiple of 8", r, n)
		}
		for p := range rec.Writes() {
			d := math.Hypot(float64(p.X-cx), float64(p.Y-cy))
			if math.Abs(d-float64(r)) >= 1 {
				t.Errorf("r=%d: pixel %v at distance %.2f", r, p, d)
			}
		}
		for _, p := range []image.Point{{cx + r, cy}, {cx - r, cy}, {cx, cy + r}, {cx, cy - r}} {
			if rec.Writes()[p] == 0 {
				t.Errorf("r=%d: axis point %v missing", r, p)
			}
		}
	}
}

func TestDrawCircleSymmetric(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.DrawCircle(cx, cy, 17, gfx.White)
	w := rec.Writes()
	for p := range w {
		dx, dy := p.X-cx, p.Y-cy
		for _, q := range []image.Point{{cx - dx, cy + dy}, {cx + dx, cy - dy}, {cx + dy, cy + dx}} {
			if w[q] == 0 {
				t.Errorf("pixel %v has no mirror at %v", p, q)
			}
		}
	}
}

func TestFillCircleWritesOnce(t *testing.T) {
	for r := 0; r <= 20; r++ {
		s, rec := newRecorded(64, 64)
		s.FillCircle(cx, cy, r, gfx.White)

		writes := rec.Writes()
		for p, n := range writes {
			if n != 1 {
				t.Errorf("r=%d: pixel %v written %d times", r, p, n)
			}
			dx, dy := p.X-cx, p.Y-cy
			if dx*dx+dy*dy > r*r+r {
				t.Errorf("r=%d: pixel %v outside the circle", r, p)
			}
		}

		// The fill covers the outline.
		o, orec := newRecorded(64, 64)
		o.DrawCircle(cx, cy, r, gfx.White)
		for p := range orec.Writes() {
			if writes[p] == 0 {
				t.Errorf("r=%d: outline pixel %v not filled", r, p)
			}
		}
	}
}

func TestFillCircleHelperHalves(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.StartWrite()
	s.FillCircleHelper(cx, cy, 10, gfx.HalfRight, 0, gfx.White)
	s.EndWrite()
	for p := range rec.Writes() {
		if p.X <= cx {
			t.Fatalf("right half wrote %v", p)
		}
	}

	s, rec = newRecorded(64, 64)
	s.StartWrite()
	s.FillCircleHelper(cx, cy, 10, gfx.HalfLeft, 5, gfx.White)
	s.EndWrite()
	maxY := 0
	for p := range rec.Writes() {
		if p.X >= cx {
			t.Fatalf("left half wrote %v", p)
		}
		maxY = max(maxY, p.Y)
	}
	if maxY != cy+10+5 {
		t.Errorf("delta 5 reached y=%d, want %d", maxY, cy+15)
	}
}

func TestDrawCircleHelperQuadrants(t *testing.T) {
	tests := []struct {
		corner gfx.Corner
		inside func(dx, dy int) bool
	}{
		{gfx.CornerTopLeft, func(dx, dy int) bool { return dx < 0 && dy < 0 }},
		{gfx.CornerTopRight, func(dx, dy int) bool { return dx > 0 && dy < 0 }},
		{gfx.CornerBottomRight, func(dx, dy int) bool { return dx > 0 && dy > 0 }},
		{gfx.CornerBottomLeft, func(dx, dy int) bool { return dx < 0 && dy > 0 }},
	}
	for _, tt := range tests {
		s, rec := newRecorded(64, 64)
		s.StartWrite()
		s.DrawCircleHelper(cx, cy, 12, tt.corner, gfx.White)
		s.EndWrite()
		if len(rec.Writes()) == 0 {
			t.Errorf("corner %d drew nothing", tt.corner)
		}
		for p := range rec.Writes() {
			if !tt.inside(p.X-cx, p.Y-cy) {
				t.Errorf("corner %d wrote %v", tt.corner, p)
			}
		}
	}
}

func TestDrawRect(t *testing.T) {
	s, rec := newRecorded(32, 32)
	s.DrawRect(2, 3, 10, 6, gfx.White)

	w := rec.Writes()
	for x := 2; x < 12; x++ {
		if w[image.Pt(x, 3)] == 0 || w[image.Pt(x, 8)] == 0 {
			t.Errorf("edge pixel at column %d missing", x)
		}
	}
	for y := 3; y < 9; y++ {
		if w[image.Pt(2, y)] == 0 || w[image.Pt(11, y)] == 0 {
			t.Errorf("edge pixel at row %d missing", y)
		}
	}
	if w[image.Pt(5, 5)] != 0 {
		t.Error("outline wrote the interior")
	}
	if len(w) != 2*10+2*4 {
		t.Errorf("outline has %d pixels, want %d", len(w), 2*10+2*4)
	}
}

func bounds(w map[image.Point]int) image.Rectangle {
	var b image.Rectangle
	first := true
	for p := range w {
		px := image.Rect(p.X, p.Y, p.X+1, p.Y+1)
		if first {
			b, first = px, false
		} else {
			b = b.Union(px)
		}
	}
	return b
}

func TestFillRoundRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		r          int
	}{
		{"square corners", 3, 4, 20, 10, 0},
		{"small radius", 3, 4, 20, 10, 3},
		{"pill", 3, 4, 30, 12, 6},
		{"radius clamped", 3, 4, 20, 10, 50},
		{"negative radius", 3, 4, 20, 10, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newRecorded(64, 64)
			s.FillRoundRect(tt.x, tt.y, tt.w, tt.h, tt.r, gfx.White)

			w := rec.Writes()
			for p, n := range w {
				if n != 1 {
					t.Errorf("pixel %v written %d times", p, n)
				}
			}
			if got, want := bounds(w), image.Rect(tt.x, tt.y, tt.x+tt.w, tt.y+tt.h); got != want {
				t.Errorf("bounds = %v, want %v", got, want)
			}
			// Left/right mirror symmetry.
			for p := range w {
				q := image.Pt(2*tt.x+tt.w-1-p.X, p.Y)
				if w[q] == 0 {
					t.Errorf("pixel %v has no mirror %v", p, q)
				}
			}
			if tt.r <= 0 && len(w) != tt.w*tt.h {
				t.Errorf("square corners filled %d pixels, want %d", len(w), tt.w*tt.h)
			}
		})
	}
}

func TestDrawRoundRectCorners(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.DrawRoundRect(4, 4, 30, 20, 6, gfx.White)
	w := rec.Writes()

	if w[image.Pt(4, 4)] != 0 || w[image.Pt(33, 23)] != 0 {
		t.Error("rounded corner pixels were drawn")
	}
	for _, p := range []image.Point{{10, 4}, {4, 10}, {27, 23}, {33, 17}} {
		if w[p] == 0 {
			t.Errorf("edge pixel %v missing", p)
		}
	}
	if got := bounds(w); got != image.Rect(4, 4, 34, 24) {
		t.Errorf("bounds = %v, want (4,4)-(34,24)", got)
	}
}

func rowWidths(w map[image.Point]int) map[int]int {
	rows := map[int]int{}
	for p := range w {
		rows[p.Y]++
	}
	return rows
}

func TestFillTriangleFlatBottom(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.FillTriangle(20, 0, 10, 10, 30, 10, gfx.White)

	rows := rowWidths(rec.Writes())
	for y := 0; y <= 10; y++ {
		if rows[y] != 2*y+1 {
			t.Errorf("row %d has %d pixels, want %d", y, rows[y], 2*y+1)
		}
	}
	if len(rows) != 11 {
		t.Errorf("triangle spans %d rows, want 11", len(rows))
	}
}

func TestFillTriangleFlatTop(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.FillTriangle(10, 0, 30, 0, 20, 10, gfx.White)

	rows := rowWidths(rec.Writes())
	for y := 0; y <= 10; y++ {
		if rows[y] != 21-2*y {
			t.Errorf("row %d has %d pixels, want %d", y, rows[y], 21-2*y)
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.FillTriangle(0, 5, 10, 5, 4, 5, gfx.White)

	w := rec.Writes()
	if len(w) != 11 {
		t.Errorf("flat triangle has %d pixels, want 11", len(w))
	}
	for x := 0; x <= 10; x++ {
		if w[image.Pt(x, 5)] != 1 {
			t.Errorf("pixel (%d,5) written %d times", x, w[image.Pt(x, 5)])
		}
	}
}

func TestFillTriangleOrderIndependent(t *testing.T) {
	v := [3]image.Point{{5, 2}, {40, 17}, {12, 45}}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	var ref map[image.Point]int
	for _, p := range perms {
		s, rec := newRecorded(64, 64)
		a, b, c := v[p[0]], v[p[1]], v[p[2]]
		s.FillTriangle(a.X, a.Y, b.X, b.Y, c.X, c.Y, gfx.White)

		w := rec.Writes()
		for q, n := range w {
			if n != 1 {
				t.Errorf("perm %v: pixel %v written %d times", p, q, n)
			}
		}
		if ref == nil {
			ref = w
			continue
		}
		if len(w) != len(ref) {
			t.Errorf("perm %v: %d pixels, want %d", p, len(w), len(ref))
		}
		for q := range ref {
			if w[q] == 0 {
				t.Errorf("perm %v: pixel %v missing", p, q)
			}
		}
	}

	for _, q := range v {
		if ref[q] == 0 {
			t.Errorf("vertex %v not filled", q)
		}
	}
}

func TestDrawTriangleJoinsVertices(t *testing.T) {
	s, rec := newRecorded(64, 64)
	s.DrawTriangle(5, 5, 50, 12, 20, 40, gfx.White)
	w := rec.Writes()
	for _, p := range []image.Point{{5, 5}, {50, 12}, {20, 40}} {
		if w[p] == 0 {
			t.Errorf("vertex %v missing", p)
		}
	}
	if rec.Batches() != 1 {
		t.Errorf("DrawTriangle opened %d batches, want 1", rec.Batches())
	}
}
