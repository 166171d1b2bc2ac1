package gfx

// Rotation is one of the four cardinal display orientations, clockwise.
type Rotation uint8

// Supported rotations.
const (
	Rotate0   Rotation = iota // raw panel orientation
	Rotate90                  // 90° clockwise
	Rotate180                 // 180°
	Rotate270                 // 270° clockwise
)

// Surface is a drawable area bound to a Sink.
//
// Surface carries the geometry (raw and rotated size), the text state and
// the batching state, and implements every drawing primitive on top of the
// sink's capabilities. Drawing never fails: coordinates outside the surface
// are clipped and degenerate shapes are ignored.
//
// Methods named DrawXxx and FillXxx are self-contained: each opens at most
// one batch on the sink. Methods named WriteXxx assume the caller has
// opened a batch with StartWrite and are meant for composing several
// primitives into a single batch.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	sink Sink
	caps capabilities

	rawWidth, rawHeight int
	width, height       int
	rotation            Rotation

	batchDepth int

	text textState
}

// NewSurface creates a Surface of the given raw size drawing into sink.
func NewSurface(sink Sink, width, height int, opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		sink:      sink,
		caps:      detectCapabilities(sink),
		rawWidth:  width,
		rawHeight: height,
		width:     width,
		height:    height,
		text: textState{
			fg:    o.fg,
			bg:    o.bg,
			size:  o.textSize,
			wrap:  o.wrap,
			cp437: o.cp437,
			font:  o.font,
		},
	}
	if o.rotation != Rotate0 {
		s.SetRotation(o.rotation)
	}
	return s
}

// Sink returns the sink the surface draws into.
func (s *Surface) Sink() Sink {
	return s.sink
}

// Width returns the width of the surface, accounting for the current
// rotation.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface, accounting for the current
// rotation.
func (s *Surface) Height() int {
	return s.height
}

// RawWidth returns the unrotated panel width.
func (s *Surface) RawWidth() int {
	return s.rawWidth
}

// RawHeight returns the unrotated panel height.
func (s *Surface) RawHeight() int {
	return s.rawHeight
}

// Rotation returns the current rotation.
func (s *Surface) Rotation() Rotation {
	return s.rotation
}

// SetRotation sets the rotation, taken modulo 4, and recomputes the
// effective width and height.
func (s *Surface) SetRotation(r Rotation) {
	s.rotation = r & 3
	if s.rotation&1 == 0 {
		s.width, s.height = s.rawWidth, s.rawHeight
	} else {
		s.width, s.height = s.rawHeight, s.rawWidth
	}
	if s.caps.rotator != nil {
		s.caps.rotator.SetRotation(s.rotation)
	}
}

// InvertDisplay inverts the display colors if the sink supports it.
func (s *Surface) InvertDisplay(invert bool) {
	if s.caps.invert != nil {
		s.caps.invert.InvertDisplay(invert)
	}
}

// toRaw maps an on-surface logical rectangle to raw panel coordinates.
// Sinks that rotate in hardware receive logical coordinates unchanged.
func (s *Surface) toRaw(x, y, w, h int) (rx, ry, rw, rh int) {
	if s.caps.rotator != nil {
		return x, y, w, h
	}
	switch s.rotation {
	case Rotate90:
		return s.rawWidth - y - h, x, h, w
	case Rotate180:
		return s.rawWidth - x - w, s.rawHeight - y - h, w, h
	case Rotate270:
		return y, s.rawHeight - x - w, h, w
	}
	return x, y, w, h
}

// contains reports whether (x, y) lies on the surface.
func (s *Surface) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}
