package gfx

// Option configures a Surface during creation.
// Use functional options to customize the initial text and rotation state.
//
// Example:
//
//	// Default state: rotation 0, built-in font, size 1, white text, wrap on
//	s := gfx.NewSurface(sink, 240, 320)
//
//	// Landscape with a custom font and larger text
//	s := gfx.NewSurface(sink, 240, 320,
//	    gfx.WithRotation(gfx.Rotate90),
//	    gfx.WithFont(myFont),
//	    gfx.WithTextSize(2))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	rotation Rotation
	font     *Font
	textSize int
	fg, bg   Color
	wrap     bool
	cp437    bool
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		textSize: 1,
		fg:       White,
		bg:       White,
		wrap:     true,
	}
}

// WithRotation sets the initial rotation. Values are taken modulo 4.
func WithRotation(r Rotation) Option {
	return func(o *surfaceOptions) {
		o.rotation = r & 3
	}
}

// WithFont binds a custom font. A nil font selects the built-in fixed font.
//
// Unlike SetFont, the cursor is not nudged: the surface starts out with the
// given font bound.
func WithFont(f *Font) Option {
	return func(o *surfaceOptions) {
		o.font = f
	}
}

// WithTextSize sets the text magnification. Values below 1 clamp to 1.
func WithTextSize(size int) Option {
	return func(o *surfaceOptions) {
		o.textSize = max(size, 1)
	}
}

// WithTextColor sets the text foreground and background colors.
// Pass the same color twice for a transparent background.
func WithTextColor(fg, bg Color) Option {
	return func(o *surfaceOptions) {
		o.fg = fg
		o.bg = bg
	}
}

// WithTextWrap enables or disables wrapping at the right edge.
func WithTextWrap(wrap bool) Option {
	return func(o *surfaceOptions) {
		o.wrap = wrap
	}
}

// WithCP437 selects correct Code Page 437 indexing for the built-in font.
// See Surface.SetCP437.
func WithCP437(enabled bool) Option {
	return func(o *surfaceOptions) {
		o.cp437 = enabled
	}
}
