package gfx

import "unicode/utf8"

// maxButtonLabel is the longest label a Button keeps, in characters.
const maxButtonLabel = 9

// Button is a simple labelled push button drawn as a rounded rectangle.
//
// A Button only remembers geometry, colors and press state; it draws
// through the Surface it was initialized with. Drawing moves the surface's
// text cursor and changes its text color and size.
type Button struct {
	surface *Surface

	x, y, w, h int
	outline    Color
	fill       Color
	textColor  Color
	textSize   int
	label      string

	current, previous bool
}

// InitButton sets up the button centered on (x, y).
func (b *Button) InitButton(s *Surface, x, y, w, h int, outline, fill, textColor Color, label string, textSize int) {
	b.InitButtonUL(s, x-w/2, y-h/2, w, h, outline, fill, textColor, label, textSize)
}

// InitButtonUL sets up the button with its top-left corner at (x, y).
// Labels longer than nine characters are truncated.
func (b *Button) InitButtonUL(s *Surface, x, y, w, h int, outline, fill, textColor Color, label string, textSize int) {
	b.surface = s
	b.x, b.y, b.w, b.h = x, y, w, h
	b.outline = outline
	b.fill = fill
	b.textColor = textColor
	b.textSize = max(textSize, 1)
	b.label = truncateRunes(label, maxButtonLabel)
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Draw draws the button. An inverted button swaps its fill and text
// colors, which is the usual way to show it pressed.
func (b *Button) Draw(inverted bool) {
	if b.surface == nil {
		return
	}
	fill, text := b.fill, b.textColor
	if inverted {
		fill, text = text, fill
	}

	s := b.surface
	r := min(b.w, b.h) / 4
	s.FillRoundRect(b.x, b.y, b.w, b.h, r, fill)
	s.DrawRoundRect(b.x, b.y, b.w, b.h, r, b.outline)

	n := utf8.RuneCountInString(b.label)
	s.SetCursor(b.x+b.w/2-n*3*b.textSize, b.y+b.h/2-4*b.textSize)
	s.SetTextColor(text)
	s.SetTextSize(b.textSize)
	_, _ = s.WriteString(b.label)
}

// Contains reports whether (x, y) lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// Press records the current press state, typically once per touch poll.
func (b *Button) Press(pressed bool) {
	b.previous = b.current
	b.current = pressed
}

// IsPressed reports the state given to the last Press call.
func (b *Button) IsPressed() bool {
	return b.current
}

// JustPressed reports whether the button went down on the last Press call.
func (b *Button) JustPressed() bool {
	return b.current && !b.previous
}

// JustReleased reports whether the button went up on the last Press call.
func (b *Button) JustReleased() bool {
	return !b.current && b.previous
}

func truncateRunes(str string, n int) string {
	i := 0
	for pos := range str {
		if i == n {
			return str[:pos]
		}
		i++
	}
	return str
}
