package fontconv

import "errors"

var (
	// ErrEmptyRange is returned when last is below first.
	ErrEmptyRange = errors.New("fontconv: empty character range")

	// ErrNilFace is returned when no face is given.
	ErrNilFace = errors.New("fontconv: nil face")
)
