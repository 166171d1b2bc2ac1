package tft

import "errors"

var (
	// ErrNoDataCommandPin is returned when Opts has no DC pin.
	ErrNoDataCommandPin = errors.New("tft: data/command pin is required")

	// ErrInvalidSize is returned for a non-positive panel size.
	ErrInvalidSize = errors.New("tft: invalid panel size")

	// ErrNilConn is returned when no bus connection is given.
	ErrNilConn = errors.New("tft: nil connection")
)
