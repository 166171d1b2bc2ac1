package recording

import (
	"fmt"

	"github.com/gogpu/gfx"
)

// CommandType identifies the sink call a command records.
type CommandType uint8

const (
	// Batch commands
	CmdBeginBatch CommandType = iota // Batcher.BeginBatch
	CmdEndBatch                      // Batcher.EndBatch

	// Drawing commands
	CmdSetPixel    // Sink.SetPixel
	CmdFillRun     // RunFiller.FillRun
	CmdFillColumn  // ColumnFiller.FillColumn
	CmdFillRect    // RectFiller.FillRect
	CmdWritePixels // PixelStreamer.WritePixels
	CmdFillScreen  // ScreenFiller.FillScreen

	// Device commands
	CmdInvert // Inverter.InvertDisplay
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginBatch:  "BeginBatch",
	CmdEndBatch:    "EndBatch",
	CmdSetPixel:    "SetPixel",
	CmdFillRun:     "FillRun",
	CmdFillColumn:  "FillColumn",
	CmdFillRect:    "FillRect",
	CmdWritePixels: "WritePixels",
	CmdFillScreen:  "FillScreen",
	CmdInvert:      "Invert",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded sink call.
//
// X, Y, W and H describe the affected area in sink coordinates: 1x1 for
// SetPixel, Wx1 for FillRun, 1xH for FillColumn and the whole recorder area
// for FillScreen. Pixels holds a copy of the colors passed to WritePixels.
type Command struct {
	Type       CommandType
	X, Y, W, H int
	Color      gfx.Color
	Pixels     []gfx.Color
	Invert     bool
}

// String returns a compact description such as "FillRun(3,4 5x1 #f800)".
func (c Command) String() string {
	switch c.Type {
	case CmdBeginBatch, CmdEndBatch:
		return c.Type.String()
	case CmdInvert:
		return fmt.Sprintf("%s(%t)", c.Type, c.Invert)
	case CmdWritePixels:
		return fmt.Sprintf("%s(%d,%d %dx%d)", c.Type, c.X, c.Y, c.W, c.H)
	}
	return fmt.Sprintf("%s(%d,%d %dx%d #%04x)", c.Type, c.X, c.Y, c.W, c.H, uint16(c.Color))
}

// draws reports whether the command writes pixels.
func (c Command) draws() bool {
	switch c.Type {
	case CmdSetPixel, CmdFillRun, CmdFillColumn, CmdFillRect, CmdWritePixels, CmdFillScreen:
		return true
	}
	return false
}
