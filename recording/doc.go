// Package recording provides sinks that record the calls a gfx.Surface
// makes instead of drawing pixels.
//
// The recording system captures every sink call as a Command that can be
// inspected or played back to another sink. It is mainly a test tool: a
// Recorder makes the exact decomposition of a drawing call visible, and
// Writes reports how many times each pixel was touched.
//
// # Recorders
//
// Two recorders are provided:
//
//   - Recorder: SetPixel and batches only, so every primitive reaches it
//     fully decomposed into pixels.
//   - AcceleratedRecorder: additionally implements every optional
//     capability except rotation, so runs, rectangles and pixel blocks
//     arrive as single commands.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(320, 240)
//	s := gfx.NewSurface(rec, 320, 240)
//	s.FillCircle(100, 100, 20, gfx.Red)
//
//	fmt.Println(rec.Batches(), len(rec.Commands()))
//
//	// Replay onto a canvas
//	c := gfx.NewCanvas16(320, 240)
//	rec.Playback(c.Sink())
//
// The recorders are not safe for concurrent use.
package recording
