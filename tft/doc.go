// Package tft drives SPI color panels that speak the MIPI DCS command set,
// such as the ST7735, ST7789 and ILI9341 families.
//
// A Display implements gfx.Sink together with the run, rectangle, block
// and batch capabilities, so every gfx primitive reaches the panel as a
// small number of address windows filled with color data. Chip select is
// held for the whole of a gfx batch.
//
// The driver does not send a panel initialization sequence; those differ
// between controllers. Send one with Command after Reset.
//
// # Example
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	host.Init()
//	port, _ := spireg.Open("")
//	d, err := tft.Open(port, &tft.Opts{
//		Width:  240,
//		Height: 320,
//		DC:     gpioreg.ByName("GPIO25"),
//		Reset:  gpioreg.ByName("GPIO24"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = d.Reset()
//	for _, c := range st7789Init {
//		d.Command(c[0], c[1:]...)
//	}
//
//	s := d.Surface(gfx.WithRotation(gfx.Rotate90))
//	s.FillScreen(gfx.Black)
//	if err := d.Err(); err != nil {
//		log.Fatal(err)
//	}
//
// # Errors
//
// Drawing through gfx cannot return errors. The first bus or pin error is
// kept and reported by Err; once an error is kept all further bus traffic
// is skipped until ClearErr.
package tft
