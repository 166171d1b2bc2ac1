package fontconv

import (
	"bufio"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/gogpu/gfx"
)

// WriteGo writes f as a Go source file of package pkg declaring a
// variable name of type *gfx.Font. The output is gofmt-formatted.
func WriteGo(w io.Writer, pkg, name string, f *gfx.Font) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by fontconv. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/gogpu/gfx\"\n\n")
	fmt.Fprintf(&b, "var %s = &gfx.Font{\n", name)

	fmt.Fprintf(&b, "Bitmap: []byte{")
	for i, v := range f.Bitmap {
		if i%12 == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "0x%02X, ", v)
	}
	b.WriteString("\n},\n")

	fmt.Fprintf(&b, "Glyphs: []gfx.Glyph{\n")
	for i, g := range f.Glyphs {
		fmt.Fprintf(&b, "{BitmapOffset: %d, Width: %d, Height: %d, XAdvance: %d, XOffset: %d, YOffset: %d}, // %s\n",
			g.BitmapOffset, g.Width, g.Height, g.XAdvance, g.XOffset, g.YOffset, glyphComment(f.First+rune(i)))
	}
	b.WriteString("},\n")
	fmt.Fprintf(&b, "First: %#x,\nLast: %#x,\nYAdvance: %d,\n}\n", f.First, f.Last, f.YAdvance)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return fmt.Errorf("fontconv: format source: %w", err)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(src); err != nil {
		return err
	}
	return bw.Flush()
}

func glyphComment(r rune) string {
	if r > 0x20 && r < 0x7F {
		return fmt.Sprintf("%U '%c'", r, r)
	}
	return fmt.Sprintf("%U", r)
}
