package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/flavioheleno/oledbuf"
	"github.com/flavioheleno/oledbuf/mono"
)

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("raster: png: %w", err)
	}
	return nil
}

// WriteBIN writes the raw framebuffer: exactly 1024 bytes, no header.
func WriteBIN(w io.Writer, b oledbuf.Buffer) error {
	n, err := w.Write(b[:])
	if err != nil {
		return fmt.Errorf("raster: bin: %w", err)
	}
	if n != len(b) {
		return fmt.Errorf("raster: bin: %w", io.ErrShortWrite)
	}
	return nil
}

// Half block characters indexed by (top << 1) | bottom.
var blocks = [4]string{" ", "▄", "▀", "█"}

// Terminal prints a text preview of g, two pixel rows per line.
func Terminal(w io.Writer, g *mono.Grid, invert bool) error {
	bw := bufio.NewWriter(w)
	r := g.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			top := g.BitAt(x, y) == mono.On
			bottom := y+1 < r.Max.Y && g.BitAt(x, y+1) == mono.On
			if invert {
				top = !top
				bottom = !bottom && y+1 < r.Max.Y
			}
			i := 0
			if top {
				i |= 2
			}
			if bottom {
				i |= 1
			}
			bw.WriteString(blocks[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
