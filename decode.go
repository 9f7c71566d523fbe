package oledbuf

import (
	"image"

	"github.com/flavioheleno/oledbuf/mono"
)

// Bounds is the fixed image rectangle of a decoded framebuffer.
var Bounds = image.Rect(0, 0, Width, Height)

// Decode converts a framebuffer into a 128x64 grid of pixels.
//
// Page p, column x is byte p*Width+x. Its bits light rows p*8 through p*8+7,
// with bit 0 at the top for LSBFirst and bit 7 at the top for MSBFirst.
func Decode(b Buffer, order BitOrder) *mono.Grid {
	g := mono.NewGrid(Bounds)
	for page := 0; page < Pages; page++ {
		for x := 0; x < Width; x++ {
			v := b[page*Width+x]
			if v == 0 {
				continue
			}
			for row := 0; row < 8; row++ {
				if (v>>order.shift(row))&1 == 1 {
					g.SetBit(x, page*8+row, mono.On)
				}
			}
		}
	}
	return g
}

// DecodeBytes decodes a raw framebuffer held in a slice, such as the content
// of a .bin dump. It panics if p is not exactly BufferSize bytes long; callers
// that take untrusted input must check the length first.
func DecodeBytes(p []byte, order BitOrder) *mono.Grid {
	if len(p) != BufferSize {
		panic("oledbuf: buffer must be 1024 bytes")
	}
	var b Buffer
	copy(b[:], p)
	return Decode(b, order)
}

// Encode packs a grid back into a framebuffer. It is the exact inverse of
// Decode for the same bit order. Only the 128x64 area starting at
// g.Rect.Min is read; pixels outside the grid are off.
func Encode(g *mono.Grid, order BitOrder) Buffer {
	var b Buffer
	origin := g.Rect.Min
	for page := 0; page < Pages; page++ {
		for x := 0; x < Width; x++ {
			var v byte
			for row := 0; row < 8; row++ {
				if g.BitAt(origin.X+x, origin.Y+page*8+row) == mono.On {
					v |= 1 << order.shift(row)
				}
			}
			b[page*Width+x] = v
		}
	}
	return b
}

// Invert returns a new grid with every pixel negated.
func Invert(g *mono.Grid) *mono.Grid {
	return g.Inverted()
}
