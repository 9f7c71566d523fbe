package mono

import (
	"bytes"
	"image"
	"image/color"
	"math/bits"
)

// Bit is the state of a single monochrome pixel.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to opaque white (On) or opaque black (Off).
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as the grayscale conversions, thresholded at half scale.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Grid is a 1-bit image where pixels are stored in horizontal bit packing.
// Each byte holds 8 pixels of a row, most significant bit = leftmost pixel.
type Grid struct {
	Pix    []byte          // Pixel data (8 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewGrid creates a new Grid with the specified bounds, all pixels Off.
func NewGrid(r image.Rectangle) *Grid {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Grid{Rect: r}
	}
	stride := (w + 7) / 8
	return &Grid{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Grid) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *Grid) Bounds() image.Rectangle {
	return p.Rect
}

// Opaque reports whether the image is fully opaque, which it always is.
func (p *Grid) Opaque() bool {
	return true
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Grid) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the state of the pixel at (x, y). Pixels outside the bounds
// are Off.
func (p *Grid) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *Grid) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the state of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Grid) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Inverted returns a new grid with every pixel negated. The geometry is
// unchanged.
func (p *Grid) Inverted() *Grid {
	q := &Grid{
		Pix:    make([]byte, len(p.Pix)),
		Stride: p.Stride,
		Rect:   p.Rect,
	}
	for i, v := range p.Pix {
		q.Pix[i] = ^v
	}
	q.clearPadding()
	return q
}

// Count returns the number of pixels that are On.
func (p *Grid) Count() int {
	n := 0
	for _, v := range p.Pix {
		n += bits.OnesCount8(v)
	}
	return n
}

// Equal reports whether both grids have the same bounds and pixel states.
func (p *Grid) Equal(q *Grid) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.Rect == q.Rect && p.Stride == q.Stride && bytes.Equal(p.Pix, q.Pix)
}

// clearPadding zeroes the unused low bits of the last byte of every row, so
// that Count and Equal only see real pixels.
func (p *Grid) clearPadding() {
	rem := p.Rect.Dx() % 8
	if rem == 0 || p.Stride == 0 {
		return
	}
	keep := byte(0xFF << (8 - rem))
	for i := p.Stride - 1; i < len(p.Pix); i += p.Stride {
		p.Pix[i] &= keep
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte contains 8 horizontally adjacent pixels, the
// leftmost in bit 7.
func (p *Grid) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx%8)
	return
}
