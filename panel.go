package oledbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/bits"

	"github.com/flavioheleno/oledbuf/mono"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts is the configuration for a Panel.
type Opts struct {
	Order  BitOrder // Bit order of buffers accepted by Write and returned by Flush
	Invert bool     // Start with display inversion enabled
}

// Panel is an in-memory SSD1306 128x64 panel. It holds the display RAM the
// way the controller does and can be handed to any code written against
// periph.io display.Drawer, without any hardware attached.
//
// A Panel is not safe for concurrent use.
type Panel struct {
	ram  *image1bit.VerticalLSB // Display RAM, always LSB-first page layout
	last []byte                 // RAM at the last Flush, for dirty tracking

	order    BitOrder
	inverted bool
	halted   bool
}

var _ display.Drawer = (*Panel)(nil)

// NewPanel creates a blank panel.
//
// opts can be nil to use defaults (LSB-first, not inverted).
func NewPanel(opts *Opts) *Panel {
	if opts == nil {
		opts = &Opts{}
	}
	return &Panel{
		ram:      image1bit.NewVerticalLSB(Bounds),
		last:     make([]byte, BufferSize),
		order:    opts.Order,
		inverted: opts.Invert,
	}
}

// ColorModel returns the color model of the panel.
func (p *Panel) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the panel.
func (p *Panel) Bounds() image.Rectangle {
	return Bounds
}

// Draw draws an image onto the panel RAM.
// The dst rectangle specifies the destination region on the panel.
// The src image is positioned at src point sp within the destination.
func (p *Panel) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if p.halted {
		return errors.New("oledbuf: halted")
	}

	dst = dst.Intersect(Bounds)
	if dst.Empty() {
		return nil
	}

	// Fast paths for full frames already in a known layout.
	if dst == Bounds && sp == (image.Point{}) {
		switch img := src.(type) {
		case *image1bit.VerticalLSB:
			if img.Rect == Bounds {
				copy(p.ram.Pix, img.Pix)
				return nil
			}
		case *mono.Grid:
			if img.Rect == Bounds {
				b := Encode(img, LSBFirst)
				copy(p.ram.Pix, b[:])
				return nil
			}
		}
	}

	draw.Draw(p.ram, dst, src, sp, draw.Src)
	return nil
}

// Write replaces the whole panel RAM with a raw framebuffer in the panel's
// bit order. The data must be exactly BufferSize bytes.
func (p *Panel) Write(pixels []byte) (int, error) {
	if p.halted {
		return 0, errors.New("oledbuf: halted")
	}
	if len(pixels) != BufferSize {
		return 0, errors.New("oledbuf: invalid buffer size")
	}
	copy(p.ram.Pix, pixels)
	if p.order == MSBFirst {
		reverseBits(p.ram.Pix)
	}
	return len(pixels), nil
}

// Dirty returns the smallest page aligned rectangle that changed since the
// last Flush. The boolean is false when nothing changed.
func (p *Panel) Dirty() (image.Rectangle, bool) {
	minCol, maxCol, minPage, maxPage := p.calculateDiff()
	if minCol > maxCol {
		return image.Rectangle{}, false
	}
	return image.Rect(minCol, minPage*8, maxCol+1, (maxPage+1)*8), true
}

// calculateDiff compares the RAM against the last flushed frame. Returns
// (minCol, maxCol, minPage, maxPage) or (Width, -1, Pages, -1) if no changes.
func (p *Panel) calculateDiff() (minCol, maxCol, minPage, maxPage int) {
	minCol, maxCol = Width, -1
	minPage, maxPage = Pages, -1

	for page := 0; page < Pages; page++ {
		start := page * Width
		end := start + Width
		if bytes.Equal(p.last[start:end], p.ram.Pix[start:end]) {
			continue
		}
		if page < minPage {
			minPage = page
		}
		maxPage = page

		for x := 0; x < Width; x++ {
			if p.last[start+x] != p.ram.Pix[start+x] {
				if x < minCol {
					minCol = x
				}
				if x > maxCol {
					maxCol = x
				}
			}
		}
	}
	return
}

// Flush returns the current frame in the panel's bit order and marks it as
// the new reference for Dirty.
func (p *Panel) Flush() Buffer {
	copy(p.last, p.ram.Pix)
	return p.Buffer()
}

// Buffer returns the current frame in the panel's bit order.
func (p *Panel) Buffer() Buffer {
	var b Buffer
	copy(b[:], p.ram.Pix)
	if p.order == MSBFirst {
		reverseBits(b[:])
	}
	return b
}

// Grid returns what the panel currently shows, with inversion applied.
func (p *Panel) Grid() *mono.Grid {
	var b Buffer
	copy(b[:], p.ram.Pix)
	g := Decode(b, LSBFirst)
	if p.inverted {
		return Invert(g)
	}
	return g
}

// Invert inverts the displayed colors (black becomes white and vice versa).
// The RAM content is not changed.
func (p *Panel) Invert(invert bool) error {
	if p.halted {
		return errors.New("oledbuf: halted")
	}
	p.inverted = invert
	return nil
}

// Halt turns the panel off. Draw, Write and Invert fail afterwards.
func (p *Panel) Halt() error {
	p.halted = true
	return nil
}

// String returns a string representation of the panel.
func (p *Panel) String() string {
	return fmt.Sprintf("oledbuf.Panel{%dx%d}", Width, Height)
}

func reverseBits(p []byte) {
	for i, v := range p {
		p[i] = bits.Reverse8(v)
	}
}
