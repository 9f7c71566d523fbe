package oledbuf

import (
	"fmt"
	"strings"
)

// Display geometry of a SSD1306 128x64 panel.
const (
	Width      = 128
	Height     = 64
	Pages      = Height / 8
	BufferSize = Width * Pages
)

// Buffer is a raw SSD1306 framebuffer: 8 pages of 128 column bytes.
//
// Byte page*Width+x holds the 8 vertical pixels of column x, rows page*8
// through page*8+7. The zero value is a blank screen.
type Buffer [BufferSize]byte

// Page returns the 128 bytes of page p (0-7).
func (b *Buffer) Page(p int) []byte {
	return b[p*Width : (p+1)*Width]
}

// BitOrder selects which bit of a page byte maps to the topmost row of the page.
type BitOrder int

const (
	// LSBFirst maps bit 0 to the top row of the page. This is the SSD1306
	// default and the zero value.
	LSBFirst BitOrder = iota
	// MSBFirst maps bit 7 to the top row of the page.
	MSBFirst
)

func (o BitOrder) String() string {
	switch o {
	case LSBFirst:
		return "lsb-first"
	case MSBFirst:
		return "msb-first"
	default:
		return fmt.Sprintf("BitOrder(%d)", int(o))
	}
}

// ParseBitOrder parses "lsb", "lsb-first", "msb" or "msb-first" (any case).
func ParseBitOrder(s string) (BitOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lsb", "lsb-first", "lsbfirst":
		return LSBFirst, nil
	case "msb", "msb-first", "msbfirst":
		return MSBFirst, nil
	}
	return LSBFirst, fmt.Errorf("oledbuf: unknown bit order %q", s)
}

// shift returns how far a page byte must be shifted right to bring the bit
// for the given row (0-7) within the page into bit 0.
func (o BitOrder) shift(row int) uint {
	if o == MSBFirst {
		return uint(7 - row)
	}
	return uint(row)
}
