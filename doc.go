// Package oledbuf decodes, inverts and re-encodes SSD1306 framebuffers.
//
// The SSD1306 is a monochrome OLED controller. On a 128×64 panel its display
// RAM is 1024 bytes, organized as 8 horizontal pages of 128 bytes. Each byte
// holds a vertical strip of 8 pixels of one column.
//
// # Memory Layout
//
//	          column 0   column 1  ...  column 127
//	page 0    byte 0     byte 1         byte 127     rows 0-7
//	page 1    byte 128   byte 129       byte 255     rows 8-15
//	...
//	page 7    byte 896   byte 897       byte 1023    rows 56-63
//
// With the default LSBFirst order, bit 0 of a byte is the top row of its
// page and bit 7 the bottom row. Some controllers and tools use the opposite
// convention, available as MSBFirst.
//
// # Parsing Text Dumps
//
// Framebuffers are usually copied out of firmware sources or debugger
// sessions. Parse accepts the common notations, freely mixed:
//
//	[0xFF, 0x00, 0x3C]   // C array
//	FF,00,3C             // comma separated
//	FF 00 3C             // space separated
//	255 0 60             // decimal
//
// Parse never fails. Unknown tokens are skipped, short input is zero padded
// and long input is truncated to 1024 bytes. Tokens of one or two hex digits
// are always read as hex, so "30" is 0x30 (48), not 30. Use ParseStats to
// find out how many tokens were skipped.
//
// # Decoding
//
//	buf := oledbuf.Parse(text)
//	grid := oledbuf.Decode(buf, oledbuf.LSBFirst)
//	if invert {
//		grid = oledbuf.Invert(grid)
//	}
//
// The grid is a mono.Grid, an image.Image in which lit pixels are white and
// dark pixels black. Encode turns a grid back into the exact bytes Decode
// read.
//
// # Panel
//
// Panel is a framebuffer-only stand-in for a SSD1306 device. It implements
// the display.Drawer interface from periph.io, so drawing code written for the
// real driver can render into a Buffer:
//
//	p := oledbuf.NewPanel(nil)
//	draw.Draw(...) // or p.Draw(p.Bounds(), img, image.Point{})
//	buf := p.Flush()
//
// Like the hardware driver, the panel keeps track of the smallest rectangle
// that changed since the last flush (see Panel.Dirty).
//
// # Datasheet
//
// For the addressing modes and the RAM layout, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package oledbuf
