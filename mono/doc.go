// Package mono provides a 1-bit monochrome image format used to hold a decoded
// OLED framebuffer.
//
// Pixels are stored in horizontal bit packing where each byte holds 8 pixels
// of one row. The most significant bit is the leftmost pixel.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7
//	Values: 1 0 1 1 0 0 0 1
//	Byte:   0xB1
//
// This package provides:
//
// - Bit: a color type that is either On (lit, white) or Off (dark, black)
// - BitModel: a color model converting standard Go colors to Bit
// - Grid: an image.Image implementation with per-pixel On/Off state
//
// Example usage:
//
//	// Create a 128x64 grid
//	g := mono.NewGrid(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	g.SetBit(10, 20, mono.On)
//
//	// Read it back
//	fmt.Println(g.BitAt(10, 20)) // Output: On
//
//	// Use with standard Go image operations
//	draw.Draw(g, g.Bounds(), image.NewUniform(mono.On), image.Point{}, draw.Src)
package mono
