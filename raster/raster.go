// Package raster turns decoded framebuffers into images and files.
//
// Rendering always produces an *image.Paletted with pure black and pure
// white pixels, optionally upscaled with nearest-neighbour resampling and
// optionally overlaid with a faint grid marking the 8×8 page cells.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/flavioheleno/oledbuf/mono"
)

// Palette indices.
const (
	Black uint8 = iota
	White
	GridOnBlack
	GridOnWhite
)

// Palette of every rendered image. The grid entries are #888888 blended at
// 12% over black and over white.
var Palette = color.Palette{
	Black:       color.Gray{Y: 0x00},
	White:       color.Gray{Y: 0xFF},
	GridOnBlack: color.Gray{Y: 0x10},
	GridOnWhite: color.Gray{Y: 0xF1},
}

// swapped maps each palette index to its inverse.
var swapped = [...]uint8{
	Black:       White,
	White:       Black,
	GridOnBlack: GridOnWhite,
	GridOnWhite: GridOnBlack,
}

// Options controls rendering.
type Options struct {
	Scale    int  // Integer upscale factor (default: 1)
	Invert   bool // Swap lit and dark pixels
	Grid     bool // Overlay grid lines
	GridStep int  // Grid spacing in panel pixels (default: 8, one page)
}

func (o Options) normalized() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.GridStep <= 0 {
		o.GridStep = 8
	}
	return o
}

// Render rasterizes a grid. Lit pixels are white and dark pixels black,
// reversed when o.Invert is set.
func Render(g *mono.Grid, o Options) *image.Paletted {
	o = o.normalized()

	b := g.Bounds()
	src := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), Palette)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			on := g.BitAt(b.Min.X+x, b.Min.Y+y) == mono.On
			if on != o.Invert {
				src.Pix[y*src.Stride+x] = White
			}
		}
	}

	img := src
	if o.Scale > 1 {
		f := gift.New(gift.Resize(b.Dx()*o.Scale, b.Dy()*o.Scale, gift.NearestNeighborResampling))
		img = image.NewPaletted(f.Bounds(src.Bounds()), Palette)
		f.Draw(img, src)
	}

	if o.Grid {
		overlayGrid(img, o.GridStep*o.Scale)
	}
	return img
}

// overlayGrid shades every pixel row and column that is a multiple of step.
func overlayGrid(img *image.Paletted, step int) {
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x-r.Min.X)%step != 0 && (y-r.Min.Y)%step != 0 {
				continue
			}
			i := img.PixOffset(x, y)
			switch img.Pix[i] {
			case Black:
				img.Pix[i] = GridOnBlack
			case White:
				img.Pix[i] = GridOnWhite
			}
		}
	}
}

// SwapColors returns a copy of img with every color inverted: black becomes
// white and the grid shades swap with them. For any grid g and options o,
// SwapColors(Render(g, o)) is identical to Render(g.Inverted(), o).
func SwapColors(img *image.Paletted) *image.Paletted {
	out := &image.Paletted{
		Pix:     make([]uint8, len(img.Pix)),
		Stride:  img.Stride,
		Rect:    img.Rect,
		Palette: Palette,
	}
	for i, v := range img.Pix {
		if int(v) < len(swapped) {
			out.Pix[i] = swapped[v]
		}
	}
	return out
}
