package oledbuf

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/flavioheleno/oledbuf/mono"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestPanelDefaults(t *testing.T) {
	p := NewPanel(nil)
	if got := p.Bounds(); got != image.Rect(0, 0, 128, 64) {
		t.Errorf("Bounds() = %v, want 128x64", got)
	}
	if p.ColorModel() != image1bit.BitModel {
		t.Error("ColorModel() did not return image1bit.BitModel")
	}
	if want := "oledbuf.Panel{128x64}"; p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
	if p.Buffer() != (Buffer{}) {
		t.Error("new panel should be blank")
	}
	if _, dirty := p.Dirty(); dirty {
		t.Error("new panel should not be dirty")
	}
}

func TestPanelHalt(t *testing.T) {
	p := NewPanel(nil)
	if p.halted {
		t.Error("panel should not be halted initially")
	}
	if err := p.Halt(); err != nil {
		t.Fatalf("Halt() = %v", err)
	}

	if err := p.Draw(p.Bounds(), image.NewRGBA(p.Bounds()), image.Point{}); err == nil {
		t.Error("Draw should fail when halted")
	}
	if _, err := p.Write(make([]byte, BufferSize)); err == nil {
		t.Error("Write should fail when halted")
	}
	if err := p.Invert(true); err == nil {
		t.Error("Invert should fail when halted")
	}
}

func TestPanelWriteBufferSizeValidation(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"too small", BufferSize - 1},
		{"too large", BufferSize + 1},
		{"ssd1322 sized", 256 * 64 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(nil)
			_, err := p.Write(make([]byte, tt.size))
			if err == nil {
				t.Fatal("Write should fail with invalid buffer size")
			}
			if err.Error() != "oledbuf: invalid buffer size" {
				t.Errorf("Write error = %v, want 'oledbuf: invalid buffer size'", err)
			}
		})
	}
}

func TestPanelWriteFlush(t *testing.T) {
	for _, order := range []BitOrder{LSBFirst, MSBFirst} {
		t.Run(order.String(), func(t *testing.T) {
			p := NewPanel(&Opts{Order: order})
			b := randomBuffer(5)

			n, err := p.Write(b[:])
			if err != nil || n != BufferSize {
				t.Fatalf("Write() = %d, %v", n, err)
			}
			if got := p.Flush(); got != b {
				t.Error("Flush() did not return the written buffer")
			}
			if !p.Grid().Equal(Decode(b, order)) {
				t.Error("Grid() does not match Decode of the written buffer")
			}
		})
	}
}

func TestPanelDrawDirtyWindow(t *testing.T) {
	p := NewPanel(nil)

	// Rows 9-10 live in page 1.
	white := image.NewUniform(color.White)
	if err := p.Draw(image.Rect(20, 9, 30, 11), white, image.Point{}); err != nil {
		t.Fatal(err)
	}

	r, dirty := p.Dirty()
	if !dirty {
		t.Fatal("panel should be dirty after Draw")
	}
	if want := image.Rect(20, 8, 30, 16); r != want {
		t.Errorf("Dirty() = %v, want %v", r, want)
	}

	buf := p.Flush()
	if _, dirty := p.Dirty(); dirty {
		t.Error("panel should be clean after Flush")
	}
	if buf.Page(1)[20] != 0x06 || buf.Page(1)[29] != 0x06 {
		t.Errorf("page 1 columns 20 and 29 = 0x%02X 0x%02X, want 0x06", buf.Page(1)[20], buf.Page(1)[29])
	}
	if buf.Page(1)[30] != 0 || buf.Page(0)[20] != 0 {
		t.Error("pixels outside the drawn rectangle were lit")
	}

	// Drawing the same content again is not a change.
	if err := p.Draw(image.Rect(20, 9, 30, 11), white, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if _, dirty := p.Dirty(); dirty {
		t.Error("redrawing identical pixels should not mark the panel dirty")
	}
}

func TestPanelDrawSpansPages(t *testing.T) {
	p := NewPanel(nil)
	if err := p.Draw(image.Rect(0, 6, 2, 18), image.NewUniform(color.White), image.Point{}); err != nil {
		t.Fatal(err)
	}
	r, _ := p.Dirty()
	if want := image.Rect(0, 0, 2, 24); r != want {
		t.Errorf("Dirty() = %v, want %v", r, want)
	}
}

func TestPanelDrawClipped(t *testing.T) {
	p := NewPanel(nil)
	if err := p.Draw(image.Rect(200, 200, 300, 300), image.NewUniform(color.White), image.Point{}); err != nil {
		t.Errorf("Draw outside bounds = %v, want nil", err)
	}
	if _, dirty := p.Dirty(); dirty {
		t.Error("Draw outside bounds should be a no-op")
	}
}

func TestPanelDrawFastPaths(t *testing.T) {
	b := randomBuffer(9)
	want := Decode(b, LSBFirst)

	t.Run("mono grid", func(t *testing.T) {
		p := NewPanel(nil)
		if err := p.Draw(p.Bounds(), want, image.Point{}); err != nil {
			t.Fatal(err)
		}
		if p.Buffer() != b {
			t.Error("drawing a decoded grid did not reproduce the buffer")
		}
	})

	t.Run("vertical lsb", func(t *testing.T) {
		src := image1bit.NewVerticalLSB(Bounds)
		copy(src.Pix, b[:])
		p := NewPanel(nil)
		if err := p.Draw(p.Bounds(), src, image.Point{}); err != nil {
			t.Fatal(err)
		}
		if p.Buffer() != b {
			t.Error("drawing an image1bit frame did not reproduce the buffer")
		}
	})

	t.Run("generic image", func(t *testing.T) {
		rgba := image.NewRGBA(Bounds)
		draw.Draw(rgba, rgba.Bounds(), want, image.Point{}, draw.Src)
		p := NewPanel(nil)
		if err := p.Draw(p.Bounds(), rgba, image.Point{}); err != nil {
			t.Fatal(err)
		}
		if p.Buffer() != b {
			t.Error("drawing an RGBA copy of the grid did not reproduce the buffer")
		}
	})
}

func TestPanelInvert(t *testing.T) {
	p := NewPanel(&Opts{Invert: true})
	if n := p.Grid().Count(); n != Width*Height {
		t.Errorf("inverted blank panel shows %d lit pixels, want %d", n, Width*Height)
	}
	if err := p.Invert(false); err != nil {
		t.Fatal(err)
	}
	if n := p.Grid().Count(); n != 0 {
		t.Errorf("blank panel shows %d lit pixels, want 0", n)
	}
	if p.Buffer() != (Buffer{}) {
		t.Error("Invert must not change the RAM")
	}
}

func TestPanelGridIsMono(t *testing.T) {
	var g image.Image = NewPanel(nil).Grid()
	if _, ok := g.(*mono.Grid); !ok {
		t.Errorf("Grid() returned %T, want *mono.Grid", g)
	}
}
