package bloom

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestPixmap_SetGetPixel(t *testing.T) {
	p := NewPixmap(16, 16)

	c := colorful.Color{R: 1, G: 0.5, B: 0.25}
	p.SetPixel(3, 4, c)

	got := p.GetPixel(3, 4)
	r1, g1, b1 := c.RGB255()
	r2, g2, b2 := got.RGB255()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("GetPixel = %v, want %v after 8-bit quantization", got, c)
	}

	// Untouched pixels stay black.
	if got := p.GetPixel(0, 0); got != (colorful.Color{}) {
		t.Errorf("untouched pixel = %v, want black", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	p := NewPixmap(4, 4)

	// Writes outside the buffer are dropped, reads return black.
	p.SetPixel(-1, 0, colorful.Color{R: 1})
	p.SetPixel(0, 4, colorful.Color{R: 1})
	p.SetPixel(4, 0, colorful.Color{R: 1})

	for _, b := range p.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds write reached the buffer")
		}
	}
	if got := p.GetPixel(10, 10); got != (colorful.Color{}) {
		t.Errorf("out-of-bounds read = %v, want black", got)
	}
}

func TestPixmap_Clear(t *testing.T) {
	p := NewPixmap(8, 8)
	p.Clear(colorful.Color{R: 1})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := p.GetPixel(x, y)
			if c.R != 1 || c.G != 0 || c.B != 0 {
				t.Fatalf("pixel (%d, %d) = %v, want red", x, y, c)
			}
		}
	}
}

func TestPixmap_ToImage(t *testing.T) {
	p := NewPixmap(5, 3)
	p.SetPixel(2, 1, colorful.Color{G: 1})

	img := p.ToImage()
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Fatalf("image bounds = %v, want (0,0)-(5,3)", img.Bounds())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r != 0 || g < 0xff00 || b != 0 {
		t.Errorf("image pixel = (%d, %d, %d), want pure green", r, g, b)
	}
}

func TestPixmap_Save(t *testing.T) {
	p := NewPixmap(10, 10)
	p.Clear(colorful.Color{B: 1})
	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "out.png")
		if err := p.Save(path); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		assertImageFile(t, path, "png")
	})

	t.Run("bmp", func(t *testing.T) {
		path := filepath.Join(dir, "out.bmp")
		if err := p.Save(path); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		assertImageFile(t, path, "bmp")
	})

	t.Run("tiff", func(t *testing.T) {
		path := filepath.Join(dir, "out.tiff")
		if err := p.Save(path); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		assertImageFile(t, path, "tiff")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if err := p.Save(filepath.Join(dir, "out.gif")); err == nil {
			t.Fatal("Save(.gif) succeeded, want error")
		}
	})
}

func assertImageFile(t *testing.T, path, format string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	var img image.Image
	switch format {
	case "png":
		img, _, err = image.Decode(f)
	case "bmp":
		img, err = bmp.Decode(f)
	case "tiff":
		img, err = tiff.Decode(f)
	}
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Errorf("decoded bounds = %v, want 10x10", img.Bounds())
	}
}
