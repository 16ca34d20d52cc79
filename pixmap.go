package bloom

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Coordinates outside the
// buffer are ignored.
func (p *Pixmap) SetPixel(x, y int, c colorful.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b := c.Clamped().RGB255()
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = 255
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) colorful.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return colorful.Color{}
	}
	i := (y*p.width + x) * 4
	return colorful.Color{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c colorful.Color) {
	r, g, b := c.Clamped().RGB255()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 255
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.save(path, func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})
}

// Save saves the pixmap to a file, choosing the encoder from the file
// extension. Supported formats are png, bmp and tiff.
func (p *Pixmap) Save(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return p.SavePNG(path)
	case ".bmp":
		return p.save(path, func(f *os.File, img image.Image) error {
			return bmp.Encode(f, img)
		})
	case ".tif", ".tiff":
		return p.save(path, func(f *os.File, img image.Image) error {
			return tiff.Encode(f, img, nil)
		})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

func (p *Pixmap) save(path string, encode func(*os.File, image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	px := p.GetPixel(x, y)
	return color.NRGBA{
		R: uint8(px.R*255 + 0.5),
		G: uint8(px.G*255 + 0.5),
		B: uint8(px.B*255 + 0.5),
		A: 255,
	}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
