package bloom

import (
	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bloomgen/bloom/internal/curve"
)

// blankSpace is the margin around the generated radius, as a fraction of
// the image side.
const blankSpace = 0.1

// canvas maps the y-up generation grid onto a Pixmap. The grid origin sits
// at the image center and rows flip, since images are y-down.
type canvas struct {
	pix    *Pixmap
	center int
}

func newCanvas(radius uint16, background colorful.Color) *canvas {
	side := int(math32.Round(2 * float32(radius) * (1 + blankSpace)))
	pm := NewPixmap(side, side)
	pm.Clear(background)
	return &canvas{pix: pm, center: side / 2}
}

func (c *canvas) set(x, y int16, col colorful.Color) {
	ix := c.center + int(x)
	iy := (c.pix.Height() - 1) - (c.center + int(y))
	c.pix.SetPixel(ix, iy, col)
}

func (c *canvas) drawPixels(px []pixel) {
	for _, p := range px {
		c.set(p.at.X, p.at.Y, p.color)
	}
}

func (c *canvas) drawSkeleton(skeleton []curve.GridPoint, col colorful.Color) {
	for _, pt := range skeleton {
		c.set(pt.X, pt.Y, col)
	}
}

// drawDisc scanline-fills a circle of the given radius around the grid
// origin.
func (c *canvas) drawDisc(radius float32, col colorful.Color) {
	r := int(math32.Round(radius))
	for y := -r; y <= r; y++ {
		half := int(math32.Round(math32.Sqrt(radius*radius - float32(y*y))))
		for x := -half; x <= half; x++ {
			c.set(int16(x), int16(y), col)
		}
	}
}

// outlineColor picks a skeleton highlight distinguishable from the filled
// interior: lightened over a dark background, darkened over a light one.
func outlineColor(average, background colorful.Color) colorful.Color {
	h, s, l := average.Hsl()
	if isDark(background) {
		l = max(l, 0.15) * 1.5
	} else {
		l *= 0.75
	}
	if l > 1 {
		l = 1
	}
	return colorful.Hsl(h, s, l)
}

// renderMosaic rasterizes a standalone mosaic.
func renderMosaic(m *mosaic) *Pixmap {
	c := newCanvas(m.radius, m.background)
	c.drawPixels(m.drawing.pixels)
	c.drawSkeleton(m.drawing.skeleton, outlineColor(m.drawing.average, m.background))
	return c.pix
}

// renderFlower rasterizes a flower back to front: petal layers in order,
// then a clearing disc slightly wider than the centerpiece, then the
// mosaic itself.
func renderFlower(f *flower) *Pixmap {
	var sum colorSum
	for _, layer := range f.layers {
		for _, d := range layer {
			for _, p := range d.pixels {
				sum.add(p.color)
			}
		}
	}
	average, ok := sum.mean()
	if !ok {
		average = f.mosaic.average
	}
	background := backgroundColor(average)

	c := newCanvas(f.radius, background)
	for _, layer := range f.layers {
		for _, d := range layer {
			c.drawPixels(d.pixels)
			c.drawSkeleton(d.skeleton, outlineColor(d.average, background))
		}
	}

	c.drawDisc(float32(f.mosaic.radius)*1.03, f.mosaic.background)
	c.drawPixels(f.mosaic.drawing.pixels)
	c.drawSkeleton(f.mosaic.drawing.skeleton, outlineColor(f.mosaic.drawing.average, f.mosaic.background))
	return c.pix
}
