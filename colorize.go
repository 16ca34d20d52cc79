package bloom

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bloomgen/bloom/internal/area"
	"github.com/bloomgen/bloom/internal/curve"
)

// pixel pairs a grid point with the color painted there.
type pixel struct {
	at    curve.GridPoint
	color colorful.Color
}

// normalize32 rescales value from [oldMin, oldMax] onto [newMin, newMax].
func normalize32(value, oldMin, oldMax, newMin, newMax float32) float32 {
	return newMin + (value-oldMin)*(newMax-newMin)/(oldMax-oldMin)
}

// normalize64 rescales value from [oldMin, oldMax] onto [newMin, newMax].
func normalize64(value, oldMin, oldMax, newMin, newMax float64) float64 {
	return newMin + (value-oldMin)*(newMax-newMin)/(oldMax-oldMin)
}

// colorizeArea paints every covered cell of a region. The region's bounding
// box is mapped onto the noise square [-scale, scale]^2, the noise is
// sampled per cell, and the observed noise range is normalized onto the
// gradient domain to pick each cell's color. When the noise is uniform the
// whole region takes the gradient's domain-start color.
//
// It returns the painted pixels and their average color; ok is false for a
// nil or empty region.
func colorizeArea(a *area.Area, grad Gradient, n *Noise, noiseScale float32) (pixels []pixel, avg colorful.Color, ok bool) {
	if a == nil || grad == nil || n == nil {
		return nil, colorful.Color{}, false
	}
	total := a.Coverage()
	if total == 0 {
		return nil, colorful.Color{}, false
	}

	minX, maxX := a.Bounds()
	minY := int(a.MinY())
	height := int(a.MaxY()) - minY + 1
	width := int(maxX) - int(minX) + 1

	scale := math.Abs(float64(noiseScale))
	extent := scale * 2
	xStep := extent / float64(width)
	yStep := extent / float64(height)

	type sample struct {
		at curve.GridPoint
		v  float64
	}
	samples := make([]sample, 0, total)
	minV, maxV := math.Inf(1), math.Inf(-1)

	for row := 0; row < height; row++ {
		y := minY + row
		noiseY := -scale + yStep*float64(row)
		for _, rg := range a.LineAt(int16(y)) {
			for x := int(rg.From); x <= int(rg.To); x++ {
				noiseX := -scale + xStep*float64(x-int(minX))
				v := n.At(noiseX, noiseY)
				minV = math.Min(minV, v)
				maxV = math.Max(maxV, v)
				samples = append(samples, sample{
					at: curve.GridPt(int16(x), int16(y)),
					v:  v,
				})
			}
		}
	}

	domainMin, domainMax := grad.Domain()
	var sum colorSum
	pixels = make([]pixel, 0, total)

	if minV == maxV || domainMin == domainMax {
		c := grad.At(domainMin)
		for _, s := range samples {
			pixels = append(pixels, pixel{at: s.at, color: c})
			sum.add(c)
		}
	} else {
		for _, s := range samples {
			t := normalize64(s.v, minV, maxV, domainMin, domainMax)
			c := grad.At(t)
			pixels = append(pixels, pixel{at: s.at, color: c})
			sum.add(c)
		}
	}

	avg, _ = sum.mean()
	return pixels, avg, true
}
