package bloom

import (
	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bloomgen/bloom/internal/area"
	"github.com/bloomgen/bloom/internal/curve"
)

// drawing is a colored shape ready for the renderer: the boundary skeleton
// plus the painted interior cells.
type drawing struct {
	skeleton []curve.GridPoint
	pixels   []pixel
	average  colorful.Color
}

// mosaic is the radial centerpiece of a flower, also usable standalone.
type mosaic struct {
	drawing    drawing
	average    colorful.Color
	background colorful.Color
	radius     uint16
}

// randomMosaic builds a mosaic frame from two independent low-frequency
// polar fragments anchored to the origin, then paints it with a random
// palette, gradient and noise. A nil result means the drawn parameters were
// degenerate; the caller decides whether to retry with another seed.
func randomMosaic(radius uint16, r *Rand) *mosaic {
	part1 := randomMosaicPart(r)
	part2 := randomMosaicPart(r)
	if len(part1) == 0 || len(part2) == 0 {
		return nil
	}

	skeleton := curve.Interpolate(curve.Merge(
		curve.Scale(part1, radius),
		curve.Scale(part2, radius),
		curve.SideWithOrigin,
	))
	filled := area.Extract(skeleton)
	if filled == nil {
		Logger().Debug("mosaic frame has no interior", "radius", radius)
		return nil
	}

	palette := randomPalette(r.IntRange(2, 6), randomColor(r), r)
	gradient := RandomGradient(palette, r)
	noise := RandomNoise(int64(r.Uint32()), r)

	pixels, average, ok := colorizeArea(filled, gradient, noise, r.Float32Range(0.1, 7.5))
	if !ok {
		return nil
	}

	return &mosaic{
		drawing:    drawing{skeleton: skeleton, pixels: pixels, average: average},
		average:    average,
		background: backgroundColor(average),
		radius:     radius,
	}
}

// randomMosaicPart samples one fragment of the frame: a very low k spreads
// a single lobe over many turns, and a coarse step turns it into a jagged
// radial outline. Steps shrink as k grows so the fragment keeps a similar
// point count.
func randomMosaicPart(r *Rand) []curve.Point {
	const (
		minK, maxK  = 0.0001, 0.01
		minStep     = 0.001
		maxStepLow  = 15.0
		maxStepHigh = 7.5
	)

	mirror := r.Bool()
	rotation := r.Float32Range(-math32.Pi, math32.Pi)
	k := r.Float32Range(minK, maxK)

	genStep := func(k, lo, hi float32) float32 {
		return r.Float32Range(minStep, normalize32(k, lo, hi, maxStepLow, maxStepHigh))
	}

	var (
		points []curve.Point
		err    error
	)
	if r.Bool() {
		points, err = curve.EvalSin(k, genStep(k, minK, maxK), rotation, mirror)
	} else {
		points, err = curve.EvalTan(k, genStep(k/2, minK/2, maxK/2), rotation, mirror)
	}
	if err != nil {
		Logger().Warn("mosaic part rejected", "err", err, "k", k)
		return nil
	}
	return points
}
