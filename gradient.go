package bloom

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient maps a position in its domain to a color. All gradients produced
// here have the domain [0, 1]; callers normalize their own value ranges
// onto it.
type Gradient interface {
	At(t float64) colorful.Color
	Domain() (min, max float64)
}

// ColorStop places a color at an offset inside the gradient domain.
type ColorStop struct {
	Offset float64
	Color  colorful.Color
}

// evenStops distributes colors evenly over [0, 1].
func evenStops(colors []colorful.Color) []ColorStop {
	stops := make([]ColorStop, len(colors))
	if len(colors) == 1 {
		stops[0] = ColorStop{Offset: 0, Color: colors[0]}
		return stops
	}
	for i, c := range colors {
		stops[i] = ColorStop{
			Offset: float64(i) / float64(len(colors)-1),
			Color:  c,
		}
	}
	return stops
}

// segment locates the stop segment containing t and returns its index and
// the local position inside it.
func segment(stops []ColorStop, t float64) (int, float64) {
	last := len(stops) - 2
	for i := 0; i <= last; i++ {
		if t <= stops[i+1].Offset || i == last {
			span := stops[i+1].Offset - stops[i].Offset
			if span <= 0 {
				return i, 0
			}
			return i, clamp01((t - stops[i].Offset) / span)
		}
	}
	return 0, 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// linearGradient blends neighboring stops linearly in RGB space.
type linearGradient struct {
	stops []ColorStop
}

func (g *linearGradient) Domain() (float64, float64) { return 0, 1 }

func (g *linearGradient) At(t float64) colorful.Color {
	t = clamp01(t)
	if len(g.stops) == 1 {
		return g.stops[0].Color
	}
	i, u := segment(g.stops, t)
	return g.stops[i].Color.BlendRgb(g.stops[i+1].Color, u).Clamped()
}

// splineGradient blends stops with a cubic spline per RGB channel. With
// catmullRom set it interpolates through every stop; otherwise it uses the
// uniform B-spline basis, which smooths across stops without necessarily
// passing through them.
type splineGradient struct {
	stops      []ColorStop
	catmullRom bool
}

func (g *splineGradient) Domain() (float64, float64) { return 0, 1 }

func (g *splineGradient) At(t float64) colorful.Color {
	t = clamp01(t)
	if len(g.stops) == 1 {
		return g.stops[0].Color
	}
	i, u := segment(g.stops, t)

	at := func(j int) colorful.Color {
		if j < 0 {
			j = 0
		}
		if j > len(g.stops)-1 {
			j = len(g.stops) - 1
		}
		return g.stops[j].Color
	}
	c0, c1, c2, c3 := at(i-1), at(i), at(i+1), at(i+2)

	blend := func(v0, v1, v2, v3 float64) float64 {
		if g.catmullRom {
			return 0.5 * (2*v1 +
				(-v0+v2)*u +
				(2*v0-5*v1+4*v2-v3)*u*u +
				(-v0+3*v1-3*v2+v3)*u*u*u)
		}
		omu := 1 - u
		return (omu*omu*omu*v0 +
			(3*u*u*u-6*u*u+4)*v1 +
			(-3*u*u*u+3*u*u+3*u+1)*v2 +
			u*u*u*v3) / 6
	}

	return colorful.Color{
		R: blend(c0.R, c1.R, c2.R, c3.R),
		G: blend(c0.G, c1.G, c2.G, c3.G),
		B: blend(c0.B, c1.B, c2.B, c3.B),
	}.Clamped()
}

// sharpGradient shows solid color bands with optional smooth transitions of
// relative width smoothness between neighboring bands.
type sharpGradient struct {
	colors     []colorful.Color
	smoothness float64
}

func (g *sharpGradient) Domain() (float64, float64) { return 0, 1 }

func (g *sharpGradient) At(t float64) colorful.Color {
	t = clamp01(t)
	n := len(g.colors)
	if n == 1 {
		return g.colors[0]
	}

	pos := t * float64(n)
	band := int(pos)
	if band >= n {
		band = n - 1
	}
	local := pos - float64(band)

	half := g.smoothness / 2
	switch {
	case half > 0 && local < half && band > 0:
		// Transition from the previous band, centered on the boundary.
		u := 0.5 + local/(2*half)
		return g.colors[band-1].BlendRgb(g.colors[band], u).Clamped()
	case half > 0 && local > 1-half && band < n-1:
		u := (local - (1 - half)) / (2 * half)
		return g.colors[band].BlendRgb(g.colors[band+1], u).Clamped()
	default:
		return g.colors[band]
	}
}

// RandomGradient builds a gradient over the palette, choosing uniformly
// between linear, basis-spline, Catmull-Rom and sharp banding. Sharp
// gradients use 2 to 32 bands sampled off the linear blend with a random
// smoothness up to 0.75.
func RandomGradient(palette []colorful.Color, r *Rand) Gradient {
	if len(palette) == 0 {
		return nil
	}

	stops := evenStops(palette)
	switch r.IntN(4) {
	case 0:
		return &linearGradient{stops: stops}
	case 1:
		return &splineGradient{stops: stops}
	case 2:
		return &splineGradient{stops: stops, catmullRom: true}
	default:
		base := &linearGradient{stops: stops}
		bands := r.IntRange(2, 32)
		colors := make([]colorful.Color, bands)
		for i := range colors {
			colors[i] = base.At(float64(i) / float64(bands-1))
		}
		return &sharpGradient{
			colors:     colors,
			smoothness: r.Float64Range(0, 0.75),
		}
	}
}
