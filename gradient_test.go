package bloom

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func approxColor(a, b colorful.Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps
}

func TestEvenStops(t *testing.T) {
	colors := []colorful.Color{
		{R: 1}, {G: 1}, {B: 1}, {R: 1, G: 1},
	}
	stops := evenStops(colors)

	wantOffsets := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	for i, s := range stops {
		if math.Abs(s.Offset-wantOffsets[i]) > 1e-9 {
			t.Errorf("stop %d offset = %v, want %v", i, s.Offset, wantOffsets[i])
		}
		if s.Color != colors[i] {
			t.Errorf("stop %d color = %v, want %v", i, s.Color, colors[i])
		}
	}

	single := evenStops(colors[:1])
	if len(single) != 1 || single[0].Offset != 0 {
		t.Errorf("single stop = %v, want offset 0", single)
	}
}

func TestLinearGradient(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	g := &linearGradient{stops: evenStops([]colorful.Color{red, blue})}

	tests := []struct {
		name string
		t    float64
		want colorful.Color
	}{
		{"start", 0, red},
		{"end", 1, blue},
		{"midpoint", 0.5, colorful.Color{R: 0.5, B: 0.5}},
		{"clamped below", -3, red},
		{"clamped above", 7, blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.t); !approxColor(got, tt.want, 1e-9) {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSplineGradient_CatmullRomInterpolatesStops(t *testing.T) {
	colors := []colorful.Color{
		{R: 1}, {G: 1}, {B: 1},
	}
	g := &splineGradient{stops: evenStops(colors), catmullRom: true}

	for i, c := range colors {
		offset := float64(i) / float64(len(colors)-1)
		if got := g.At(offset); !approxColor(got, c, 1e-9) {
			t.Errorf("At(%v) = %v, want stop color %v", offset, got, c)
		}
	}
}

func TestSplineGradient_BasisStaysInGamut(t *testing.T) {
	colors := []colorful.Color{
		{R: 1}, {G: 0.5, B: 0.5}, {B: 1}, {R: 0.2, G: 0.9},
	}
	g := &splineGradient{stops: evenStops(colors)}

	for i := 0; i <= 100; i++ {
		c := g.At(float64(i) / 100)
		if !c.IsValid() {
			t.Fatalf("At(%v) = %v outside RGB gamut", float64(i)/100, c)
		}
	}
}

func TestSharpGradient(t *testing.T) {
	colors := []colorful.Color{{R: 1}, {G: 1}, {B: 1}}

	t.Run("hard bands", func(t *testing.T) {
		g := &sharpGradient{colors: colors}
		cases := map[float64]colorful.Color{
			0.1: colors[0],
			0.5: colors[1],
			0.9: colors[2],
			1.0: colors[2],
		}
		for pos, want := range cases {
			if got := g.At(pos); got != want {
				t.Errorf("At(%v) = %v, want %v", pos, got, want)
			}
		}
	})

	t.Run("smoothed boundary", func(t *testing.T) {
		g := &sharpGradient{colors: colors, smoothness: 0.5}

		// The exact band boundary blends both neighbors evenly.
		got := g.At(1.0 / 3)
		want := colors[0].BlendRgb(colors[1], 0.5)
		if !approxColor(got, want, 1e-6) {
			t.Errorf("At(1/3) = %v, want even blend %v", got, want)
		}

		// Band centers stay solid.
		if got := g.At(0.5); got != colors[1] {
			t.Errorf("At(0.5) = %v, want %v", got, colors[1])
		}
	})
}

func TestRandomGradient(t *testing.T) {
	palette := []colorful.Color{{R: 1}, {G: 1}, {B: 1}}

	if g := RandomGradient(nil, NewRand(1)); g != nil {
		t.Errorf("RandomGradient(nil palette) = %v, want nil", g)
	}

	for seed := uint64(0); seed < 16; seed++ {
		g := RandomGradient(palette, NewRand(seed))
		if g == nil {
			t.Fatalf("seed %d: RandomGradient returned nil", seed)
		}
		lo, hi := g.Domain()
		if lo != 0 || hi != 1 {
			t.Fatalf("seed %d: Domain() = [%v, %v], want [0, 1]", seed, lo, hi)
		}
		for i := 0; i <= 20; i++ {
			c := g.At(float64(i) / 20)
			if !c.IsValid() {
				t.Fatalf("seed %d: At(%v) = %v outside RGB gamut", seed, float64(i)/20, c)
			}
		}
	}
}
