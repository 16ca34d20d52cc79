package bloom

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette colors keep their lightness inside this band so neither pure black
// nor pure white ever enters a gradient.
const (
	minColorLight = 0.1
	maxColorLight = 0.9
)

// randomColor returns a random color with bounded lightness.
func randomColor(r *Rand) colorful.Color {
	return colorful.Hsl(
		r.Float64Range(0, 360),
		r.Float64Range(0, 1),
		r.Float64Range(minColorLight, maxColorLight),
	)
}

// hueShift rotates the hue of a color by delta degrees, keeping saturation
// and lightness.
func hueShift(c colorful.Color, delta float64) colorful.Color {
	h, s, l := c.Hsl()
	h = math.Mod(h+delta+360, 360)
	return colorful.Hsl(h, s, l)
}

// randomPalette grows a palette of the requested size around a primary
// color by repeatedly applying a random color-theory relation
// (complementary, split-complementary, analogous, triadic or tetradic) to a
// random palette member. The result is sorted by perceptual distance to the
// primary, nearest first, so gradients start close to the primary and drift
// away from it.
func randomPalette(size int, primary colorful.Color, r *Rand) []colorful.Color {
	if size <= 0 {
		return nil
	}

	type entry struct {
		color   colorful.Color
		h, s, l float64
	}
	mk := func(c colorful.Color) entry {
		h, s, l := c.Hsl()
		return entry{color: c, h: h, s: s, l: l}
	}

	palette := make([]entry, 0, size+3)
	palette = append(palette, mk(primary))

	contains := func(e entry) bool {
		for _, p := range palette {
			if p.h == e.h && p.s == e.s && p.l == e.l {
				return true
			}
		}
		return false
	}

	// Desaturated primaries can make every relation collapse onto the same
	// color; the attempt budget keeps that from looping forever.
	for attempts := 0; len(palette) < size && attempts < size*16; attempts++ {
		base := palette[r.IntN(len(palette))].color

		var split []colorful.Color
		switch r.IntN(5) {
		case 0:
			split = []colorful.Color{hueShift(base, 180)}
		case 1:
			split = []colorful.Color{hueShift(base, 150), hueShift(base, 210)}
		case 2:
			split = []colorful.Color{hueShift(base, -30), hueShift(base, 30)}
		case 3:
			split = []colorful.Color{hueShift(base, 120), hueShift(base, 240)}
		case 4:
			split = []colorful.Color{hueShift(base, 90), hueShift(base, 180), hueShift(base, 270)}
		}

		for _, c := range split {
			if len(palette) >= size {
				break
			}
			if e := mk(c); !contains(e) {
				palette = append(palette, e)
			}
		}
	}

	sort.SliceStable(palette, func(i, j int) bool {
		return palette[i].color.DistanceCIEDE2000(primary) <
			palette[j].color.DistanceCIEDE2000(primary)
	})

	colors := make([]colorful.Color, len(palette))
	for i, e := range palette {
		colors[i] = e.color
	}
	return colors
}

// colorSum accumulates colors for averaging.
type colorSum struct {
	r, g, b float64
	n       int
}

func (s *colorSum) add(c colorful.Color) {
	s.r += c.R
	s.g += c.G
	s.b += c.B
	s.n++
}

// mean returns the average of all added colors; ok is false when nothing
// was added.
func (s *colorSum) mean() (avg colorful.Color, ok bool) {
	if s.n == 0 {
		return colorful.Color{}, false
	}
	n := float64(s.n)
	return colorful.Color{R: s.r / n, G: s.g / n, B: s.b / n}, true
}

// backgroundColor derives a canvas color from the average shape color: a
// near-white of the same hue normally, a near-black one when the average is
// already very dark.
func backgroundColor(average colorful.Color) colorful.Color {
	h, s, l := average.Hsl()
	if l > 0.15 {
		return colorful.Hsl(h, s, 0.95)
	}
	return colorful.Hsl(h, s, 0.05)
}

// isDark reports whether a background color counts as dark for skeleton
// highlighting purposes.
func isDark(c colorful.Color) bool {
	_, _, l := c.Hsl()
	return l <= 0.15
}
