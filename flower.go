package bloom

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bloomgen/bloom/internal/curve"
	"github.com/bloomgen/bloom/internal/scene"
)

// ErrTotalOcclusion reports that every shape of every layer was culled
// away: the sampled parameters produced nothing visible at all. Unlike a
// single degenerate shape this is not absorbed; there is nothing to render.
var ErrTotalOcclusion = errors.New("bloom: all shapes fully occluded")

// ErrDegenerate reports that generation produced no drawable content for
// this seed. Callers recover by retrying with a different seed.
var ErrDegenerate = errors.New("bloom: parameters produced no drawable content")

// flower is a fully generated and resolved flower model: colored petal
// layers back-to-front plus the centerpiece mosaic.
type flower struct {
	mosaic *mosaic
	layers [][]drawing
	radius uint16
}

// randomValue is a sampled parameter with a jitter budget: derived draws
// stay within maxDelta of value, so one flower keeps a family resemblance
// across its layers and petals.
type randomValue struct {
	value, maxDelta float32
}

func randomValueIn(min, max float32, r *Rand) randomValue {
	v := r.Float32Range(min, max)
	return randomValue{
		value:    v,
		maxDelta: r.Float32Range(0, math32.Min(v-min, max-v)),
	}
}

// get draws a concrete value within the jitter budget.
func (v randomValue) get(r *Rand) float32 {
	return v.value + r.Float32Range(-v.maxDelta, v.maxDelta)
}

// within derives a narrower randomValue inside this one's budget.
func (v randomValue) within(r *Rand) randomValue {
	nv := r.Float32Range(v.value-v.maxDelta, v.value+v.maxDelta)
	return randomValue{
		value:    nv,
		maxDelta: r.Float32Range(0, v.maxDelta-math32.Abs(nv-v.value)),
	}
}

// orElse returns the locked shared value when present, otherwise a fresh
// per-layer draw.
func orElse[T any](locked *T, draw func() T) T {
	if locked != nil {
		return *locked
	}
	return draw()
}

// arrangement places the petals of one layer around the origin.
type arrangement struct {
	radial       bool // false: valvate (petals packed edge to edge)
	initialAngle float32
	angleJitter  float32
	petalCount   int // radial only
}

// layerOptions are the per-layer generation parameters. Gradient and noise
// may be locked flower-wide; otherwise each petal draws its own from the
// flower palette.
type layerOptions struct {
	palette    []colorful.Color
	gradient   *Gradient
	noise      **Noise
	mirror     bool
	flip       bool
	arrange    arrangement
	k          randomValue
	size       randomValue
	noiseScale randomValue
}

// petalDraw carries one petal through generation: its shape for occlusion
// resolution plus the coloring parameters applied to whatever area
// survives.
type petalDraw struct {
	shape      *scene.Shape
	gradient   Gradient
	noise      *Noise
	noiseScale float32
}

const (
	kMin, kMax = 1.1, 6.0
	maxLayers  = 12
	// petalDrawBudget bounds retries for a single petal slot before the
	// slot is silently skipped.
	petalDrawBudget = 8
	// maxValvatePetals stops edge-to-edge packing from degenerating when
	// every candidate petal measures razor thin.
	maxValvatePetals = 128
)

// randomFlower generates a complete flower: the centerpiece mosaic from a
// restored random stream, 1..12 petal layers ordered back-to-front, the
// occlusion pass over all of them, and finally colors for every visible
// region.
func randomFlower(radius uint16, r *Rand) (*flower, error) {
	// The mosaic consumes a stream rewound to the seed start so that the
	// same centerpiece can be regenerated independently of the flower.
	mosaicLo := uint16(max(MinMosaicRadius, int(math32.Round(float32(radius)*0.03))))
	mosaicHi := max(uint16(math32.Round(float32(radius)*0.40)), mosaicLo)
	m := randomMosaic(r.Uint16Range(mosaicLo, mosaicHi), r.Restore())
	if m == nil {
		return nil, fmt.Errorf("mosaic generation: %w", ErrDegenerate)
	}

	layersCount := r.IntRange(1, maxLayers)
	palette := randomPalette(r.IntRange(2, 6), m.average, r)

	sharedGradient := maybe(r, func(r *Rand) Gradient { return RandomGradient(palette, r) })
	sharedNoise := maybe(r, func(r *Rand) *Noise { return RandomNoise(int64(r.Uint32()), r) })
	sharedRadial := maybe(r, (*Rand).Bool)
	sharedMirror := maybe(r, (*Rand).Bool)
	sharedFlip := maybe(r, (*Rand).Bool)

	k := randomValueIn(kMin, kMax, r)
	noiseScale := randomValueIn(0.1, 7.5, r)
	minPetalLength := r.Uint16Range(MinMosaicRadius, radius)

	var (
		sceneLayers []scene.Layer
		draws       [][]*petalDraw
	)
	for i := layersCount - 1; i >= 0; i-- {
		opts := layerOptions{
			palette:    palette,
			gradient:   sharedGradient,
			noise:      sharedNoise,
			mirror:     orElse(sharedMirror, r.Bool),
			flip:       orElse(sharedFlip, r.Bool),
			arrange:    randomArrangement(sharedRadial, k.value, r),
			k:          k.within(r),
			noiseScale: noiseScale.within(r),
			size:       layerSize(i, layersCount, minPetalLength, radius, r),
		}

		layer := randomLayer(opts, r)
		if len(layer) == 0 {
			Logger().Debug("layer skipped, no usable petals", "layer", i)
			continue
		}

		sl := make(scene.Layer, len(layer))
		for j, d := range layer {
			sl[j] = d.shape
		}
		sceneLayers = append(sceneLayers, sl)
		draws = append(draws, layer)
	}
	if len(draws) == 0 {
		return nil, fmt.Errorf("petal generation: %w", ErrDegenerate)
	}

	if _, err := scene.Resolve(sceneLayers); err != nil {
		if errors.Is(err, scene.ErrTotalOcclusion) {
			return nil, ErrTotalOcclusion
		}
		return nil, err
	}

	layers := colorizeLayers(draws, m.average, r)
	if len(layers) == 0 {
		return nil, fmt.Errorf("petal coloring: %w", ErrDegenerate)
	}

	Logger().Debug("flower generated",
		"radius", radius, "layers", len(layers), "mosaicRadius", m.radius)

	return &flower{mosaic: m, layers: layers, radius: radius}, nil
}

// layerSize interpolates a layer's petal length between the flower minimum
// (innermost layer) and the full radius (outermost), with a jitter budget
// that cannot cross into neighboring layers.
func layerSize(i, count int, minLength, radius uint16, r *Rand) randomValue {
	if count == 1 {
		return randomValue{value: float32(radius)}
	}
	value := normalize32(float32(i), 0, float32(count-1), float32(minLength), float32(radius))
	maxDelta := math32.Min(
		(float32(radius)-float32(minLength))/float32(count*2),
		math32.Min(value-float32(minLength), float32(radius)-value),
	)
	return randomValue{value: value, maxDelta: r.Float32Range(0, math32.Max(maxDelta, 0))}
}

func randomArrangement(sharedRadial *bool, k float32, r *Rand) arrangement {
	a := arrangement{
		initialAngle: r.Float32Range(-math32.Pi, math32.Pi),
		angleJitter:  r.Float32Range(0, normalize32(k, kMin, kMax, math32.Pi/8, math32.Pi/4)),
		radial:       orElse(sharedRadial, r.Bool),
	}
	if a.radial {
		maxCount := normalize32(k, kMin, kMax, 10, 40)
		a.petalCount = max(1, int(r.Float32Range(maxCount/3.5, maxCount)))
	}
	return a
}

// randomLayer builds the petal shapes of one layer and assigns their draw
// ranks. Degenerate petal draws are retried within a budget and skipped
// silently when the budget runs out.
func randomLayer(opts layerOptions, r *Rand) []*petalDraw {
	newOutline := func() []curve.GridPoint {
		for try := 0; try < petalDrawBudget; try++ {
			outline := randomPetal(petalOptions{
				k:      opts.k.get(r),
				size:   sizeToGrid(opts.size.get(r)),
				mirror: opts.mirror,
				flip:   opts.flip,
			}, r)
			if outline != nil {
				return outline
			}
		}
		return nil
	}

	finish := func(outline []curve.GridPoint, angle float32) *petalDraw {
		shape := petalShape(outline, wrapAngle(angle))
		if shape == nil {
			return nil
		}
		return &petalDraw{
			shape:      shape,
			gradient:   orElse(opts.gradient, func() Gradient { return RandomGradient(opts.palette, r) }),
			noise:      orElse(opts.noise, func() *Noise { return RandomNoise(int64(r.Uint32()), r) }),
			noiseScale: opts.noiseScale.get(r),
		}
	}

	var petals []*petalDraw
	if opts.arrange.radial {
		for i := 0; i < opts.arrange.petalCount; i++ {
			outline := newOutline()
			if outline == nil {
				continue
			}
			angle := opts.arrange.initialAngle +
				float32(i)/float32(opts.arrange.petalCount)*2*math32.Pi +
				r.Float32Range(-opts.arrange.angleJitter, opts.arrange.angleJitter)
			if p := finish(outline, angle); p != nil {
				petals = append(petals, p)
			}
		}
	} else {
		petals = valvateLayer(opts, newOutline, finish, r)
	}

	// Random draw order within the layer; rank is the secondary occlusion
	// key after the layer index.
	r.Shuffle(len(petals), func(i, j int) {
		petals[i], petals[j] = petals[j], petals[i]
	})
	for rank, p := range petals {
		p.shape.Rank = rank
	}
	return petals
}

// valvateLayer packs petals edge to edge around the full circle: outlines
// are drawn until their measured angular widths sum to a full turn, then
// the widths are rescaled so the ring closes exactly and each petal is
// placed at the center of its slot.
func valvateLayer(opts layerOptions, newOutline func() []curve.GridPoint, finish func([]curve.GridPoint, float32) *petalDraw, r *Rand) []*petalDraw {
	type slot struct {
		outline []curve.GridPoint
		width   float32
	}

	var (
		slots []slot
		total float32
	)
	for total < 2*math32.Pi && len(slots) < maxValvatePetals {
		outline := newOutline()
		if outline == nil {
			break
		}
		w := angularWidth(outline)
		slots = append(slots, slot{outline: outline, width: w})
		total += w
	}
	if len(slots) == 0 {
		return nil
	}

	level := 2 * math32.Pi / total
	var petals []*petalDraw
	cursor := float32(0)
	for _, s := range slots {
		center := opts.arrange.initialAngle + (cursor+s.width/2)*level +
			r.Float32Range(-opts.arrange.angleJitter, opts.arrange.angleJitter)
		cursor += s.width

		if p := finish(s.outline, center); p != nil {
			petals = append(petals, p)
		}
	}
	return petals
}

// sizeToGrid clamps a sampled petal length onto the legal grid range.
func sizeToGrid(size float32) uint16 {
	rounded := math32.Round(size)
	if rounded < 1 {
		return 1
	}
	if rounded > MaxRadius {
		return MaxRadius
	}
	return uint16(rounded)
}

// colorizeLayers paints every petal area that survived occlusion and
// applies the per-layer lightness drift derived from the mosaic's average
// color: layers further to the front drift progressively lighter over a
// light centerpiece and darker over a dark one.
func colorizeLayers(draws [][]*petalDraw, mosaicAverage colorful.Color, r *Rand) [][]drawing {
	_, _, light := mosaicAverage.Hsl()
	change := r.Float32Range(0.01, math32.Max(0.011,
		normalize32(0.5-math32.Abs(0.5-float32(light)), 0, 0.5, 0.01, 0.04)))
	if light < 0.5 {
		change = -change
	}

	var layers [][]drawing
	culled := 0
	for i, layer := range draws {
		var drawings []drawing
		for _, p := range layer {
			if p.shape.Area == nil {
				culled++
				continue
			}
			pixels, average, ok := colorizeArea(p.shape.Area, p.gradient, p.noise, p.noiseScale)
			if !ok {
				continue
			}
			if i > 0 && change != 0 {
				shiftLightness(pixels, change*float32(i))
			}
			drawings = append(drawings, drawing{skeleton: p.shape.Skeleton, pixels: pixels, average: average})
		}
		if len(drawings) > 0 {
			layers = append(layers, drawings)
		}
	}

	if culled > 0 {
		Logger().Debug("petals culled by occlusion", "count", culled)
	}
	return layers
}

// shiftLightness moves every pixel's lightness by delta, clamped to the
// palette lightness band.
func shiftLightness(pixels []pixel, delta float32) {
	for i := range pixels {
		h, s, l := pixels[i].color.Hsl()
		l += float64(delta)
		if l < minColorLight {
			l = minColorLight
		}
		if l > maxColorLight {
			l = maxColorLight
		}
		pixels[i].color = colorful.Hsl(h, s, l)
	}
}
