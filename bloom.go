package bloom

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrRadius reports a requested radius outside the legal range for the
// generator.
var ErrRadius = errors.New("bloom: radius out of range")

// randomSeedAttempts bounds how many seeds the random-seed generators try
// before giving up. Degenerate seeds are rare; hitting the budget means
// the radius itself is hostile.
const randomSeedAttempts = 32

// GenerateFlower generates a flower of the given radius from the given
// seed and rasterizes it. The same radius and seed always produce the same
// image. Radius must lie in [MinFlowerRadius, MaxRadius].
func GenerateFlower(radius uint16, seed uint64) (*Pixmap, error) {
	if err := checkRadius(radius, MinFlowerRadius); err != nil {
		return nil, err
	}
	f, err := randomFlower(radius, NewRand(seed))
	if err != nil {
		return nil, fmt.Errorf("seed %d: %w", seed, err)
	}
	return renderFlower(f), nil
}

// GenerateMosaic generates a standalone mosaic of the given radius from
// the given seed and rasterizes it. Radius must lie in [MinMosaicRadius,
// MaxRadius].
func GenerateMosaic(radius uint16, seed uint64) (*Pixmap, error) {
	if err := checkRadius(radius, MinMosaicRadius); err != nil {
		return nil, err
	}
	m := randomMosaic(radius, NewRand(seed))
	if m == nil {
		return nil, fmt.Errorf("seed %d: %w", seed, ErrDegenerate)
	}
	return renderMosaic(m), nil
}

// GenerateRandomFlower draws seeds until one produces a flower, and
// returns the image together with the seed that produced it.
func GenerateRandomFlower(radius uint16) (*Pixmap, uint64, error) {
	return retrySeeds(radius, GenerateFlower)
}

// GenerateRandomMosaic draws seeds until one produces a mosaic, and
// returns the image together with the seed that produced it.
func GenerateRandomMosaic(radius uint16) (*Pixmap, uint64, error) {
	return retrySeeds(radius, GenerateMosaic)
}

func retrySeeds(radius uint16, generate func(uint16, uint64) (*Pixmap, error)) (*Pixmap, uint64, error) {
	var err error
	for i := 0; i < randomSeedAttempts; i++ {
		seed := rand.Uint64()
		var p *Pixmap
		p, err = generate(radius, seed)
		if err == nil {
			return p, seed, nil
		}
		if !errors.Is(err, ErrDegenerate) && !errors.Is(err, ErrTotalOcclusion) {
			return nil, 0, err
		}
		Logger().Debug("degenerate seed, retrying", "seed", seed, "err", err)
	}
	return nil, 0, fmt.Errorf("no drawable seed in %d attempts: %w", randomSeedAttempts, err)
}

func checkRadius(radius, min uint16) error {
	if radius < min || radius > MaxRadius {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrRadius, radius, min, MaxRadius)
	}
	return nil
}
