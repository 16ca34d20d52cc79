// Package bloom procedurally generates flower images from a seed.
//
// # Overview
//
// bloom grows closed silhouettes from parametric polar curves, rasterizes
// them on an exact integer grid, and layers them into a flower: petal
// rings arranged around a generated mosaic centerpiece. Every image is a
// pure function of its radius and seed.
//
// # Quick Start
//
//	import "github.com/bloomgen/bloom"
//
//	// Generate a flower 512 pixels in radius from a fixed seed
//	img, err := bloom.GenerateFlower(512, 42)
//	if err != nil {
//		// a few seeds are degenerate; try another
//	}
//	img.SavePNG("flower.png")
//
//	// Or let the generator pick a seed that works
//	img, seed, err := bloom.GenerateRandomFlower(512)
//
// # Pipeline
//
// The generator is organized into:
//   - Public API: GenerateFlower, GenerateMosaic and their random-seed
//     variants, plus Pixmap for the rasterized result
//   - internal/curve: polar curve sampling and skeleton building on the
//     integer grid
//   - internal/area: scanline region extraction and interval algebra
//   - internal/scene: occlusion resolution across layered shapes
//
// # Coordinate System
//
// Generation happens on a y-up grid centered on the origin; Pixmap uses
// standard image coordinates with the origin at the top-left.
package bloom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
