// Package scene resolves mutual occlusion between stacked shapes. Shapes are
// grouped into ordered layers drawn back-to-front: the layer index is the
// primary draw-priority key and a per-layer rank is the secondary key. The
// resolver shrinks every shape's region to its visible part and drops shapes
// (and layers) hidden completely.
package scene

import (
	"errors"

	"github.com/bloomgen/bloom/internal/area"
	"github.com/bloomgen/bloom/internal/curve"
)

// ErrTotalOcclusion reports that occlusion resolution culled away every
// shape in every layer, leaving nothing to render. It signals a generation
// parameterization with no visible content and is not recoverable.
var ErrTotalOcclusion = errors.New("scene: all layers fully occluded")

// Shape pairs a skeleton with its filled region. The Area is mutated in
// place by Resolve (shrinking, never growing) and set to nil when the shape
// is fully hidden.
type Shape struct {
	Skeleton []curve.GridPoint
	Area     *area.Area
	Rank     int // draw order within the layer; higher ranks draw in front
}

// Translate shifts the shape's skeleton and region by (dx, dy).
func (s *Shape) Translate(dx, dy int16) error {
	if s.Area != nil {
		if err := s.Area.Translate(dx, dy); err != nil {
			return err
		}
	}
	for i := range s.Skeleton {
		s.Skeleton[i].X += dx
		s.Skeleton[i].Y += dy
	}
	return nil
}

// Layer is an ordered collection of shapes sharing the same nominal
// size and arrangement parameters.
type Layer []*Shape

// Resolve computes the visible region of every shape under the painter's
// order: a shape is occluded by every shape of a later layer and by
// same-layer shapes of higher rank. Occluders are subtracted sequentially
// from the shrinking region; a shape whose region empties is dropped at
// once, and layers left without shapes are dropped afterwards. Resolve
// returns ErrTotalOcclusion when nothing at all survives.
func Resolve(layers []Layer) ([]Layer, error) {
	resolved := make([]Layer, 0, len(layers))

	for i, layer := range layers {
		kept := make(Layer, 0, len(layer))

		for _, s := range layer {
			if s.Area == nil {
				continue
			}
			cullFront(s, layer, i, layers)
			if s.Area != nil {
				kept = append(kept, s)
			}
		}

		if len(kept) > 0 {
			resolved = append(resolved, kept)
		}
	}

	if len(resolved) == 0 {
		return nil, ErrTotalOcclusion
	}
	return resolved, nil
}

// cullFront subtracts every shape in front of s from s.Area, stopping as
// soon as the region empties.
func cullFront(s *Shape, own Layer, ownIndex int, layers []Layer) {
	for _, front := range own {
		if front.Rank <= s.Rank {
			continue
		}
		if !subtractFrom(s, front) {
			return
		}
	}
	for _, layer := range layers[ownIndex+1:] {
		for _, front := range layer {
			if !subtractFrom(s, front) {
				return
			}
		}
	}
}

// subtractFrom removes front's region from s and reports whether s is still
// visible. Clearly disjoint regions skip the full subtraction.
func subtractFrom(s, front *Shape) bool {
	if front.Area == nil || !s.Area.Intersects(front.Area) {
		return true
	}
	s.Area = area.Cull(s.Area, front.Area)
	return s.Area != nil
}
