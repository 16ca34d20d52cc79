package bloom

import (
	"github.com/chewxy/math32"

	"github.com/bloomgen/bloom/internal/area"
	"github.com/bloomgen/bloom/internal/curve"
	"github.com/bloomgen/bloom/internal/scene"
)

const (
	// MinFlowerRadius and MaxRadius bound the generation entry points.
	// The grid is int16; keeping shapes within half its range leaves room
	// for arbitrary rotation and the blank border around the canvas.
	MinFlowerRadius = 16
	MinMosaicRadius = 8
	MaxRadius       = 32767/2 - 1
)

// petalOptions are the sampled parameters of a single petal draw.
type petalOptions struct {
	k      float32
	size   uint16
	mirror bool // true: bilateral lobe from a side and its mirror
	flip   bool // true: petal points toward -Y instead of +Y
}

// randomPetal builds the canonical (unrotated, non-interpolated) merged
// outline of one petal: two polar sides scaled to the target size and
// joined side-with-side. Each side independently picks the sin lobe or the
// half-k tan lobe. A nil result means the parameters produced no usable
// curve; the caller absorbs it and redraws.
func randomPetal(opt petalOptions, r *Rand) []curve.GridPoint {
	// Larger petals sample finer so scaling cannot tear the outline.
	step := normalize32(float32(opt.size), 0, MaxRadius, 0.001, 0.00001)
	rotation := float32(0)
	if opt.flip {
		rotation = math32.Pi
	}

	var mirror1, mirror2 bool
	if opt.mirror {
		mirror1, mirror2 = false, true
	} else {
		// Both halves on the same side: a thin asymmetric petal.
		b := r.Bool()
		mirror1, mirror2 = b, b
	}

	side := func(mirror bool) []curve.Point {
		var (
			points []curve.Point
			err    error
		)
		if r.Bool() {
			points, err = curve.EvalSin(opt.k, step, rotation, mirror)
		} else {
			points, err = curve.EvalTan(opt.k/2, step, rotation, mirror)
		}
		if err != nil {
			Logger().Warn("petal side rejected",
				"err", err, "k", opt.k, "step", step)
			return nil
		}
		return points
	}

	side1 := side(mirror1)
	side2 := side(mirror2)
	if len(side1) == 0 || len(side2) == 0 {
		return nil
	}

	return curve.Merge(
		curve.Scale(side1, opt.size),
		curve.Scale(side2, opt.size),
		curve.SideWithSide,
	)
}

// petalShape places a canonical outline at its arrangement angle and turns
// it into a shape: rotate, close the boundary, extract the interior. A nil
// result means the rotated outline enclosed no interior.
func petalShape(outline []curve.GridPoint, angle float32) *scene.Shape {
	points := outline
	if angle != 0 {
		points = curve.Rotate(points, angle)
	}
	skeleton := curve.Interpolate(points)

	filled := area.Extract(skeleton)
	if filled == nil {
		return nil
	}
	return &scene.Shape{Skeleton: skeleton, Area: filled}
}

// minAngularWidth keeps valvate placement advancing even for outlines so
// thin their measured extent collapses.
const minAngularWidth = 0.05

// angularWidth estimates the angular extent of a canonical petal outline
// from the polar angles of its leftmost and rightmost points.
func angularWidth(outline []curve.GridPoint) float32 {
	minPt, maxPt := outline[0], outline[0]
	for _, p := range outline[1:] {
		if p.X < minPt.X {
			minPt = p
		}
		if p.X > maxPt.X {
			maxPt = p
		}
	}

	a1 := math32.Atan2(float32(minPt.Y), float32(minPt.X))
	a2 := math32.Atan2(float32(maxPt.Y), float32(maxPt.X))
	width := math32.Abs(wrapAngle(a1 - a2))
	return math32.Max(width, minAngularWidth)
}

// wrapAngle normalizes an angle into (-pi, pi].
func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}
