package curve

import "github.com/chewxy/math32"

// MergeMode selects how two scaled curve fragments are joined into one
// closed discrete polyline.
type MergeMode int

const (
	// SideWithSide concatenates the first fragment forward and the second
	// reversed, producing a bilateral lobe whose mirrored halves meet at
	// both ends.
	SideWithSide MergeMode = iota
	// SideWithOrigin appends the coordinate origin after each fragment,
	// producing a closed shape that always passes through the center. Used
	// for radial frames built from unrelated fragments.
	SideWithOrigin
)

// Scale multiplies each curve point by size and rounds it to the nearest
// grid point. Consecutive points that collapse onto the same grid point are
// deduplicated. size must fit the positive int16 range.
func Scale(points []Point, size uint16) []GridPoint {
	if len(points) == 0 {
		return nil
	}

	factor := float32(size)
	scale := func(p Point) GridPoint {
		return GridPoint{
			X: int16(math32.Round(p.X * factor)),
			Y: int16(math32.Round(p.Y * factor)),
		}
	}

	scaled := make([]GridPoint, 0, len(points))
	scaled = append(scaled, scale(points[0]))
	for _, p := range points[1:] {
		sp := scale(p)
		if scaled[len(scaled)-1] != sp {
			scaled = append(scaled, sp)
		}
	}
	return scaled
}

// Merge joins two scaled fragments into a single closed polyline according
// to mode.
func Merge(a, b []GridPoint, mode MergeMode) []GridPoint {
	merged := make([]GridPoint, 0, len(a)+len(b)+2)
	switch mode {
	case SideWithSide:
		merged = append(merged, a...)
		for i := len(b) - 1; i >= 0; i-- {
			merged = append(merged, b[i])
		}
	case SideWithOrigin:
		merged = append(merged, a...)
		merged = append(merged, GridPoint{})
		merged = append(merged, b...)
		merged = append(merged, GridPoint{})
	}
	return merged
}

// Interpolate gap-fills consecutive points so that no step exceeds one grid
// unit in either axis. Intermediate points are inserted along the straight
// line between each pair at unit-step resolution, making the result an
// 8-connected boundary suitable for scanline area extraction.
func Interpolate(points []GridPoint) []GridPoint {
	if len(points) == 0 {
		return nil
	}

	result := make([]GridPoint, 0, len(points))
	result = append(result, points[0])

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		dx := float32(points[i].X - prev.X)
		dy := float32(points[i].Y - prev.Y)
		steps := math32.Max(math32.Abs(dx), math32.Abs(dy))

		for step := float32(1); step <= steps; step++ {
			progress := step / steps
			p := GridPoint{
				X: prev.X + int16(math32.Round(dx*progress)),
				Y: prev.Y + int16(math32.Round(dy*progress)),
			}
			if result[len(result)-1] != p {
				result = append(result, p)
			}
		}
	}
	return result
}

// Rotate turns every grid point about the origin by angle radians, rounding
// back onto the grid and deduplicating consecutive collapsed points. The
// result is generally no longer 8-connected; callers re-run Interpolate.
func Rotate(points []GridPoint, angle float32) []GridPoint {
	if len(points) == 0 {
		return nil
	}

	sin, cos := math32.Sincos(angle)
	rotate := func(p GridPoint) GridPoint {
		x := float32(p.X)
		y := float32(p.Y)
		return GridPoint{
			X: int16(math32.Round(x*cos - y*sin)),
			Y: int16(math32.Round(x*sin + y*cos)),
		}
	}

	rotated := make([]GridPoint, 0, len(points))
	rotated = append(rotated, rotate(points[0]))
	for _, p := range points[1:] {
		rp := rotate(p)
		if rotated[len(rotated)-1] != rp {
			rotated = append(rotated, rp)
		}
	}
	return rotated
}
