package area

import (
	"slices"

	"github.com/bloomgen/bloom/internal/curve"
)

// Extract converts a closed 8-connected skeleton into its filled interior
// region. It returns nil when the skeleton encloses no interior (too short,
// too thin, or self-canceling); callers treat that as "shape unusable".
//
// The algorithm detects directional anchors: walking the skeleton, every
// sign change of the y-delta marks a boundary crossing on that row. A
// direction reversal contributes two coincident crossings, so the previous
// anchor is duplicated to preserve even/odd parity. Sorted anchors are then
// paired by the even/odd crossing rule and each candidate span is trimmed
// inward past contiguous boundary thickness before its strict interior is
// emitted.
func Extract(skeleton []curve.GridPoint) *Area {
	if len(skeleton) <= 1 {
		return nil
	}

	minY, maxY := skeleton[0].Y, skeleton[0].Y
	for _, p := range skeleton[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	height := int(maxY) - int(minY) + 1

	anchors := make([][]int16, height)
	{
		lastDir := int16(0)
		for i := 1; i < len(skeleton); i++ {
			p := skeleton[i]
			prev := skeleton[i-1]
			dir := p.Y - prev.Y
			if dir == 0 {
				continue
			}

			if lastDir != dir {
				// Reversal: the turning point crosses its row twice.
				row := int(prev.Y) - int(minY)
				if n := len(anchors[row]); n > 0 {
					anchors[row] = append(anchors[row], anchors[row][n-1])
				}
				lastDir = dir
			}

			row := int(p.Y) - int(minY)
			anchors[row] = append(anchors[row], p.X)
		}
	}

	// The origin row closes origin-anchored shapes: an odd crossing count
	// there is completed by the center point itself.
	if minY <= 0 && maxY >= 0 {
		row := -int(minY)
		if len(anchors[row])%2 != 0 {
			anchors[row] = append(anchors[row], 0)
		}
	}

	for _, a := range anchors {
		slices.Sort(a)
	}

	// Per-row sorted boundary x-coordinates, used to absorb boundary
	// thickness when trimming candidate spans inward.
	boundary := make([][]int16, height)
	for _, p := range skeleton {
		row := int(p.Y) - int(minY)
		boundary[row] = append(boundary[row], p.X)
	}
	for _, b := range boundary {
		slices.Sort(b)
	}

	lines := make([]Line, height)

	// pushRange trims the candidate span [x1, x2] inward and emits its
	// strict interior onto the row. It returns the boundary index of x2 so
	// the next candidate on the same row can resume the search there, or
	// -1 when nothing was found.
	pushRange := func(x1, x2 int16, row, offset int) int {
		if int(x2)-int(x1) <= 1 {
			return -1
		}

		bl := boundary[row]
		x1Index := -1
		for i := offset; i < len(bl); i++ {
			if bl[i] == x1 {
				x1Index = i
				break
			}
		}
		if x1Index < 0 {
			return -1
		}
		x2Index := -1
		for i := x1Index; i < len(bl); i++ {
			if bl[i] == x2 {
				x2Index = i
				break
			}
		}
		if x2Index < 0 {
			return -1
		}

		// Walk inward over contiguous boundary cells from both ends.
		actualX1 := x1
		for i := x1Index + 1; i < x2Index; i++ {
			if bl[i]-actualX1 > 1 {
				break
			}
			actualX1 = bl[i]
		}
		actualX2 := x2
		for i := x2Index - 1; i > x1Index; i-- {
			if actualX2-bl[i] > 1 {
				break
			}
			actualX2 = bl[i]
		}

		if int(actualX2)-int(actualX1) > 1 {
			lines[row] = append(lines[row], Range{From: actualX1 + 1, To: actualX2 - 1})
		}
		return x2Index
	}

	for row, rowAnchors := range anchors {
		if len(rowAnchors) <= 1 {
			continue
		}

		offset := 0
		for i := 0; i+1 < len(rowAnchors); i += 2 {
			if last := pushRange(rowAnchors[i], rowAnchors[i+1], row, offset); last >= 0 {
				offset = last
			}
		}
		if len(rowAnchors)%2 != 0 {
			// A single dangling crossing: re-pair the last two anchors.
			n := len(rowAnchors)
			pushRange(rowAnchors[n-2], rowAnchors[n-1], row, 0)
		}
	}

	return (&Area{lines: lines, minY: minY}).trim()
}
