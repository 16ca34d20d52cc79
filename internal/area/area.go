// Package area implements scanline run-length encoded regions and the
// row-wise interval algebra used for intersection testing, coverage counting
// and occlusion culling between overlapping regions.
//
// A region is a dense array of lines over a contiguous y-span; each line is
// an ordered list of disjoint, non-adjacent x-ranges. An absent region (zero
// coverage) is represented as a nil *Area, never as an Area whose lines are
// all empty.
package area

import "errors"

// ErrTranslateOverflow reports that a translation would move a region
// outside the int16 grid.
var ErrTranslateOverflow = errors.New("area: translation overflows grid coordinates")

// Range is a closed integer interval [From, To] on one scanline.
// From <= To always holds.
type Range struct {
	From, To int16
}

// Width returns the number of covered cells.
func (r Range) Width() int {
	return int(r.To) - int(r.From) + 1
}

// Line holds the covered x-ranges of one scanline row, sorted ascending.
// Consecutive ranges never overlap and never touch: ranges[i].To is at least
// two below ranges[i+1].From. Touching ranges must already be merged.
type Line []Range

// Coverage returns the number of covered cells on the line.
func (l Line) Coverage() int {
	total := 0
	for _, r := range l {
		total += r.Width()
	}
	return total
}

// Bounds returns the smallest and largest covered x-coordinate.
// ok is false for an empty line.
func (l Line) Bounds() (minX, maxX int16, ok bool) {
	if len(l) == 0 {
		return 0, 0, false
	}
	return l[0].From, l[len(l)-1].To, true
}

// intersects reports whether the bounding x-extents of the two lines
// overlap. This is a cheap pre-filter, not an exact range test.
func (l Line) intersects(other Line) bool {
	min1, max1, ok := l.Bounds()
	if !ok {
		return false
	}
	min2, max2, ok := other.Bounds()
	if !ok {
		return false
	}
	return max1 >= min2 && max2 >= min1
}

// Area is a filled region encoded as one Line per row over the contiguous
// y-span [minY, minY+len(lines)-1]. The first and last line are always
// non-empty (the region is trimmed).
type Area struct {
	lines []Line
	minY  int16
}

// MinY returns the first (lowest) row of the region.
func (a *Area) MinY() int16 {
	return a.minY
}

// MaxY returns the last (highest) row of the region.
func (a *Area) MaxY() int16 {
	return a.minY + int16(len(a.lines)-1)
}

// LineAt returns the line at row y, or nil when y lies outside the span.
func (a *Area) LineAt(y int16) Line {
	if y < a.minY || y > a.MaxY() {
		return nil
	}
	return a.lines[y-a.minY]
}

// Bounds returns the smallest and largest covered x-coordinate over all
// rows.
func (a *Area) Bounds() (minX, maxX int16) {
	first := true
	for _, line := range a.lines {
		lo, hi, ok := line.Bounds()
		if !ok {
			continue
		}
		if first || lo < minX {
			minX = lo
		}
		if first || hi > maxX {
			maxX = hi
		}
		first = false
	}
	return minX, maxX
}

// Coverage returns the total number of covered cells in the region.
func (a *Area) Coverage() int {
	total := 0
	for _, line := range a.lines {
		total += line.Coverage()
	}
	return total
}

// Intersects reports whether the two regions may overlap: their y-spans
// share rows and on at least one shared row the bounding x-extents overlap.
// It is a cheap pre-filter used to skip full subtraction when regions are
// clearly disjoint, not an exact interval test.
func (a *Area) Intersects(other *Area) bool {
	if a == nil || other == nil {
		return false
	}
	if a.minY > other.MaxY() || other.minY > a.MaxY() {
		return false
	}

	fromY := max(a.minY, other.minY)
	toY := min(a.MaxY(), other.MaxY())
	for y := fromY; ; y++ {
		if a.LineAt(y).intersects(other.LineAt(y)) {
			return true
		}
		if y == toY {
			return false
		}
	}
}

// Translate shifts the whole region by (dx, dy) in place. It fails without
// modifying the region when any coordinate would leave the int16 grid.
func (a *Area) Translate(dx, dy int16) error {
	minX, maxX := a.Bounds()
	if outOfGrid(int(a.minY)+int(dy)) || outOfGrid(int(a.MaxY())+int(dy)) ||
		outOfGrid(int(minX)+int(dx)) || outOfGrid(int(maxX)+int(dx)) {
		return ErrTranslateOverflow
	}

	a.minY += dy
	for _, line := range a.lines {
		for i := range line {
			line[i].From += dx
			line[i].To += dx
		}
	}
	return nil
}

func outOfGrid(v int) bool {
	return v < -32768 || v > 32767
}

// trim drops leading and trailing all-empty rows. It returns nil when no
// non-empty row survives.
func (a *Area) trim() *Area {
	start := 0
	for start < len(a.lines) && len(a.lines[start]) == 0 {
		start++
	}
	if start == len(a.lines) {
		return nil
	}
	end := len(a.lines) - 1
	for len(a.lines[end]) == 0 {
		end--
	}

	return &Area{
		lines: a.lines[start : end+1],
		minY:  a.minY + int16(start),
	}
}
