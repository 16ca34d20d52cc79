package area

import (
	"math"
	"testing"

	"github.com/bloomgen/bloom/internal/curve"
)

// diamond returns the closed boundary |x|+|y| = r walked counter-clockwise
// from (r, 0), ending back on the start point.
func diamond(r int16) []curve.GridPoint {
	var points []curve.GridPoint
	for x := r; x > -r; x-- {
		points = append(points, curve.GridPt(x, r-abs16(x)))
	}
	// Walk the lower half back to the start.
	for x := int16(-r); x < r; x++ {
		points = append(points, curve.GridPt(x, abs16(x)-r))
	}
	return append(points, curve.GridPt(r, 0))
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func TestExtract_Diamond(t *testing.T) {
	a := Extract(diamond(3))
	if a == nil {
		t.Fatal("Extract returned nil for a closed diamond")
	}

	if a.MinY() != -2 || a.MaxY() != 2 {
		t.Errorf("y-span [%d, %d], want [-2, 2]", a.MinY(), a.MaxY())
	}
	minX, maxX := a.Bounds()
	if minX != -2 || maxX != 2 {
		t.Errorf("x-bounds [%d, %d], want [-2, 2]", minX, maxX)
	}

	// Strict interior of |x|+|y| = 3, row by row.
	wantRows := map[int16]Range{
		-2: {From: 0, To: 0},
		-1: {From: -1, To: 1},
		0:  {From: -2, To: 2},
		1:  {From: -1, To: 1},
		2:  {From: 0, To: 0},
	}
	for y, want := range wantRows {
		line := a.LineAt(y)
		if len(line) != 1 || line[0] != want {
			t.Errorf("row %d = %v, want [%v]", y, line, want)
		}
	}

	if got := a.Coverage(); got != 13 {
		t.Errorf("Coverage() = %d, want 13", got)
	}
}

func TestExtract_TinyDiamond(t *testing.T) {
	// |x|+|y| = 1 encloses exactly the origin cell.
	a := Extract(diamond(1))
	if a == nil {
		t.Fatal("Extract returned nil")
	}
	if got := a.Coverage(); got != 1 {
		t.Errorf("Coverage() = %d, want 1", got)
	}
	if line := a.LineAt(0); len(line) != 1 || line[0] != (Range{From: 0, To: 0}) {
		t.Errorf("row 0 = %v, want [{0 0}]", line)
	}
}

func TestExtract_NoInterior(t *testing.T) {
	tests := []struct {
		name     string
		skeleton []curve.GridPoint
	}{
		{"empty", nil},
		{"single point", []curve.GridPoint{curve.GridPt(0, 0)}},
		{"flat segment", []curve.GridPoint{
			curve.GridPt(0, 0), curve.GridPt(1, 0), curve.GridPt(2, 0), curve.GridPt(3, 0),
		}},
		{"open diagonal", []curve.GridPoint{
			curve.GridPt(0, 0), curve.GridPt(1, 1), curve.GridPt(2, 2),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a := Extract(tt.skeleton); a != nil {
				t.Errorf("Extract = %v cells, want nil", a.Coverage())
			}
		})
	}
}

func TestExtract_ThickBoundaryTrimsInward(t *testing.T) {
	// A diamond with a doubled left wall on the middle row: the extra
	// boundary cell at (-2, 0) is absorbed as wall thickness, so the
	// interior starts one cell further in.
	skeleton := diamond(3)
	skeleton = append(skeleton, curve.GridPt(-2, 0))

	a := Extract(skeleton)
	if a == nil {
		t.Fatal("Extract returned nil")
	}
	line := a.LineAt(0)
	if len(line) != 1 || line[0] != (Range{From: -1, To: 2}) {
		t.Errorf("row 0 = %v, want [{-1 2}]", line)
	}
}

func TestExtract_LobeCoverage(t *testing.T) {
	// A full sin(2*theta) lobe encloses pi/8 in unit scale, so about
	// pi/8 * size^2 grid cells once scaled. Discretization and the strict
	// interior shave off roughly the boundary length.
	side, err := curve.EvalSin(2, 0.01, 0, false)
	if err != nil {
		t.Fatalf("EvalSin failed: %v", err)
	}
	mirror, err := curve.EvalSin(2, 0.01, 0, true)
	if err != nil {
		t.Fatalf("EvalSin(mirror) failed: %v", err)
	}

	const size = 100
	skeleton := curve.Interpolate(curve.Merge(
		curve.Scale(side, size),
		curve.Scale(mirror, size),
		curve.SideWithSide,
	))

	a := Extract(skeleton)
	if a == nil {
		t.Fatal("Extract returned nil for a closed lobe")
	}

	want := math.Pi / 8 * size * size
	got := float64(a.Coverage())
	if math.Abs(got-want) > 0.12*want {
		t.Errorf("Coverage() = %v, want within 12%% of %v", got, want)
	}

	// The lobe points up and stays within the scaled unit disc.
	if a.MinY() < -1 {
		t.Errorf("MinY = %d, want >= -1", a.MinY())
	}
	minX, maxX := a.Bounds()
	if minX < -size-1 || maxX > size+1 || a.MaxY() > size+1 {
		t.Errorf("bounds x [%d, %d], maxY %d exceed the size-%d disc", minX, maxX, a.MaxY(), size)
	}
}
