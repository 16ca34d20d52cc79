package curve

import (
	"errors"
	"math"

	"github.com/chewxy/math32"
)

// ErrCapacityOverflow reports that the computed sample count of a polar curve
// does not fit the platform's int. It guards against degenerate tiny steps
// producing unbounded sequences; the parameter combination is unusable.
var ErrCapacityOverflow = errors.New("curve: polar sample count overflows int")

// TrigFunc is a single-argument trigonometric function, such as sin or its
// inverse.
type TrigFunc func(float32) float32

// Eval samples the polar function r = fn(k*theta) into an ordered curve
// spanning one lobe. inv must be the inverse of fn: the sampling domain is
// bounded by inv(1)/k, the angle at which the radius first reaches magnitude
// one. Samples are taken at theta = i*step for i = 0, 1, ... while theta
// stays below the bound.
//
// After sampling, the curve is rotated so its last point (the lobe tip) lies
// on the +Y reference axis offset by rotation. If mirror is set, every X
// coordinate is negated afterwards; a curve and its mirror therefore share
// both endpoints on the reference axis and close into a bilateral lobe.
//
// An empty result is a valid outcome and means no curve can be produced with
// these parameters. k and step must be positive.
func Eval(k, step, rotation float32, mirror bool, fn, inv TrigFunc) ([]Point, error) {
	bound := inv(1.0) / k
	samples := float64(bound / step)
	if math.IsNaN(samples) || samples < 1 {
		return nil, nil
	}
	if samples >= math.MaxInt {
		return nil, ErrCapacityOverflow
	}

	n := int(samples)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		theta := float32(i) * step
		points = append(points, fromPolar(fn(theta*k), theta))
	}

	// Align the lobe tip with the reference axis.
	tip := points[n-1].Angle()
	turn := rotation + math32.Pi/2 - tip
	for i := range points {
		points[i] = points[i].Rotate(turn)
	}

	if mirror {
		for i := range points {
			points[i].X = -points[i].X
		}
	}

	return points, nil
}

// EvalSin evaluates r = sin(k*theta) over one lobe.
func EvalSin(k, step, rotation float32, mirror bool) ([]Point, error) {
	return Eval(k, step, rotation, mirror, math32.Sin, math32.Asin)
}

// EvalTan evaluates r = tan(k*theta) over one lobe.
func EvalTan(k, step, rotation float32, mirror bool) ([]Point, error) {
	return Eval(k, step, rotation, mirror, math32.Tan, math32.Atan)
}
