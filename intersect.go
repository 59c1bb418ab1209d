package cubicbezier

import (
	"math"
	"sort"
)

// IntersectCubicLine returns the curve parameters at which the curve crosses
// the infinite line through l, in increasing order.
//
// The line is mapped onto the x axis, carrying the curve along; the
// intersections are then the roots of the Bernstein polynomial formed by the
// y coordinates of the transformed control points. The accuracy is given in
// curve space and converted to parameter space internally.
//
// A line with coincident endpoints has no direction and yields NaN
// parameters; avoiding that input is the caller's responsibility.
func IntersectCubicLine(c CubicBez, l Line, accuracy float64) []float64 {
	dir := l.P1.Sub(l.P0)
	aff := Rotate(-dir.Angle()).PreTranslate(Vec2(l.P0).Negate())
	tc := c.Transform(aff)
	p := BernsteinPoly{tc.P0.Y, tc.P1.Y, tc.P2.Y, tc.P3.Y}
	return FindBernsteinRoots(p, 0, 1, c.paramAccuracy(accuracy))
}

// ClosestParameters returns the parameters of the points on the curve closest
// to pt, in increasing order. All parameters whose distance to pt is within
// accuracy/2 of the smallest found distance are reported: a symmetric curve
// can have several closest points, and dropping the ties would hide that from
// the caller. The result contains at least one parameter.
func ClosestParameters(c CubicBez, pt Point, accuracy float64) []float64 {
	accuracy = max(accuracy, minAccuracy)

	// The zeros of (Bx−px)·Bx′ + (By−py)·By′ are the stationary points of
	// the squared distance to pt.
	px := BernsteinPoly{c.P0.X, c.P1.X, c.P2.X, c.P3.X}
	py := BernsteinPoly{c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y}
	poly := px.Sub(BernsteinPoly{pt.X}).Mul(px.Differentiate()).
		Add(py.Sub(BernsteinPoly{pt.Y}).Mul(py.Differentiate()))

	paramAcc := c.paramAccuracy(accuracy)
	roots := FindBernsteinRoots(poly, 0, 1, paramAcc)

	// The domain endpoints compete with the interior stationary points.
	params := make([]float64, 0, len(roots)+2)
	params = append(params, 0.0)
	params = append(params, roots...)
	params = append(params, 1.0)
	sort.Float64s(params)
	params = dedupeParams(params, paramAcc)

	best := math.Inf(1)
	for _, t := range params {
		best = min(best, c.Eval(t).Distance(pt))
	}
	out := make([]float64, 0, len(params))
	for _, t := range params {
		if c.Eval(t).Distance(pt) <= best+0.5*accuracy {
			out = append(out, t)
		}
	}
	return out
}

// dedupeParams collapses runs of nearly identical values in a sorted slice,
// keeping the first value of each run.
func dedupeParams(ts []float64, accuracy float64) []float64 {
	out := ts[:0]
	for _, t := range ts {
		if len(out) == 0 || t-out[len(out)-1] >= accuracy {
			out = append(out, t)
		}
	}
	return out
}
