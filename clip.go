package cubicbezier

import "math"

// DefaultAccuracy is a default value for functions that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// minAccuracy is the floor applied to caller-supplied accuracies. Tighter
// requests run into floating point granularity and are not guaranteed to
// terminate.
const minAccuracy = 1e-8

// maxClipDepth bounds the recursion of the clipping loops. The interval
// arithmetic guarantees termination for well-behaved floats; the cap guards
// against pathological rounding.
const maxClipDepth = 64

// CurveIntersection describes one intersection of a pair of curves, by the
// parameter on each curve.
type CurveIntersection struct {
	// The parameter on the first curve.
	TA float64
	// The parameter on the second curve.
	TB float64
}

func (ci CurveIntersection) IsInf() bool {
	return math.IsInf(ci.TA, 0) || math.IsInf(ci.TB, 0)
}

func (ci CurveIntersection) IsNaN() bool {
	return math.IsNaN(ci.TA) || math.IsNaN(ci.TB)
}

// IntersectCubics computes the intersections of two cubic Bézier segments
// using Bézier clipping: the algorithm alternately bounds one curve by the
// convex hull of its control points and clips it against a "fat line" around
// the other, shrinking both parameter domains until they are smaller than
// accuracy.
//
// One intersection is reported per detected intersection region, ordered by
// the subdivision of the curves from their start towards their end. Curves
// that touch tangentially or overlap along an extended segment can produce
// records for each point of a whole region; nearly coincident records are
// merged, but the remaining count is best-effort for such inputs.
//
// An empty result means the curves do not intersect. The accuracy is clamped
// to a floor of 1e-8.
func IntersectCubics(a, b CubicBez, accuracy float64) []CurveIntersection {
	accuracy = max(accuracy, minAccuracy)
	ba, bb := a.BoundingBox(), b.BoundingBox()
	if !ba.Overlaps(bb) {
		return nil
	}
	// The fat line width at which clipping stops discriminating, expressed
	// in curve space.
	fatAccuracy := accuracy * max(ba.Diagonal(), bb.Diagonal())
	xs := clipPair(a, b, [2]float64{0, 1}, [2]float64{0, 1}, 0, accuracy, fatAccuracy, false, 0)
	return dedupeIntersections(xs, accuracy)
}

// orderIntersection restores the caller's (a, b) order for a record produced
// while the curves had swapped clipping roles.
func orderIntersection(tp, tq float64, reversed bool) CurveIntersection {
	if reversed {
		return CurveIntersection{TA: tq, TB: tp}
	}
	return CurveIntersection{TA: tp, TB: tq}
}

// clipPair performs one step of the Bézier clipping loop: p is clipped
// against the fat line of q, then the roles swap. pRange and qRange track the
// parameter intervals of p and q in the original curves' domains, and
// reversed records whether p stems from the second original curve.
func clipPair(
	p, q CubicBez,
	pRange, qRange [2]float64,
	prevClip, accuracy, fatAccuracy float64,
	reversed bool,
	depth int,
) []CurveIntersection {
	if depth >= maxClipDepth {
		return []CurveIntersection{orderIntersection(
			0.5*(pRange[0]+pRange[1]),
			0.5*(qRange[0]+qRange[1]),
			reversed,
		)}
	}

	base := Line{q.P0, q.P3}
	if base.P0 == base.P1 {
		// The clipping curve's endpoints coincide, leaving no baseline
		// direction. Use a baseline perpendicular to the clipped curve's
		// chord instead.
		dir := p.P3.Sub(p.P0)
		if dir == (Vec2{}) {
			dir = Vec(1, 0)
		}
		base = Line{q.P0, q.P0.Translate(dir.Turn90())}
	}
	n := base.P1.Sub(base.P0).Turn90().Normalize()
	dist := func(pt Point) float64 {
		return n.Dot(pt.Sub(base.P0))
	}

	// The fat line around the baseline that contains all of q. The factors
	// are the tight convex hull distance bounds for cubic curves: 3/4 if the
	// interior control points are on the same side of the baseline, 4/9
	// otherwise.
	d1 := dist(q.P1)
	d2 := dist(q.P2)
	factor := 4.0 / 9.0
	if d1*d2 > 0 {
		factor = 3.0 / 4.0
	}
	dmin := factor * min(0, d1, d2)
	dmax := factor * max(0, d1, d2)

	ds := []float64{dist(p.P0), dist(p.P1), dist(p.P2), dist(p.P3)}
	// Subdividing exactly on an intersection leaves the boundary distance at
	// rounding noise; widen the band so neither half rejects it.
	eps := 0.0
	for _, d := range ds {
		eps = max(eps, coeffNoise*math.Abs(d))
	}
	t0, t1, ok := chopHull(dmin-eps, dmax+eps, ds)
	if !ok {
		// p's hull stays clear of the fat line; no intersection on this
		// branch.
		return nil
	}

	newClip := t1 - t0
	clipped := p.Subsegment(t0, t1)
	pr := [2]float64{
		pRange[0] + (pRange[1]-pRange[0])*t0,
		pRange[0] + (pRange[1]-pRange[0])*t1,
	}

	if pr[1]-pr[0] < accuracy && qRange[1]-qRange[0] < accuracy {
		return []CurveIntersection{orderIntersection(
			0.5*(pr[0]+pr[1]),
			0.5*(qRange[0]+qRange[1]),
			reversed,
		)}
	}

	if prevClip > 0.8 && newClip > 0.8 {
		// Neither curve is making progress, which hints at multiple
		// intersections in this region.
		if dmax-dmin < fatAccuracy {
			// The fat line is thinner than the accuracy, so clipping
			// cannot discriminate further: the curves are nearly tangent
			// or overlap here. A line-like clipper has a zero-width fat
			// line from the start, so thinness alone is not evidence of
			// tangency; only report the interval ends once subdivision
			// has pinned the region down, and keep splitting until then.
			window := math.Sqrt(accuracy)
			if pr[1]-pr[0] < window && qRange[1]-qRange[0] < window {
				return []CurveIntersection{
					orderIntersection(pr[0], qRange[0], reversed),
					orderIntersection(pr[1], qRange[1], reversed),
				}
			}
		}
		if pr[1]-pr[0] > qRange[1]-qRange[0] {
			left, right := clipped.Subdivide()
			mid := 0.5 * (pr[0] + pr[1])
			out := clipPair(q, left, qRange, [2]float64{pr[0], mid},
				newClip, accuracy, fatAccuracy, !reversed, depth+1)
			return append(out, clipPair(q, right, qRange, [2]float64{mid, pr[1]},
				newClip, accuracy, fatAccuracy, !reversed, depth+1)...)
		}
		left, right := q.Subdivide()
		mid := 0.5 * (qRange[0] + qRange[1])
		out := clipPair(left, clipped, [2]float64{qRange[0], mid}, pr,
			newClip, accuracy, fatAccuracy, !reversed, depth+1)
		return append(out, clipPair(right, clipped, [2]float64{mid, qRange[1]}, pr,
			newClip, accuracy, fatAccuracy, !reversed, depth+1)...)
	}

	return clipPair(q, clipped, qRange, pr, newClip, accuracy, fatAccuracy, !reversed, depth+1)
}

// dedupeIntersections drops records that lie within a few accuracy widths of
// an already reported record, keeping the first occurrence. Tangential curve
// pairs otherwise drown the caller in near-identical records.
func dedupeIntersections(xs []CurveIntersection, accuracy float64) []CurveIntersection {
	if len(xs) <= 1 {
		return xs
	}
	const proximity = 4.0
	out := make([]CurveIntersection, 0, len(xs))
	for _, x := range xs {
		dup := false
		for _, o := range out {
			if math.Abs(x.TA-o.TA) < proximity*accuracy &&
				math.Abs(x.TB-o.TB) < proximity*accuracy {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}
	return out
}

// chopHull computes the interval [t0, t1] of x positions on which the convex
// hull of the points (i/n, ds[i]) can overlap the band dmin ≤ y ≤ dmax.
// Outside the interval, the hull is certified to lie outside the band. Three
// checks apply at each end, in priority order: the hull enters from above the
// band, starts within it, or enters from below.
//
// ok is false if the hull stays clear of the band entirely.
func chopHull(dmin, dmax float64, ds []float64) (t0, t1 float64, ok bool) {
	upper, lower := distanceHulls(ds)
	t0, ok = clipChains(upper, lower, dmin, dmax, false)
	if !ok {
		return 0, 0, false
	}
	t1, ok = clipChains(upper, lower, dmin, dmax, true)
	if !ok || t1 < t0 {
		return 0, 0, false
	}
	return t0, t1, true
}

// clipChains scans the hull chains from one end for the outermost x at which
// the hull can be inside the band.
func clipChains(upper, lower []Point, dmin, dmax float64, fromRight bool) (float64, bool) {
	end := upper[0]
	if fromRight {
		end = upper[len(upper)-1]
	}
	switch {
	case end.Y > dmax:
		// The hull starts above the band; it enters where the lower chain
		// descends to dmax.
		return chainCrossing(lower, dmax, fromRight, false)
	case end.Y < dmin:
		// Below the band; it enters where the upper chain rises to dmin.
		return chainCrossing(upper, dmin, fromRight, true)
	default:
		return end.X, true
	}
}

// chainCrossing finds the first edge, scanning from the given end, on which
// the chain crosses the level d, and returns the x position of the crossing.
// rising selects crossings from below.
func chainCrossing(chain []Point, d float64, fromRight, rising bool) (float64, bool) {
	inside := func(pt Point) bool {
		if rising {
			return pt.Y >= d
		}
		return pt.Y <= d
	}
	if fromRight {
		for i := len(chain) - 1; i > 0; i-- {
			if inside(chain[i-1]) {
				return intersectPt(chain[i], chain[i-1], d), true
			}
		}
	} else {
		for i := 0; i < len(chain)-1; i++ {
			if inside(chain[i+1]) {
				return intersectPt(chain[i], chain[i+1], d), true
			}
		}
	}
	return 0, false
}

// intersectPt returns the x position at which the segment from p to q crosses
// the horizontal line at y=d. A horizontal segment has no unique crossing;
// the unclipped endpoint is returned rather than propagating an infinity.
func intersectPt(p, q Point, d float64) float64 {
	if q.Y == p.Y {
		return p.X
	}
	return p.X + (d-p.Y)*(q.X-p.X)/(q.Y-p.Y)
}
