package cubicbezier

// distanceHulls computes the convex hull of the points (i/n, ds[i]),
// returning the upper and lower chains, each ordered from x=0 to x=1. The two
// chains share their first and last points; concatenated, they form a convex
// polygon.
//
// Since the x coordinates are already sorted, a single left-to-right pass per
// chain suffices (the monotone chain algorithm). Collinear points are folded
// into the chain, so each chain makes strict turns only.
//
// Sequences of at most two points are degenerate hulls and are returned
// unchanged.
func distanceHulls(ds []float64) (upper, lower []Point) {
	n := len(ds) - 1
	points := make([]Point, len(ds))
	for i, d := range ds {
		points[i] = Pt(float64(i)/float64(n), d)
	}
	if len(points) <= 2 {
		return points, points
	}
	upper = hullChain(points, false)
	lower = hullChain(points, true)
	return upper, lower
}

// hullChain computes one monotone hull chain. The upper chain drops a
// candidate point whenever the new point makes the chain turn left (or go
// straight); the lower chain drops on right (or straight) turns.
//
// The cross product of nearly collinear points lands at rounding noise
// rather than zero, so straightness is measured against the edge magnitudes.
func hullChain(points []Point, lower bool) []Point {
	const collinearNoise = 1e-12
	chain := make([]Point, 0, len(points))
	for _, pt := range points {
		for len(chain) >= 2 {
			a := chain[len(chain)-1].Sub(chain[len(chain)-2])
			b := pt.Sub(chain[len(chain)-1])
			cross := a.Cross(b)
			if lower {
				cross = -cross
			}
			if cross < -collinearNoise*a.Hypot()*b.Hypot() {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, pt)
	}
	return chain
}
