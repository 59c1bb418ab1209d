package cubicbezier

import "math"

// coeffNoise is the relative magnitude below which a Bernstein coefficient or
// a control point distance is treated as zero. Splitting exactly at a root
// leaves the shared boundary value at rounding noise rather than zero, and an
// exact band would then reject the root in both halves.
const coeffNoise = 1e-12

// FindBernsteinRoots returns the parameters at which the polynomial crosses
// zero, in increasing order. The polynomial's [0, 1] domain is taken to
// correspond to [tmin, tmax], and roots and accuracy are expressed in that
// range.
//
// This is the one-dimensional form of Bézier clipping: the same clip, shrink
// and split loop as [IntersectCubics], with the fat line replaced by the zero
// band.
//
// The zero polynomial vanishes everywhere and reports no isolated roots.
func FindBernsteinRoots(p BernsteinPoly, tmin, tmax, accuracy float64) []float64 {
	accuracy = max(accuracy, minAccuracy)
	zero := true
	for _, c := range p {
		if c != 0.0 {
			zero = false
			break
		}
	}
	if zero {
		return nil
	}
	// A root on a bisection boundary is found from both sides; merge the
	// near-identical reports.
	return dedupeParams(bernsteinRoots(p, tmin, tmax, accuracy, 0), accuracy)
}

func bernsteinRoots(p BernsteinPoly, tmin, tmax, accuracy float64, depth int) []float64 {
	eps := 0.0
	for _, c := range p {
		eps = max(eps, coeffNoise*math.Abs(c))
	}
	t0, t1, ok := chopHull(-eps, eps, p)
	if !ok {
		return nil
	}
	clipped := p.Subsegment(t0, t1)
	newMin := tmin + (tmax-tmin)*t0
	newMax := tmin + (tmax-tmin)*t1
	if newMax-newMin < accuracy || depth >= maxClipDepth {
		return []float64{0.5 * (newMin + newMax)}
	}
	if t1-t0 > 0.8 {
		// The zero band did not shrink the interval enough; there may be
		// several roots. Bisect and solve the halves independently.
		left, right := clipped.Split(0.5)
		mid := 0.5 * (newMin + newMax)
		out := bernsteinRoots(left, newMin, mid, accuracy, depth+1)
		return append(out, bernsteinRoots(right, mid, newMax, accuracy, depth+1)...)
	}
	return bernsteinRoots(clipped, newMin, newMax, accuracy, depth+1)
}

// FindPolynomialRoots returns the real roots of the polynomial with the given
// power basis coefficients within [tmin, tmax], in increasing order. The
// coefficients are ordered from the constant term up, so that coeffs[k] is
// the coefficient of xᵏ.
//
// The polynomial is mapped onto [0, 1], converted to the Bernstein basis with
// [BernsteinFromPower], and solved with [FindBernsteinRoots]; the polynomial
// may be of any degree.
func FindPolynomialRoots(coeffs []float64, tmin, tmax, accuracy float64) []float64 {
	if len(coeffs) == 0 {
		return nil
	}
	// Substitute x = tmin + (tmax-tmin)·t, expanding the powers of the sum
	// term by term.
	s := tmax - tmin
	sub := make([]float64, len(coeffs))
	for k, a := range coeffs {
		if a == 0.0 {
			continue
		}
		tminPow := 1.0
		for j := k; j >= 0; j-- {
			sub[j] += a * float64(choose(k, j)) * powInt(s, j) * tminPow
			tminPow *= tmin
		}
	}
	return FindBernsteinRoots(BernsteinFromPower(sub), tmin, tmax, accuracy)
}

// powInt raises x to a small non-negative integer power.
func powInt(x float64, n int) float64 {
	out := 1.0
	for k := 0; k < n; k++ {
		out *= x
	}
	return out
}
