package cubicbezier

// BernsteinPoly is a polynomial of degree n in the Bernstein basis over the
// domain [0, 1], described by its n+1 coefficients. The coefficients are the
// y values of the polynomial's control points, placed at the evenly spaced
// x positions i/n.
//
// The convex hull of those control points bounds the graph of the polynomial,
// which is the property the Bézier clipping root finder exploits.
type BernsteinPoly []float64

// Degree returns the degree of the polynomial.
func (p BernsteinPoly) Degree() int {
	return len(p) - 1
}

// Eval evaluates the polynomial at t, using de Casteljau's algorithm.
func (p BernsteinPoly) Eval(t float64) float64 {
	if len(p) == 0 {
		panic("empty polynomial")
	}
	vs := make(BernsteinPoly, len(p))
	copy(vs, p)
	for n := len(vs) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			vs[i] += t * (vs[i+1] - vs[i])
		}
	}
	return vs[0]
}

// Elevate returns the same polynomial, represented with the degree raised by
// n.
func (p BernsteinPoly) Elevate(n int) BernsteinPoly {
	for k := 0; k < n; k++ {
		d := len(p)
		out := make(BernsteinPoly, d+1)
		out[0] = p[0]
		out[d] = p[d-1]
		for i := 1; i < d; i++ {
			f := float64(i) / float64(d)
			out[i] = f*p[i-1] + (1.0-f)*p[i]
		}
		p = out
	}
	return p
}

// matchDegrees elevates the lower-degree polynomial of the pair so that both
// have the same degree.
func matchDegrees(p, o BernsteinPoly) (BernsteinPoly, BernsteinPoly) {
	if d := len(o) - len(p); d > 0 {
		p = p.Elevate(d)
	} else if d < 0 {
		o = o.Elevate(-d)
	}
	return p, o
}

// Add returns the sum of two polynomials. The representation of the
// lower-degree operand is elevated as needed.
func (p BernsteinPoly) Add(o BernsteinPoly) BernsteinPoly {
	p, o = matchDegrees(p, o)
	out := make(BernsteinPoly, len(p))
	for i, v := range p {
		out[i] = v + o[i]
	}
	return out
}

// Sub returns the difference of two polynomials. The representation of the
// lower-degree operand is elevated as needed.
func (p BernsteinPoly) Sub(o BernsteinPoly) BernsteinPoly {
	p, o = matchDegrees(p, o)
	out := make(BernsteinPoly, len(p))
	for i, v := range p {
		out[i] = v - o[i]
	}
	return out
}

// Mul returns the product of two polynomials. The degree of the product is
// the sum of the degrees of the operands.
func (p BernsteinPoly) Mul(o BernsteinPoly) BernsteinPoly {
	m := p.Degree()
	n := o.Degree()
	out := make(BernsteinPoly, m+n+1)
	for i, a := range p {
		for j, b := range o {
			out[i+j] += a * b *
				float64(choose(m, i)) * float64(choose(n, j)) / float64(choose(m+n, i+j))
		}
	}
	return out
}

// Differentiate returns the derivative of the polynomial.
func (p BernsteinPoly) Differentiate() BernsteinPoly {
	n := p.Degree()
	if n == 0 {
		return BernsteinPoly{0.0}
	}
	out := make(BernsteinPoly, n)
	for i := range out {
		out[i] = float64(n) * (p[i+1] - p[i])
	}
	return out
}

// Split splits the polynomial at t, returning representations of the
// restrictions to [0, t] and [t, 1], each reparametrized over [0, 1].
func (p BernsteinPoly) Split(t float64) (BernsteinPoly, BernsteinPoly) {
	vs := make(BernsteinPoly, len(p))
	copy(vs, p)
	left := make(BernsteinPoly, len(p))
	right := make(BernsteinPoly, len(p))
	left[0] = vs[0]
	right[len(p)-1] = vs[len(p)-1]
	for n := len(vs) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			vs[i] += t * (vs[i+1] - vs[i])
		}
		left[len(p)-n] = vs[0]
		right[n-1] = vs[n-1]
	}
	return left, right
}

// Subsegment returns the polynomial restricted to [t0, t1], reparametrized
// over [0, 1].
func (p BernsteinPoly) Subsegment(t0, t1 float64) BernsteinPoly {
	if t0 > 0.0 {
		_, p = p.Split(t0)
		if t0 < 1.0 {
			t1 = (t1 - t0) / (1.0 - t0)
		}
	}
	if t1 < 1.0 {
		p, _ = p.Split(t1)
	}
	return p
}

// Power converts the polynomial to the power basis, returning coefficients
// ordered from the constant term up. It is the inverse of
// [BernsteinFromPower].
func (p BernsteinPoly) Power() []float64 {
	n := p.Degree()
	out := make([]float64, len(p))
	for k := range out {
		var sum float64
		sign := 1.0
		for i := k; i >= 0; i-- {
			sum += sign * float64(choose(k, i)) * p[i]
			sign = -sign
		}
		out[k] = float64(choose(n, k)) * sum
	}
	return out
}

// BernsteinFromPower converts a polynomial from the power basis to the
// Bernstein basis. The input coefficients are ordered from the constant term
// up, so that coeffs[k] is the coefficient of tᵏ.
func BernsteinFromPower(coeffs []float64) BernsteinPoly {
	n := len(coeffs) - 1
	out := make(BernsteinPoly, len(coeffs))
	for j := range out {
		var sum float64
		for k := 0; k <= j; k++ {
			sum += coeffs[k] * float64(choose(j, k)) / float64(choose(n, k))
		}
		out[j] = sum
	}
	return out
}

// Binomial co-efficient, but returning zeros for values outside of domain
func choose(n, k int) uint32 {
	if k > n {
		return 0
	}
	p := 1
	bound := n - k
	for i := 1; i <= bound; i++ {
		p *= n
		p /= i
		n -= 1
	}
	return uint32(p)
}
