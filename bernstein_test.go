package cubicbezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// evalPower evaluates a power basis polynomial with Horner's scheme.
func evalPower(coeffs []float64, x float64) float64 {
	out := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		out = out*x + coeffs[i]
	}
	return out
}

func TestBernsteinEval(t *testing.T) {
	// 1 - 3t + 2t² in the Bernstein basis of degree 2.
	p := BernsteinPoly{1.0, -0.5, 0.0}
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		want := evalPower([]float64{1.0, -3.0, 2.0}, ts)
		if got := p.Eval(ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("at t=%g: got %v, want %v", ts, got, want)
		}
	}
}

func TestBernsteinFromPower(t *testing.T) {
	coeffs := []float64{2.0, -1.0, -2.0, 1.0}
	p := BernsteinFromPower(coeffs)
	if p.Degree() != 3 {
		t.Fatalf("got degree %d, want 3", p.Degree())
	}
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		want := evalPower(coeffs, ts)
		if got := p.Eval(ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("at t=%g: got %v, want %v", ts, got, want)
		}
	}
	diff(t, coeffs, p.Power(), cmpopts.EquateApprox(0, 1e-12))
}

func TestBernsteinElevate(t *testing.T) {
	// Elevate raises the degree by its argument.
	p := BernsteinPoly{1.0, -0.5, 0.0}
	q := p.Elevate(3)
	if q.Degree() != 5 {
		t.Fatalf("got degree %d, want 5", q.Degree())
	}
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		if got, want := q.Eval(ts), p.Eval(ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("at t=%g: got %v, want %v", ts, got, want)
		}
	}
}

func TestBernsteinArith(t *testing.T) {
	p := BernsteinFromPower([]float64{1.0, 2.0})
	q := BernsteinFromPower([]float64{0.0, 0.0, 3.0})
	sum := p.Add(q)
	sub := p.Sub(q)
	prod := p.Mul(q)
	if prod.Degree() != 3 {
		t.Fatalf("got product degree %d, want 3", prod.Degree())
	}
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		pv, qv := p.Eval(ts), q.Eval(ts)
		if got := sum.Eval(ts); math.Abs(got-(pv+qv)) > 1e-12 {
			t.Errorf("sum at t=%g: got %v, want %v", ts, got, pv+qv)
		}
		if got := sub.Eval(ts); math.Abs(got-(pv-qv)) > 1e-12 {
			t.Errorf("difference at t=%g: got %v, want %v", ts, got, pv-qv)
		}
		if got := prod.Eval(ts); math.Abs(got-pv*qv) > 1e-12 {
			t.Errorf("product at t=%g: got %v, want %v", ts, got, pv*qv)
		}
	}
}

func TestBernsteinDifferentiate(t *testing.T) {
	// t³ - 2t² - t + 2, with derivative 3t² - 4t - 1.
	p := BernsteinFromPower([]float64{2.0, -1.0, -2.0, 1.0})
	deriv := p.Differentiate()
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		want := evalPower([]float64{-1.0, -4.0, 3.0}, ts)
		if got := deriv.Eval(ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("at t=%g: got %v, want %v", ts, got, want)
		}
	}
}

func TestBernsteinSplit(t *testing.T) {
	p := BernsteinFromPower([]float64{2.0, -1.0, -2.0, 1.0})
	const at = 0.3
	left, right := p.Split(at)
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		if got, want := left.Eval(ts), p.Eval(at*ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("left at t=%g: got %v, want %v", ts, got, want)
		}
		if got, want := right.Eval(ts), p.Eval(at+(1-at)*ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("right at t=%g: got %v, want %v", ts, got, want)
		}
	}
}

func TestBernsteinSubsegment(t *testing.T) {
	p := BernsteinFromPower([]float64{2.0, -1.0, -2.0, 1.0})
	t0, t1 := 0.25, 0.75
	seg := p.Subsegment(t0, t1)
	const n = 20
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		if got, want := seg.Eval(ts), p.Eval(t0+(t1-t0)*ts); math.Abs(got-want) > 1e-12 {
			t.Errorf("at t=%g: got %v, want %v", ts, got, want)
		}
	}
}
