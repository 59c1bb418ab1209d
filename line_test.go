package cubicbezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineIntersectLine(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	probe := Line{Pt(0.0, 1.0), Pt(1.0, 0.0)}
	xs, n := l.IntersectLine(probe)
	want := []LineIntersection{{0.5, 0.5}}
	diff(t, want, xs[:n], cmpopts.EquateApprox(0, 1e-12))

	// Parallel lines never cross.
	if _, n := l.IntersectLine(Line{Pt(0.0, 1.0), Pt(1.0, 2.0)}); n != 0 {
		t.Errorf("got %d intersections, want 0", n)
	}

	// Segments whose extensions cross do not themselves cross.
	if _, n := l.IntersectLine(Line{Pt(2.0, 3.0), Pt(3.0, 2.0)}); n != 0 {
		t.Errorf("got %d intersections, want 0", n)
	}
}

func TestLineCrossingPoint(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(2.0, 2.0)}
	pt, ok := l.CrossingPoint(Line{Pt(0.0, 2.0), Pt(2.0, 0.0)})
	if !ok {
		t.Fatal("expected a crossing point")
	}
	diff(t, Pt(1.0, 1.0), pt, cmpopts.EquateApprox(0, 1e-12))

	if _, ok := l.CrossingPoint(Line{Pt(0.0, 1.0), Pt(2.0, 3.0)}); ok {
		t.Error("parallel lines should have no crossing point")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(2.0, 0.0)}
	verify := func(pt Point, wantT, wantDistSq float64) {
		t.Helper()
		distSq, ts := l.Nearest(pt, 1e-6)
		if math.Abs(ts-wantT) > 1e-12 || math.Abs(distSq-wantDistSq) > 1e-12 {
			t.Errorf("Nearest(%v) = (%g, %g), want (%g, %g)", pt, distSq, ts, wantDistSq, wantT)
		}
	}
	verify(Pt(1.0, 1.0), 0.5, 1.0)
	verify(Pt(-1.0, 0.0), 0.0, 1.0)
	verify(Pt(3.0, 1.0), 1.0, 2.0)
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(1.0, 2.0), Pt(3.0, 6.0)}
	diff(t, Pt(2.0, 4.0), l.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, l.P0, l.Start())
	diff(t, l.P1, l.End())
	seg := l.Subsegment(0.25, 0.75)
	diff(t, l.Eval(0.25), seg.Start())
	diff(t, l.Eval(0.75), seg.End())
	if got, want := l.Length(), math.Sqrt(20.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("got length %v, want %v", got, want)
	}
}

func TestLineTransform(t *testing.T) {
	l := Line{Pt(1.0, 2.0), Pt(3.0, 6.0)}
	diff(t, Line{Pt(2.0, 1.0), Pt(4.0, 5.0)}, l.Translate(Vec(1.0, -1.0)))
	diff(t, Line{Pt(2.0, 6.0), Pt(6.0, 18.0)}, l.Transform(Scale(2.0, 3.0)),
		cmpopts.EquateApprox(0, 1e-12))
}

func TestLineIsInfIsNaN(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if l.IsInf() || l.IsNaN() {
		t.Error("finite line reported as non-finite")
	}
	inf := Line{Pt(0.0, math.Inf(1)), Pt(1.0, 1.0)}
	if !inf.IsInf() {
		t.Error("infinite line not detected")
	}
	nan := Line{Pt(0.0, 0.0), Pt(math.NaN(), 1.0)}
	if !nan.IsNaN() {
		t.Error("NaN line not detected")
	}
}
