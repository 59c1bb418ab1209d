package cubicbezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArith(t *testing.T) {
	diff(t, Vec(2.0, 2.0), Pt(3.0, 4.0).Sub(Pt(1.0, 2.0)))
	diff(t, Pt(4.0, 6.0), Pt(3.0, 4.0).Translate(Vec(1.0, 2.0)))
	diff(t, Pt(2.0, 3.0), Pt(1.0, 2.0).Lerp(Pt(3.0, 4.0), 0.5))
	diff(t, Pt(2.0, 3.0), Pt(1.0, 2.0).Midpoint(Pt(3.0, 4.0)))
}

func TestPointDistance(t *testing.T) {
	if got := Pt(0.0, 0.0).Distance(Pt(3.0, 4.0)); got != 5.0 {
		t.Errorf("got %v, want 5", got)
	}
	if got := Pt(0.0, 0.0).DistanceSquared(Pt(3.0, 4.0)); got != 25.0 {
		t.Errorf("got %v, want 25", got)
	}
}

func TestPointTransform(t *testing.T) {
	diff(t, Pt(2.0, 6.0), Pt(1.0, 2.0).Transform(Scale(2.0, 3.0)), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0.0, 1.0), Pt(1.0, 0.0).Transform(Rotate(math.Pi/2)), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(2.0, 4.0), Pt(1.0, 2.0).Transform(Translate(Vec(1.0, 2.0))), cmpopts.EquateApprox(0, 1e-12))
}

func TestVec2Ops(t *testing.T) {
	if got := Vec(1.0, 2.0).Dot(Vec(3.0, 4.0)); got != 11.0 {
		t.Errorf("got %v, want 11", got)
	}
	if got := Vec(1.0, 2.0).Cross(Vec(3.0, 4.0)); got != -2.0 {
		t.Errorf("got %v, want -2", got)
	}
	if got := Vec(3.0, 4.0).Hypot(); got != 5.0 {
		t.Errorf("got %v, want 5", got)
	}
	diff(t, Vec(0.6, 0.8), Vec(3.0, 4.0).Normalize(), cmpopts.EquateApprox(0, 1e-12))
	v := Vec(1.0, 2.0)
	if got := v.Turn90().Dot(v); got != 0.0 {
		t.Errorf("Turn90 is not perpendicular: dot product %v", got)
	}
	if got := v.Cross(v.Turn90()); got <= 0.0 {
		t.Errorf("Turn90 should turn counter-clockwise, cross product %v", got)
	}
}
