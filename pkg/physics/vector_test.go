package physics

import (
	"math"
	"testing"
)

func TestVec2Basics(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v", got)
	}
	if got := a.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v", got)
	}
	if got := a.Distance(b); math.Abs(got-math.Sqrt(40)) > 1e-12 {
		t.Errorf("Distance = %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("normalized magnitude = %v", n.Magnitude())
	}

	zero := Vec2{}
	if got := zero.Normalize(); !got.IsZero() {
		t.Errorf("zero vector normalized to %v", got)
	}
}
