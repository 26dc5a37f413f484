package geometry

import (
	"math"
	"testing"
)

func rightTriangle() Points {
	return Points{A: NewVector2(0, 0), B: NewVector2(4, 0), C: NewVector2(0, 3)}
}

func TestLineIntersection(t *testing.T) {
	p, ok := LineIntersection(NewVector2(0, 0), NewVector2(2, 2), NewVector2(0, 2), NewVector2(2, 0))
	if !ok || !nearVec(p, NewVector2(1, 1)) {
		t.Errorf("LineIntersection failed: got %v, %v", p, ok)
	}

	_, ok = LineIntersection(NewVector2(0, 0), NewVector2(1, 0), NewVector2(0, 1), NewVector2(1, 1))
	if ok {
		t.Errorf("parallel lines should not intersect")
	}
}

func TestFootOfPerpendicular(t *testing.T) {
	foot := FootOfPerpendicular(NewVector2(2, 5), NewVector2(0, 0), NewVector2(4, 0))
	if !nearVec(foot, NewVector2(2, 0)) {
		t.Errorf("FootOfPerpendicular failed: got %v", foot)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := NewVector2(0, 0), NewVector2(10, 0)

	tests := []struct {
		p        Vector2
		expected float64
	}{
		{NewVector2(5, 3), 3},
		{NewVector2(-3, 4), 5},
		{NewVector2(13, 4), 5},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, a, b); !near(got, tt.expected) {
			t.Errorf("DistanceToSegment(%v): expected %v, got %v", tt.p, tt.expected, got)
		}
	}
}

func TestCenters(t *testing.T) {
	p := rightTriangle()

	circum, ok := p.Circumcenter()
	if !ok || !nearVec(circum, NewVector2(2, 1.5)) {
		t.Errorf("circumcenter of a right triangle is the hypotenuse midpoint, got %v", circum)
	}

	ortho, ok := p.Orthocenter()
	if !ok || !nearVec(ortho, p.A) {
		t.Errorf("orthocenter of a right triangle is the right-angle vertex, got %v", ortho)
	}

	in, ok := p.Incenter()
	if !ok || !nearVec(in, NewVector2(1, 1)) {
		t.Errorf("Incenter failed: got %v", in)
	}
}

func TestBisectorPoint(t *testing.T) {
	p := rightTriangle()

	q, ok := BisectorPoint(p.A, p.B, p.C, 1)
	if !ok {
		t.Fatalf("BisectorPoint failed")
	}
	// The bisector of the right angle at the origin runs along y = x
	if !near(q.X, q.Y) {
		t.Errorf("bisector should follow y = x, got %v", q)
	}
	if !near(q.Length(), 30) {
		t.Errorf("short bisector should use the minimum length, got %v", q.Length())
	}

	if _, ok := BisectorPoint(p.A, p.A, p.C, 1); ok {
		t.Errorf("coincident vertices should have no bisector")
	}
}

func TestAltitudeFeet(t *testing.T) {
	feet := rightTriangle().AltitudeFeet()
	if !nearVec(feet[0], NewVector2(1.44, 1.92)) {
		t.Errorf("foot from A failed: got %v", feet[0])
	}
	if !nearVec(feet[1], NewVector2(0, 0)) || !nearVec(feet[2], NewVector2(0, 0)) {
		t.Errorf("feet from B and C should be A, got %v", feet)
	}
}

func TestEdgeMidpoints(t *testing.T) {
	m := rightTriangle().EdgeMidpoints()
	if !nearVec(m[2], NewVector2(2, 0)) || math.IsNaN(m[0].X) {
		t.Errorf("EdgeMidpoints failed: got %v", m)
	}
}
