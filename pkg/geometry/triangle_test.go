package geometry

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearVec(a, b Vector2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestSidesArea(t *testing.T) {
	area := NewSides(3, 4, 5).Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if !near(area, expected) {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}

	if got := NewSides(1, 1, 3).Area(); got != 0 {
		t.Errorf("Area of impossible sides should be 0, got %v", got)
	}
}

func TestSidesPerimeter(t *testing.T) {
	perimeter := NewSides(3, 4, 5).Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if !near(perimeter, expected) {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestSidesRadii(t *testing.T) {
	s := NewSides(3, 4, 5)

	if !near(s.Inradius(), 1) {
		t.Errorf("Inradius failed: expected 1, got %v", s.Inradius())
	}
	if !near(s.Circumradius(), 2.5) {
		t.Errorf("Circumradius failed: expected 2.5, got %v", s.Circumradius())
	}
	if !math.IsInf(NewSides(1, 1, 2).Circumradius(), 1) {
		t.Errorf("Circumradius of a degenerate triangle should be +Inf")
	}
}

func TestSidesAltitudesAndMedians(t *testing.T) {
	s := NewSides(3, 4, 5)

	alt := s.Altitudes()
	if !near(alt[0], 4) || !near(alt[1], 3) || !near(alt[2], 2.4) {
		t.Errorf("Altitudes failed: got %v", alt)
	}

	med := s.Medians()
	// The median to the hypotenuse is half of it
	if !near(med[2], 2.5) {
		t.Errorf("Median to c failed: expected 2.5, got %v", med[2])
	}
}

func TestPlace(t *testing.T) {
	p := Place(NewSides(3, 4, 5), NewVector2(0, 0), 1)

	if !nearVec(p.A, NewVector2(0, 0)) {
		t.Errorf("A should be at the anchor, got %v", p.A)
	}
	if !nearVec(p.B, NewVector2(5, 0)) {
		t.Errorf("B should be c units right of A, got %v", p.B)
	}
	if !nearVec(p.C, NewVector2(3.2, -2.4)) {
		t.Errorf("C should be above the baseline, got %v", p.C)
	}

	sides := p.Sides()
	if !near(sides.A, 3) || !near(sides.B, 4) || !near(sides.C, 5) {
		t.Errorf("placed sides should round trip, got %v", sides)
	}
}

func TestPlaceScaled(t *testing.T) {
	p := Place(NewSides(100, 140, 160), NewVector2(160, 420), 2)

	if !near(p.B.X, 160+320) {
		t.Errorf("B.X failed: got %v", p.B.X)
	}
	if p.C.Y >= p.A.Y {
		t.Errorf("C should be above A in screen space, got %v", p.C)
	}
	if !near(p.A.Distance(p.C), 280) || !near(p.B.Distance(p.C), 200) {
		t.Errorf("scaled distances wrong: %v", p)
	}
}

func TestPlaceDegenerate(t *testing.T) {
	p := Place(NewSides(1, 1, 10), NewVector2(0, 0), 1)
	if p.C.Y != 0 {
		t.Errorf("impossible sides should put C on the baseline, got %v", p.C)
	}

	p = Place(NewSides(2, 2, 0), NewVector2(0, 0), 1)
	if !nearVec(p.C, NewVector2(0, -2)) {
		t.Errorf("zero base should put C straight above A, got %v", p.C)
	}
}

func TestPointsAngles(t *testing.T) {
	p := Place(NewSides(3, 4, 5), NewVector2(10, 10), 3)
	angles := p.Angles()

	if math.Abs(angles[0]+angles[1]+angles[2]-180) > 1e-9 {
		t.Errorf("angles should sum to 180, got %v", angles)
	}
	if math.Abs(angles[2]-90) > 1e-9 {
		t.Errorf("angle at C should be right, got %v", angles[2])
	}
	if !near(p.Area(), 6*9) {
		t.Errorf("Area failed: expected 54, got %v", p.Area())
	}
}

func TestPointsCentroid(t *testing.T) {
	p := Points{A: NewVector2(0, 0), B: NewVector2(3, 0), C: NewVector2(0, 3)}

	expected := NewVector2(1, 1)
	if c := p.Centroid(); !nearVec(c, expected) {
		t.Errorf("Centroid failed: expected %v, got %v", expected, c)
	}
}

func TestBoundingBox(t *testing.T) {
	b := NewBoundingBox()
	if !b.Empty() {
		t.Errorf("new bounding box should be empty")
	}

	b = BoundsOf(NewVector2(1, 5), NewVector2(-1, 2), NewVector2(3, 3))
	if b.Size() != NewVector2(4, 3) {
		t.Errorf("Size failed: got %v", b.Size())
	}
	if b.Center() != NewVector2(1, 3.5) {
		t.Errorf("Center failed: got %v", b.Center())
	}
	if !b.Expand(1).Contains(NewVector2(-2, 1)) {
		t.Errorf("expanded box should contain the point")
	}
}
