package geometry

import (
	"math"
	"testing"
)

func TestCircleThrough(t *testing.T) {
	c, err := CircleThrough(NewVector2(1, 0), NewVector2(0, 1), NewVector2(-1, 0))
	if err != nil {
		t.Fatalf("CircleThrough failed: %v", err)
	}
	if !nearVec(c.Center, NewVector2(0, 0)) || !near(c.Radius, 1) {
		t.Errorf("expected unit circle, got %+v", c)
	}

	if _, err := CircleThrough(NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 2)); err == nil {
		t.Errorf("collinear points should fail")
	}
}

func TestFitCircle(t *testing.T) {
	var points []Vector2
	for i := 0; i <= 8; i++ {
		angle := float64(i) * math.Pi / 8
		points = append(points, NewVector2(3+2*math.Cos(angle), -1+2*math.Sin(angle)))
	}

	fit, err := FitCircle(points)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}
	if !nearVec(fit.Center, NewVector2(3, -1)) || !near(fit.Radius, 2) {
		t.Errorf("FitCircle failed: got %+v", fit)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("points on the circle should fit exactly, stddev %v", fit.StdDev)
	}

	if _, err := FitCircle(points[:2]); err == nil {
		t.Errorf("two points should not fit a circle")
	}
}

func TestTriangleCircles(t *testing.T) {
	p := rightTriangle()

	circum, err := p.Circumcircle()
	if err != nil || !near(circum.Radius, 2.5) {
		t.Errorf("Circumcircle failed: %+v, %v", circum, err)
	}

	in, err := p.Incircle()
	if err != nil || !near(in.Radius, 1) {
		t.Errorf("Incircle failed: %+v, %v", in, err)
	}
	if !circum.Contains(in.Center) {
		t.Errorf("incenter should lie inside the circumcircle")
	}
}
