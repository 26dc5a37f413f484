package render

import (
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/solver"
)

// Shape is one triangle ready for drawing
type Shape struct {
	Solution solver.Solution
	Points   geometry.Points

	// Fallback marks a placeholder drawn when the inputs have no solution
	Fallback bool
}

// Frame is everything a renderer needs to draw one picture
type Frame struct {
	Primary   Shape
	Alternate *Shape // second branch of an ambiguous input, drawn faint

	Scale     float64
	Grid      bool
	Construct bool
}

// NewFrame places a solution with the viewport. The alternate is optional.
func NewFrame(v Viewport, primary solver.Solution, alternate *solver.Solution) Frame {
	f := Frame{
		Primary: shapeOf(v, primary),
		Scale:   v.Scale,
	}
	if alternate != nil {
		alt := shapeOf(v, *alternate)
		f.Alternate = &alt
	}
	return f
}

func shapeOf(v Viewport, sol solver.Solution) Shape {
	return Shape{
		Solution: sol,
		Points:   v.Place(geometry.NewSides(sol.A, sol.B, sol.C)),
	}
}

// Bounds returns the screen bounding box of all drawn triangles
func (f Frame) Bounds() geometry.BoundingBox {
	b := f.Primary.Points.Bounds()
	if f.Alternate != nil {
		for _, p := range f.Alternate.Points.Vertices() {
			b.Extend(p)
		}
	}
	return b
}
