package render

import (
	"math"

	"github.com/philipparndt/gotri/pkg/geometry"
)

const (
	// DefaultScale is the initial number of pixels per unit length
	DefaultScale = 2.0

	// ZoomFactor is applied per zoom step
	ZoomFactor = 1.2

	MinScale = 0.01
	MaxScale = 1000.0
)

// DefaultAnchor is the initial screen position of vertex A
var DefaultAnchor = geometry.Vector2{X: 160, Y: 420}

// Viewport maps triangle units to screen pixels. Vertex A is drawn at
// Anchor and every unit length covers Scale pixels.
type Viewport struct {
	Scale  float64
	Anchor geometry.Vector2
}

// NewViewport returns the default viewport
func NewViewport() Viewport {
	return Viewport{Scale: DefaultScale, Anchor: DefaultAnchor}
}

// Place lays out a triangle with the given sides in screen space
func (v Viewport) Place(s geometry.Sides) geometry.Points {
	return geometry.Place(s, v.Anchor, v.Scale)
}

// ToScreen converts a point in units, relative to A, to screen pixels
func (v Viewport) ToScreen(p geometry.Vector2) geometry.Vector2 {
	return v.Anchor.Add(p.Mul(v.Scale))
}

// ToUnits converts a screen position to units relative to A
func (v Viewport) ToUnits(p geometry.Vector2) geometry.Vector2 {
	return p.Sub(v.Anchor).Mul(1 / v.Scale)
}

// ZoomIn enlarges the drawing by one step
func (v *Viewport) ZoomIn() {
	v.setScale(v.Scale * ZoomFactor)
}

// ZoomOut shrinks the drawing by one step
func (v *Viewport) ZoomOut() {
	v.setScale(v.Scale / ZoomFactor)
}

// Zoom changes the scale by a relative amount, as produced by a scroll wheel
func (v *Viewport) Zoom(delta float64) {
	v.setScale(v.Scale * (1.0 + delta))
}

func (v *Viewport) setScale(scale float64) {
	v.Scale = math.Max(MinScale, math.Min(MaxScale, scale))
}

// FitViewport returns a viewport that centers the triangle in a canvas of
// the given size, leaving margin pixels on every side.
func FitViewport(s geometry.Sides, width, height int, margin float64) Viewport {
	unit := geometry.Place(s, geometry.Vector2{}, 1).Bounds()
	size := unit.Size()

	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	if size.X <= 0 || size.Y <= 0 || availW <= 0 || availH <= 0 {
		return NewViewport()
	}

	v := Viewport{}
	v.setScale(math.Min(availW/size.X, availH/size.Y))

	screenCenter := geometry.NewVector2(float64(width)/2, float64(height)/2)
	v.Anchor = screenCenter.Sub(unit.Center().Mul(v.Scale))
	return v
}
