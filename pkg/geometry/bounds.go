package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector2
	Max Vector2
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector2{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Vector2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// BoundsOf returns the bounding box of the given points
func BoundsOf(points ...Vector2) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Expand grows the box by margin on every side
func (b BoundingBox) Expand(margin float64) BoundingBox {
	d := NewVector2(margin, margin)
	return BoundingBox{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether the point lies inside the box
func (b BoundingBox) Contains(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
