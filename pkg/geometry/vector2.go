package geometry

import "math"

// Vector2 represents a 2D point or vector
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by 90 degrees
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return v.Mul(1.0 / length)
}

// Lerp interpolates between v (t=0) and other (t=1)
func (v Vector2) Lerp(other Vector2, t float64) Vector2 {
	return v.Add(other.Sub(v).Mul(t))
}

// Min returns a vector with the minimum components of two vectors
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y)}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y)}
}
