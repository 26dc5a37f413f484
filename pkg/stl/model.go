package stl

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// ErrFacetIndex is returned when a facet index is outside the model
var ErrFacetIndex = errors.New("facet index out of range")

// Vertex is a point in model space
type Vertex struct {
	X, Y, Z float64
}

// Sub returns v - o
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Cross returns the cross product v × o
func (v Vertex) Cross(o Vertex) Vertex {
	return Vertex{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the length of v as a vector
func (v Vertex) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two vertices
func (v Vertex) Distance(o Vertex) float64 {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length, or zero for a zero vector
func (v Vertex) Normalize() Vertex {
	l := v.Length()
	if l == 0 {
		return Vertex{}
	}
	return Vertex{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Facet is one triangle of a mesh
type Facet struct {
	Normal     Vertex
	V1, V2, V3 Vertex
}

// NewFacet creates a facet and derives its normal from the winding order
func NewFacet(v1, v2, v3 Vertex) Facet {
	normal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
	return Facet{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Sides returns the edge lengths with a opposite V1, b opposite V2 and c
// opposite V3
func (f Facet) Sides() geometry.Sides {
	return geometry.Sides{
		A: f.V2.Distance(f.V3),
		B: f.V3.Distance(f.V1),
		C: f.V1.Distance(f.V2),
	}
}

// Area calculates the area of the facet
func (f Facet) Area() float64 {
	return f.V2.Sub(f.V1).Cross(f.V3.Sub(f.V1)).Length() / 2
}

// Model represents a complete STL model
type Model struct {
	Name   string
	Facets []Facet
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]Facet, 0),
	}
}

// AddFacet adds a facet to the model
func (m *Model) AddFacet(f Facet) {
	m.Facets = append(m.Facets, f)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// Facet returns the facet at index i
func (m *Model) Facet(i int) (Facet, error) {
	if i < 0 || i >= len(m.Facets) {
		return Facet{}, fmt.Errorf("%w: %d (model has %d facets)", ErrFacetIndex, i, len(m.Facets))
	}
	return m.Facets[i], nil
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, f := range m.Facets {
		totalArea += f.Area()
	}
	return totalArea
}

// Extrude builds a closed prism from a placed triangle. The points are taken
// in screen orientation (y down) and scaled by 1/scale back to units, so the
// base lies in z=0 with counter-clockwise winding and the top at z=height.
func Extrude(name string, pts geometry.Points, scale, height float64) *Model {
	toVertex := func(p geometry.Vector2, z float64) Vertex {
		return Vertex{X: (p.X - pts.A.X) / scale, Y: (pts.A.Y - p.Y) / scale, Z: z}
	}

	var bottom, top [3]Vertex
	for i, p := range pts.Vertices() {
		bottom[i] = toVertex(p, 0)
		top[i] = toVertex(p, height)
	}

	m := NewModel(name)
	m.AddFacet(NewFacet(bottom[0], bottom[2], bottom[1]))
	m.AddFacet(NewFacet(top[0], top[1], top[2]))
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		m.AddFacet(NewFacet(bottom[i], bottom[j], top[j]))
		m.AddFacet(NewFacet(bottom[i], top[j], top[i]))
	}
	return m
}
