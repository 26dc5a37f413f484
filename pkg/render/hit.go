package render

import "github.com/philipparndt/gotri/pkg/geometry"

const (
	// VertexHitRadius is how close a pointer must be to grab a vertex
	VertexHitRadius = 12.0

	// EdgeHitDistance is how close a pointer must be to select an edge
	EdgeHitDistance = 10.0

	// AngleHitRadius is used when a double click edits an angle
	AngleHitRadius = 14.0
)

// TargetKind identifies what a pointer position hits
type TargetKind int

const (
	None TargetKind = iota
	Vertex
	Edge
)

// Target is the result of a hit test. Vertex indices are 0=A, 1=B, 2=C and
// edge indices follow the opposite vertex (0=a=BC, 1=b=CA, 2=c=AB).
type Target struct {
	Kind  TargetKind
	Index int
}

// HitVertex returns the nearest vertex within radius
func HitVertex(pts geometry.Points, p geometry.Vector2, radius float64) (int, bool) {
	best := -1
	bestDist := radius
	for i, v := range pts.Vertices() {
		if d := v.Distance(p); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// HitEdge returns the nearest edge within distance
func HitEdge(pts geometry.Points, p geometry.Vector2, distance float64) (int, bool) {
	v := pts.Vertices()
	best := -1
	bestDist := distance
	for i := range v {
		d := geometry.DistanceToSegment(p, v[(i+1)%3], v[(i+2)%3])
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// HitTest checks vertices first, then edges
func HitTest(pts geometry.Points, p geometry.Vector2) Target {
	if i, ok := HitVertex(pts, p, VertexHitRadius); ok {
		return Target{Kind: Vertex, Index: i}
	}
	if i, ok := HitEdge(pts, p, EdgeHitDistance); ok {
		return Target{Kind: Edge, Index: i}
	}
	return Target{Kind: None, Index: -1}
}
