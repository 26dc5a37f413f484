package stl

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gotri/pkg/geometry"
)

const asciiFacet = `solid test
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 3 0 0
      vertex 0 4 0
    endloop
  endfacet
endsolid test
`

func TestReadASCII(t *testing.T) {
	model, err := Read(strings.NewReader(asciiFacet))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if model.Name != "test" {
		t.Errorf("expected name 'test', got %q", model.Name)
	}
	if model.FacetCount() != 1 {
		t.Fatalf("expected 1 facet, got %d", model.FacetCount())
	}

	f := model.Facets[0]
	if f.Normal != (Vertex{0, 0, 1}) {
		t.Errorf("unexpected normal %v", f.Normal)
	}
	if math.Abs(f.Area()-6) > 1e-10 {
		t.Errorf("expected area 6, got %v", f.Area())
	}
}

func TestReadASCIIInvalid(t *testing.T) {
	bad := strings.Replace(asciiFacet, "vertex 3 0 0", "vertex 3 x 0", 1)
	if _, err := Read(strings.NewReader(bad)); err == nil {
		t.Errorf("expected error for invalid coordinate")
	}

	short := strings.Replace(asciiFacet, "      vertex 0 4 0\n", "", 1)
	if _, err := Read(strings.NewReader(short)); err == nil {
		t.Errorf("expected error for facet with two vertices")
	}
}

func TestFacetSides(t *testing.T) {
	f := NewFacet(Vertex{0, 0, 0}, Vertex{3, 0, 0}, Vertex{0, 4, 0})
	s := f.Sides()

	// a is opposite V1, b opposite V2, c opposite V3
	if math.Abs(s.A-5) > 1e-10 || math.Abs(s.B-4) > 1e-10 || math.Abs(s.C-3) > 1e-10 {
		t.Errorf("unexpected sides %+v", s)
	}
	if f.Normal != (Vertex{0, 0, 1}) {
		t.Errorf("expected +z normal, got %v", f.Normal)
	}
}

func TestModelFacetIndex(t *testing.T) {
	model, err := Read(strings.NewReader(asciiFacet))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if _, err := model.Facet(0); err != nil {
		t.Errorf("facet 0 should exist: %v", err)
	}
	for _, i := range []int{-1, 1} {
		if _, err := model.Facet(i); !errors.Is(err, ErrFacetIndex) {
			t.Errorf("Facet(%d): expected ErrFacetIndex, got %v", i, err)
		}
	}
}

func TestWriteReadASCII(t *testing.T) {
	pts := geometry.Place(geometry.NewSides(3, 4, 5), geometry.NewVector2(10, 10), 2)
	model := Extrude("tri", pts, 2, 1)

	var buf bytes.Buffer
	if err := Write(&buf, model); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "solid tri\n") {
		t.Errorf("unexpected header: %q", buf.String()[:20])
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if back.FacetCount() != 8 {
		t.Fatalf("expected 8 facets, got %d", back.FacetCount())
	}

	// The base is the original triangle in units
	base := back.Facets[1].Sides()
	if math.Abs(base.A-3) > 1e-6 || math.Abs(base.B-4) > 1e-6 || math.Abs(base.C-5) > 1e-6 {
		t.Errorf("unexpected base sides %+v", base)
	}
}

func TestWriteReadBinary(t *testing.T) {
	pts := geometry.Place(geometry.NewSides(3, 4, 5), geometry.Vector2{}, 1)
	model := Extrude("solid prism", pts, 1, 2)

	var buf bytes.Buffer
	if err := WriteBinary(&buf, model); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	if buf.Len() != 84+8*50 {
		t.Errorf("unexpected binary size %d", buf.Len())
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if back.Name != "solid prism" {
		t.Errorf("expected name from header, got %q", back.Name)
	}
	if back.FacetCount() != 8 {
		t.Fatalf("expected 8 facets, got %d", back.FacetCount())
	}

	// 2 * area 6 + perimeter 12 * height 2
	if math.Abs(back.SurfaceArea()-36) > 1e-4 {
		t.Errorf("expected surface area 36, got %v", back.SurfaceArea())
	}
}

func TestExtrudeNormals(t *testing.T) {
	pts := geometry.Place(geometry.NewSides(3, 4, 5), geometry.Vector2{}, 1)
	model := Extrude("tri", pts, 1, 1)

	if model.Facets[0].Normal.Z > -0.99 {
		t.Errorf("bottom should face down, got %v", model.Facets[0].Normal)
	}
	if model.Facets[1].Normal.Z < 0.99 {
		t.Errorf("top should face up, got %v", model.Facets[1].Normal)
	}
	// First side lies on AB, below the triangle
	if model.Facets[2].Normal.Y > -0.99 {
		t.Errorf("side AB should face -y, got %v", model.Facets[2].Normal)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.stl")
	if err := os.WriteFile(path, []byte(asciiFacet), 0o644); err != nil {
		t.Fatal(err)
	}

	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if model.FacetCount() != 1 {
		t.Errorf("expected 1 facet, got %d", model.FacetCount())
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
