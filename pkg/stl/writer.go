package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Write encodes the model as ASCII STL
func Write(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, f := range m.Facets {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVertex(f.Normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range [3]Vertex{f.V1, f.V2, f.V3} {
			fmt.Fprintf(bw, "      vertex %s\n", formatVertex(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write STL: %w", err)
	}
	return nil
}

// WriteBinary encodes the model as binary STL
func WriteBinary(w io.Writer, m *Model) error {
	var header [80]byte
	copy(header[:], m.Name)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Facets))); err != nil {
		return fmt.Errorf("failed to write facet count: %w", err)
	}

	for i, f := range m.Facets {
		bf := binaryFacet{
			Normal: toFloat32(f.Normal),
			V1:     toFloat32(f.V1),
			V2:     toFloat32(f.V2),
			V3:     toFloat32(f.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, &bf); err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}
	return nil
}

func formatVertex(v Vertex) string {
	return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
}

func toFloat32(v Vertex) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
