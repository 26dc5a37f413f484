package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return model, nil
}

// Read decodes an ASCII or binary STL stream
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	// Binary headers may also start with "solid", so look for a facet too.
	// Anything shorter than an empty binary file must be ASCII.
	head, _ := br.Peek(512)
	if bytes.HasPrefix(head, []byte("solid")) && (bytes.Contains(head, []byte("facet")) || len(head) < 84) {
		return parseASCII(br)
	}

	return parseBinary(br)
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal Vertex
	var vertices []Vertex
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVertex(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid normal: %w", lineNo, err)
				}
				currentNormal = v
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices", lineNo, len(vertices))
			}
			model.AddFacet(Facet{
				Normal: currentNormal,
				V1:     vertices[0],
				V2:     vertices[1],
				V3:     vertices[2],
			})
			vertices = vertices[:0] // Clear vertices
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVertex(fields []string) (Vertex, error) {
	var xyz [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vertex{}, err
		}
		xyz[i] = v
	}
	return Vertex{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// binaryFacet is the on-disk layout of one binary facet
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Extract name from header (if present)
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	// Read facet count
	var facetCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &facetCount); err != nil {
		return nil, fmt.Errorf("failed to read facet count: %w", err)
	}

	for i := uint32(0); i < facetCount; i++ {
		var bf binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &bf); err != nil {
			return nil, fmt.Errorf("failed to read facet %d: %w", i, err)
		}
		model.AddFacet(Facet{
			Normal: fromFloat32(bf.Normal),
			V1:     fromFloat32(bf.V1),
			V2:     fromFloat32(bf.V2),
			V3:     fromFloat32(bf.V3),
		})
	}

	return model, nil
}

func fromFloat32(v [3]float32) Vertex {
	return Vertex{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
