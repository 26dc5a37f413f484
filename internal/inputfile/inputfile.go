// Package inputfile decodes triangle inputs from YAML or JSON files.
//
// A file holds either a single input
//
//	a: 7
//	b: 9
//	A: 40
//
// or a list under "inputs":
//
//	inputs:
//	  - {a: 3, b: 4, c: 5}
//	  - {a: 7, b: 9, A: 40}
package inputfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gotri/pkg/solver"
)

// ErrEmpty is returned for a document without any input
var ErrEmpty = errors.New("input file contains no triangle")

// Format selects the decoder
type Format int

const (
	YAML Format = iota
	JSON
)

// FormatFor picks the format from a file extension. Unknown extensions are
// read as YAML, which also accepts JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// document is the batch layout
type document struct {
	Inputs []solver.Input `yaml:"inputs" json:"inputs"`
}

// Load reads all inputs from a file
func Load(path string) ([]solver.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	inputs, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return inputs, nil
}

// Decode parses a single input or an input list
func Decode(data []byte, format Format) ([]solver.Input, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var probe map[string]any
	if err := unmarshal(data, format, &probe); err != nil {
		return nil, err
	}
	if len(probe) == 0 {
		return nil, ErrEmpty
	}

	if _, ok := probe["inputs"]; ok {
		var doc document
		if err := unmarshal(data, format, &doc); err != nil {
			return nil, err
		}
		if len(doc.Inputs) == 0 {
			return nil, ErrEmpty
		}
		return doc.Inputs, nil
	}

	var in solver.Input
	if err := unmarshal(data, format, &in); err != nil {
		return nil, err
	}
	if in.KnownSides()+in.KnownAngles() == 0 {
		return nil, ErrEmpty
	}
	return []solver.Input{in}, nil
}

func unmarshal(data []byte, format Format, v any) error {
	if format == JSON {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}

// Encode writes inputs in the given format, as a single input when there is
// exactly one
func Encode(inputs []solver.Input, format Format) ([]byte, error) {
	var v any = document{Inputs: inputs}
	if len(inputs) == 1 {
		v = inputs[0]
	}

	if format == JSON {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}
