package inputfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gotri/pkg/solver"
)

func TestDecodeSingleYAML(t *testing.T) {
	inputs, err := Decode([]byte("a: 7\nb: 9\nA: 40\n"), YAML)
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	in := inputs[0]
	assert.Equal(t, 7.0, *in.SideA)
	assert.Equal(t, 9.0, *in.SideB)
	assert.Nil(t, in.SideC)
	assert.Equal(t, 40.0, *in.AngleA)
	assert.Equal(t, solver.SSAAngleAWithB, solver.Classify(in))
}

func TestDecodeBatchYAML(t *testing.T) {
	data := []byte("inputs:\n  - {a: 3, b: 4, c: 5}\n  - {c: 2, A: 30, B: 60}\n")

	inputs, err := Decode(data, YAML)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, solver.SSS, solver.Classify(inputs[0]))
	assert.Equal(t, solver.AAS, solver.Classify(inputs[1]))
}

func TestDecodeJSON(t *testing.T) {
	inputs, err := Decode([]byte(`{"inputs": [{"a": 3, "b": 4, "C": 90}]}`), JSON)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, 90.0, *inputs[0].AngleC)
}

func TestDecodeEmpty(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"blank", "  \n", YAML},
		{"empty map", "{}", JSON},
		{"empty list", "inputs: []\n", YAML},
		{"no known fields", "d: 4\n", YAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, ErrEmpty)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("a: [1"), YAML)
	assert.Error(t, err)

	_, err = Decode([]byte(`{"a": "x"}`), JSON)
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, JSON, FormatFor("in.JSON"))
	assert.Equal(t, YAML, FormatFor("in.yaml"))
	assert.Equal(t, YAML, FormatFor("in"))
}

func TestEncodeLoad(t *testing.T) {
	inputs := []solver.Input{
		{SideA: solver.Known(3), SideB: solver.Known(4), SideC: solver.Known(5)},
		{SideA: solver.Known(7), SideB: solver.Known(9), AngleA: solver.Known(40)},
	}

	for _, name := range []string{"batch.yaml", "batch.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			data, err := Encode(inputs, FormatFor(path))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, data, 0o644))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, inputs, loaded)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
