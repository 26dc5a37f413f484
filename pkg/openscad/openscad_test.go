package openscad

import (
	"context"
	"errors"
	"os"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/philipparndt/gotri/pkg/geometry"
)

func TestScript(t *testing.T) {
	pts := geometry.Place(geometry.NewSides(3, 4, 5), geometry.NewVector2(100, 100), 2)
	script := Script(pts, 2, 1.5)

	expected := "// triangle a=3.000 b=4.000 c=5.000\n" +
		"linear_extrude(height = 1.500)\n" +
		"  polygon(points = [[0.000, 0.000], [5.000, 0.000], [3.200, 2.400]]);\n"

	if script != expected {
		t.Errorf("unexpected script:\n%s\nwant:\n%s", script, expected)
	}
}

func missingRenderer(t *testing.T) *Renderer {
	r := NewRenderer(t.TempDir(), zaptest.NewLogger(t))
	r.binary = "openscad-does-not-exist"
	return r
}

func TestRenderToSTLNotInstalled(t *testing.T) {
	r := missingRenderer(t)
	if r.Available() {
		t.Fatalf("binary should not be available")
	}

	err := r.RenderToSTL(context.Background(), "tri.scad", "tri.stl")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestRenderScriptNotInstalled(t *testing.T) {
	r := missingRenderer(t)

	err := r.RenderScript(context.Background(), "cube();", "tri.stl")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}

	entries, err := os.ReadDir(r.workDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no script file should be left behind, found %d", len(entries))
	}
}

func TestRenderError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &RenderError{File: "tri.scad", Err: cause, Stderr: "ERROR: Parser error\n"}

	if !errors.Is(err, cause) {
		t.Errorf("RenderError should unwrap to its cause")
	}
	want := "failed to render tri.scad: exit status 1\nstderr: ERROR: Parser error"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	err.Stderr = "  "
	if err.Error() != "failed to render tri.scad: exit status 1" {
		t.Errorf("blank stderr should be omitted, got %q", err.Error())
	}
}
