package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNotInstalled is returned when the openscad binary is not in PATH
var ErrNotInstalled = errors.New("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")

// RenderError carries the output of a failed openscad run
type RenderError struct {
	File   string
	Err    error
	Stderr string
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("failed to render %s: %v", e.File, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\nstderr: " + stderr
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer turns triangle scripts into STL meshes with the openscad binary
type Renderer struct {
	workDir string
	binary  string
	logger  *zap.Logger
}

// NewRenderer creates a renderer that resolves relative paths against workDir
func NewRenderer(workDir string, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
		logger:  logger,
	}
}

// Available reports whether the openscad binary can be found
func (r *Renderer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// RenderToSTL renders a scad file to outputFile
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if !r.Available() {
		return ErrNotInstalled
	}

	source, target := r.abs(scadFile), r.abs(outputFile)
	cmd := exec.CommandContext(ctx, r.binary, "-o", target, source)
	cmd.Dir = r.workDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug("running openscad", zap.String("source", source), zap.String("target", target))
	if err := cmd.Run(); err != nil {
		return &RenderError{File: scadFile, Err: err, Stderr: stderr.String()}
	}
	return nil
}

// RenderScript writes script to a temporary file in the work directory and
// renders it to outputFile
func (r *Renderer) RenderScript(ctx context.Context, script, outputFile string) error {
	if !r.Available() {
		return ErrNotInstalled
	}

	tmp, err := os.CreateTemp(r.workDir, "triangle-*.scad")
	if err != nil {
		return fmt.Errorf("failed to create script file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(script); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write script file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write script file: %w", err)
	}

	return r.RenderToSTL(ctx, tmp.Name(), outputFile)
}
