package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/openscad"
	"github.com/philipparndt/gotri/pkg/render"
	"github.com/philipparndt/gotri/pkg/stl"
)

var (
	exportInput     inputFlags
	exportDir       string
	exportName      string
	exportFormats   []string
	exportThickness float64
	exportIndex     int
	exportOpenSCAD  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a solved triangle in several formats at once",
	Long: `Solve the input and write the chosen solution as PNG, SVG, STL (an
extruded prism) and OpenSCAD script. With --openscad the triangle is also
rendered to STL by the openscad binary.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportInput.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportName, "name", "triangle", "Base name of the output files")
	exportCmd.Flags().StringSliceVar(&exportFormats, "formats", []string{"png", "svg", "stl", "scad"}, "Formats to write")
	exportCmd.Flags().Float64Var(&exportThickness, "thickness", 1, "Extrusion height for STL and OpenSCAD")
	exportCmd.Flags().IntVar(&exportIndex, "index", 0, "Solution to export when two exist")
	exportCmd.Flags().BoolVar(&exportOpenSCAD, "openscad", false, "Render the OpenSCAD script to STL with openscad")
}

type exporter func(w io.Writer) error

func runExport(cmd *cobra.Command, args []string) error {
	in, err := exportInput.input(cmd)
	if err != nil {
		return err
	}
	sol, _, err := solveOne(in, exportIndex)
	if err != nil {
		return err
	}
	if exportThickness <= 0 {
		return fmt.Errorf("thickness must be positive, got %v", exportThickness)
	}

	style := cfg.Style()
	frame := render.FitFrame(sol, nil, style)
	frame.Grid, frame.Construct = cfg.Render.Grid, cfg.Render.Construct
	pts, scale := frame.Primary.Points, frame.Scale

	exporters := map[string]exporter{
		"png": func(w io.Writer) error { return render.PNG(w, frame, style) },
		"svg": func(w io.Writer) error { return render.SVG(w, frame, style.Width, style.Height) },
		"stl": func(w io.Writer) error {
			return stl.Write(w, stl.Extrude(exportName, pts, scale, exportThickness))
		},
		"scad": func(w io.Writer) error {
			_, err := io.WriteString(w, openscad.Script(pts, scale, exportThickness))
			return err
		},
	}

	formats, err := uniqueFormats(exportFormats, exporters)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, len(formats))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, format := range formats {
		path := filepath.Join(exportDir, exportName+"."+format)
		write := exporters[format]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writeFile(path, write); err != nil {
				return err
			}
			logger.Debug("exported", zap.String("file", path))
			written[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}

	if exportOpenSCAD {
		return renderOpenSCAD(cmd, pts, scale)
	}
	return nil
}

// uniqueFormats lower-cases the requested formats, drops repeats and rejects
// unknown names. The order of first appearance is kept.
func uniqueFormats(requested []string, exporters map[string]exporter) ([]string, error) {
	seen := make(map[string]bool, len(requested))
	formats := make([]string, 0, len(requested))
	for _, format := range requested {
		name := strings.ToLower(strings.TrimSpace(format))
		if _, ok := exporters[name]; !ok {
			return nil, fmt.Errorf("unknown format %q (valid: png, svg, stl, scad)", format)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		formats = append(formats, name)
	}
	return formats, nil
}

func writeFile(path string, write exporter) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// renderOpenSCAD turns the triangle into a mesh with openscad
func renderOpenSCAD(cmd *cobra.Command, pts geometry.Points, scale float64) error {
	out := cmd.OutOrStdout()
	target := filepath.Join(exportDir, exportName+"-openscad.stl")
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	r := openscad.NewRenderer(exportDir, logger)
	if err := r.RenderScript(cmd.Context(), openscad.Script(pts, scale, exportThickness), target); err != nil {
		if errors.Is(err, openscad.ErrNotInstalled) {
			printWarning(out, "openscad is not installed, skipping mesh rendering")
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", target)
	return nil
}
