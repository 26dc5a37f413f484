package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gotri/pkg/render"
)

var (
	renderInput     inputFlags
	renderOut       string
	renderSVG       bool
	renderAlt       bool
	renderConstruct bool
	renderGrid      bool
	renderIndex     int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a solved triangle to PNG or SVG",
	Long: `Solve the input and draw the chosen solution, scaled to fit the image.
For ambiguous inputs --index selects the solution and --alt draws the other
one faintly behind it.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderInput.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "triangle.png", "Output file")
	renderCmd.Flags().BoolVar(&renderSVG, "svg", false, "Write SVG instead of PNG")
	renderCmd.Flags().BoolVar(&renderAlt, "alt", false, "Also draw the second solution of an ambiguous input")
	renderCmd.Flags().BoolVar(&renderConstruct, "construct", false, "Draw medians, altitudes, bisectors and centers")
	renderCmd.Flags().BoolVar(&renderGrid, "grid", false, "Draw the background grid")
	renderCmd.Flags().IntVar(&renderIndex, "index", 0, "Solution to draw when two exist")
}

func runRender(cmd *cobra.Command, args []string) error {
	in, err := renderInput.input(cmd)
	if err != nil {
		return err
	}

	sol, alt, err := solveOne(in, renderIndex)
	if err != nil {
		return err
	}
	if !renderAlt {
		alt = nil
	}

	style := cfg.Style()
	frame := render.FitFrame(sol, alt, style)
	frame.Grid, frame.Construct = cfg.Render.Grid, cfg.Render.Construct
	if cmd.Flags().Changed("grid") {
		frame.Grid = renderGrid
	}
	if cmd.Flags().Changed("construct") {
		frame.Construct = renderConstruct
	}

	file, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOut, err)
	}
	defer file.Close()

	if renderSVG {
		err = render.SVG(file, frame, style.Width, style.Height)
	} else {
		err = render.PNG(file, frame, style)
	}
	if err != nil {
		return err
	}

	logger.Info("rendered triangle", zap.String("file", renderOut), zap.Bool("svg", renderSVG))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", renderOut)
	return file.Close()
}
