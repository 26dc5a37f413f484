package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/solver"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <a> <b> <c>",
	Short: "Classify a triangle by its three sides",
	Long:  "Solve a triangle from three sides and report whether it is scalene, isosceles or equilateral and acute, right or obtuse.",
	Args:  cobra.ExactArgs(3),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	var sides [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid side %q: %w", arg, err)
		}
		sides[i] = v
	}

	in := solver.Input{
		SideA: solver.Known(sides[0]),
		SideB: solver.Known(sides[1]),
		SideC: solver.Known(sides[2]),
	}
	sol, _, err := solveOne(in, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, caseStyle.Render(newResult(in).Case), in)
	printField(out, "Type", classificationOf(sol))
	printField(out, "Angles", fmt.Sprintf("A=%.2f°  B=%.2f°  C=%.2f°", sol.AngleA, sol.AngleB, sol.AngleC))
	return nil
}

func classificationOf(sol solver.Solution) string {
	return geometry.NewSides(sol.A, sol.B, sol.C).Classify().String()
}
