package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/inputfile"
	"github.com/philipparndt/gotri/pkg/solver"
)

// inputFlags are the known values of a triangle given on the command line
type inputFlags struct {
	a, b, c                float64
	angleA, angleB, angleC float64
	file                   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.a, "a", 0, "Side a (opposite A)")
	cmd.Flags().Float64Var(&f.b, "b", 0, "Side b (opposite B)")
	cmd.Flags().Float64Var(&f.c, "c", 0, "Side c (opposite C)")
	cmd.Flags().Float64Var(&f.angleA, "angle-a", 0, "Angle A in degrees")
	cmd.Flags().Float64Var(&f.angleB, "angle-b", 0, "Angle B in degrees")
	cmd.Flags().Float64Var(&f.angleC, "angle-c", 0, "Angle C in degrees")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read the input from a YAML or JSON file")
}

// input builds the solver input. Only flags that were set count as known.
func (f *inputFlags) input(cmd *cobra.Command) (solver.Input, error) {
	if f.file != "" {
		inputs, err := inputfile.Load(f.file)
		if err != nil {
			return solver.Input{}, err
		}
		if len(inputs) > 1 {
			return solver.Input{}, fmt.Errorf("%s holds %d inputs, use batch", f.file, len(inputs))
		}
		return inputs[0], nil
	}

	var in solver.Input
	flags := []struct {
		name   string
		value  float64
		target **float64
	}{
		{"a", f.a, &in.SideA},
		{"b", f.b, &in.SideB},
		{"c", f.c, &in.SideC},
		{"angle-a", f.angleA, &in.AngleA},
		{"angle-b", f.angleB, &in.AngleB},
		{"angle-c", f.angleC, &in.AngleC},
	}
	for _, fl := range flags {
		if cmd.Flags().Changed(fl.name) {
			*fl.target = solver.Known(fl.value)
		}
	}

	if in.KnownSides()+in.KnownAngles() == 0 {
		return in, fmt.Errorf("no values given: set at least three of --a --b --c --angle-a --angle-b --angle-c, or --file")
	}
	return in, nil
}

// solveOne solves the input and picks the solution at index
func solveOne(in solver.Input, index int) (solver.Solution, *solver.Solution, error) {
	solutions := solver.Solve(in)
	if len(solutions) == 0 {
		return solver.Solution{}, nil, fmt.Errorf("no triangle satisfies %s (%s)", in, solver.Classify(in))
	}
	if index < 0 || index >= len(solutions) {
		return solver.Solution{}, nil, fmt.Errorf("solution %d does not exist, input has %d", index, len(solutions))
	}

	var alt *solver.Solution
	if len(solutions) == 2 {
		other := solutions[1-index]
		alt = &other
	}
	return solutions[index], alt, nil
}
