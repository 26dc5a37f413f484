package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/pkg/solver"
	"github.com/philipparndt/gotri/pkg/stl"
)

var (
	facetIndex int
	facetJSON  bool
)

var facetCmd = &cobra.Command{
	Use:   "facet <file.stl>",
	Short: "Solve one facet of an STL mesh",
	Long:  "Read an ASCII or binary STL file and solve the facet at --index from its three edge lengths.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFacet,
}

func init() {
	rootCmd.AddCommand(facetCmd)

	facetCmd.Flags().IntVarP(&facetIndex, "index", "i", 0, "Facet index")
	facetCmd.Flags().BoolVar(&facetJSON, "json", false, "Print the result as JSON")
}

func runFacet(cmd *cobra.Command, args []string) error {
	model, err := stl.Parse(args[0])
	if err != nil {
		return err
	}

	f, err := model.Facet(facetIndex)
	if err != nil {
		return err
	}

	sides := f.Sides()
	r := newResult(solver.Input{
		SideA: solver.Known(sides.A),
		SideB: solver.Known(sides.B),
		SideC: solver.Known(sides.C),
	})

	if facetJSON {
		return writeJSON(cmd.OutOrStdout(), r)
	}

	out := cmd.OutOrStdout()
	printHeading(out, fmt.Sprintf("Facet %d of %d", facetIndex, model.FacetCount()))
	if model.Name != "" {
		printField(out, "Model", model.Name)
	}
	printField(out, "Vertices", fmt.Sprintf("%v %v %v", f.V1, f.V2, f.V3))
	fmt.Fprintln(out)
	printResult(out, r)
	return nil
}
