package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solveInput inputFlags
	solveJSON  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a triangle from three known values",
	Long: `Solve a triangle from any three known sides and angles, at least one of
them a side. Angles are in degrees.

Examples:
  gotri solve --a 3 --b 4 --c 5
  gotri solve --a 7 --b 9 --angle-a 40
  gotri solve --c 10 --angle-a 30 --angle-b 60 --json`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveInput.register(solveCmd)
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the result as JSON")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := solveInput.input(cmd)
	if err != nil {
		return err
	}

	r := newResult(in)
	logger.Debug("solved", zap.Stringer("input", in), zap.String("case", r.Case), zap.Int("solutions", len(r.Solutions)))

	if solveJSON {
		return writeJSON(cmd.OutOrStdout(), r)
	}
	printResult(cmd.OutOrStdout(), r)
	return nil
}
