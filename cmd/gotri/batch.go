package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gotri/internal/inputfile"
	"github.com/philipparndt/gotri/pkg/solver"
)

var (
	batchJSON    bool
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <inputs.yaml>",
	Short: "Solve every input of a YAML or JSON file",
	Long: `Solve a list of inputs concurrently. The file holds a single input or
a list under "inputs". Results are printed in file order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the results as JSON")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", runtime.NumCPU(), "Number of concurrent solvers")
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := inputfile.Load(args[0])
	if err != nil {
		return err
	}

	results, err := solveAll(cmd, inputs)
	if err != nil {
		return err
	}
	logger.Info("batch solved", zap.String("file", args[0]), zap.Int("inputs", len(inputs)))

	if batchJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	out := cmd.OutOrStdout()
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printHeading(out, fmt.Sprintf("Input %d", i+1))
		printResult(out, r)
	}
	return nil
}

// solveAll solves the inputs concurrently, keeping their order
func solveAll(cmd *cobra.Command, inputs []solver.Input) ([]result, error) {
	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(cmd.Context())
	if batchWorkers > 0 {
		g.SetLimit(batchWorkers)
	}
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = newResult(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
