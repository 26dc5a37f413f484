package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gotri/internal/inputfile"
	"github.com/philipparndt/gotri/pkg/render"
	"github.com/philipparndt/gotri/pkg/watcher"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch <input.yaml>",
	Short: "Re-solve an input file whenever it changes",
	Long: `Watch a YAML or JSON input file and print the solutions every time it is
saved. With --out the first solution is also rendered to PNG. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Render the first solution to this PNG on every change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	update := func(string) {
		if err := solveFile(cmd, path); err != nil {
			logger.Warn("update failed", zap.String("file", path), zap.Error(err))
			printWarning(out, err.Error())
		}
	}

	fw, err := watcher.NewFileWatcher(cfg.GetDebounce(), logger)
	if err != nil {
		return err
	}
	if err := fw.Watch([]string{path}, update); err != nil {
		fw.Close()
		return err
	}

	update(path)
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", path)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fw.Run(ctx)
}

func solveFile(cmd *cobra.Command, path string) error {
	inputs, err := inputfile.Load(path)
	if err != nil {
		return err
	}

	results, err := solveAll(cmd, inputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for _, r := range results {
		printResult(out, r)
	}

	if watchOut != "" && len(results[0].Solutions) > 0 {
		return renderFirst(cmd.Context(), results[0])
	}
	return nil
}

func renderFirst(ctx context.Context, r result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	style := cfg.Style()
	frame := render.FitFrame(r.Solutions[0], nil, style)
	frame.Grid, frame.Construct = cfg.Render.Grid, cfg.Render.Construct

	return writeFile(watchOut, func(w io.Writer) error {
		return render.PNG(w, frame, style)
	})
}
