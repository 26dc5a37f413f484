package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipparndt/gotri/internal/config"
	"github.com/philipparndt/gotri/version"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gotri",
	Short: "Solve, classify and draw triangles from partial measurements",
	Long: `gotri solves a triangle from three known values: three sides (SSS),
two angles and a side (AAS/ASA), two sides and the included angle (SAS), or
two sides and a non-included angle (SSA), where zero, one or two triangles
may exist.

Results can be printed, rendered to PNG or SVG, and exported as STL or
OpenSCAD for printing.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		// Initialize logger
		zc := zap.NewProductionConfig()
		level, _ := cfg.Logging.ZapLevel()
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gotri.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
