package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()
		if versionJSON {
			return writeJSON(out, info)
		}

		fmt.Fprintf(out, "gotri %s\n", info)
		fmt.Fprintf(out, "  commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  built:  %s\n", info.BuildDate)
		fmt.Fprintf(out, "  go:     %s %s\n", info.GoVersion, info.Platform)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(versionCmd)
}
