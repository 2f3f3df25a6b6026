// Package cmd provides the CLI commands for elkgo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	BuildDate = "2026-07-31"
	GitCommit = "HEAD"
)

var rootCmd = &cobra.Command{
	Use:   "elkgo",
	Short: "elkgo - compute geometric layouts for graph description files",
	Long: `elkgo reads a graph description (nodes, edges, ports, labels, sizes)
as JSON and writes the same graph back with computed coordinates: node
positions, edge routes, and container sizes.

Examples:
  # Lay out a graph read from a file
  elkgo layout graph.json -o laid-out.json

  # Lay out a graph read from stdin, written to stdout
  cat graph.json | elkgo layout - > laid-out.json

  # Force a specific algorithm and direction
  elkgo layout graph.json --algorithm stress --direction RIGHT

  # Watch mode: re-layout whenever the input file changes
  elkgo layout graph.json -o laid-out.json --watch

For more information, visit: https://github.com/mark/elkgo`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(algorithmsCmd)
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
