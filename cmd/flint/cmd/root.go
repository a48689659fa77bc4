// Package cmd implements the flint command line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flint",
	Short: "Dense float32 tensor toolkit",
	Long: `flint is a minimal dense N-dimensional tensor core for Go.

It stores numeric data in a flat float32 buffer and exposes shape-aware
indexing, element-wise arithmetic, matrix multiplication and a structured
textual rendering.

Examples:
  flint demo
  flint version`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
// This allows tests to execute commands without calling os.Exit().
func GetRootCommand() *cobra.Command {
	return rootCmd
}
