package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	batchFiles []string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "roster",
		Short: "Validate, classify and summarize user batches",
		Long: `roster runs batches of user records through the validate, classify and
summarize pipeline and prints a summary for each batch.

Without flags it runs the two built-in sample batches: a valid one and one
whose second record carries the age "thirty".`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), batchFiles, verbose)
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringArrayVar(&batchFiles, "batch", nil, "batch file to process (.yaml, .yml or .toml); repeatable")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log stage events to stderr")
}
