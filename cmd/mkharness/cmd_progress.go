package main

import (
	"os"

	"github.com/spf13/cobra"

	"mkharness/internal/stream"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Filter stream-json session output into progress lines",
	Long: `Reads stream-json events on stdin and writes one concise line per tool
call, text snippet, and final result to stderr. Stdout is untouched, so
the command can sit inside a pipeline:

  claude -p --output-format stream-json "..." | mkharness progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stream.New(os.Stderr).Run(os.Stdin)
	},
}
