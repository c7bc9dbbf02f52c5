package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mkharness/internal/config"
)

var (
	// Global flags
	verbose   bool
	workspace string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mkharness",
	Short: "Mega Knights harness analytics and texture tooling",
	Long: `mkharness drives the Mega Knights autonomous build harness:

  analyze    summarize session transcripts into a cost and usage report
  status     render the task board from feature_list.json
  progress   filter a stream-json session into one-line progress updates
  textures   generate the resource pack's pixel art assets

Reports and the task list live under the workspace's .claude directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if workspace == "" {
			if workspace, err = os.Getwd(); err != nil {
				return err
			}
		}
		cfg, err = config.Load(workspace)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (default: current directory)")
	rootCmd.AddCommand(analyzeCmd, statusCmd, progressCmd, texturesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
