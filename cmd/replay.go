package cmd

import (
	"fmt"

	"model-storage/core/logger"
	"model-storage/feature/replay"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	verifyReplay bool
	debugReplay  bool
)

// replayCmd runs a mutation script and prints the delivered updates.
var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a mutation script against an in-memory storage",
	Long: `Replay applies every batch of a YAML script to a fresh storage and prints
the operations delivered for each batch.

Examples:
  # Print the updates
  replay testdata/reorder.yaml

  # Also check every update reproduces the storage content
  replay testdata/reorder.yaml --verify`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := replay.LoadFile(args[0])
		if err != nil {
			return err
		}

		level := "warn"
		if debugReplay {
			level = "debug"
		}
		logg, err := logger.New(&logger.Config{Level: level, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		report, runErr := replay.NewRunner(logg, verifyReplay).Run(script)
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return runErr
	},
}

func init() {
	replayCmd.Flags().BoolVar(&verifyReplay, "verify", false, "Replay every update over the previous content and compare")
	replayCmd.Flags().BoolVar(&debugReplay, "debug", false, "Log every batch and addressing miss")
	RootCmd.AddCommand(replayCmd)
}
