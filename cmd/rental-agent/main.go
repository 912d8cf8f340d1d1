package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/config"
	"github.com/joestump/rental-agent/internal/logging"
)

var (
	flagFormat string
	cfg        *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rental-agent",
		Short:         "Facebook post generator for a student rental",
		Long:          "Rental Agent writes marketing posts for 6777 Del Playa Dr from a curated template bank.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
		// With no subcommand the interactive menu runs.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newMenuCmd(),
		newGenerateCmd(),
		newWeekCmd(),
		newStatsCmd(),
		newOllamaCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
