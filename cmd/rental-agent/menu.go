package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/menu"
	"github.com/joestump/rental-agent/internal/ollama"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive terminal menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd)
		},
	}
}

func runMenu(cmd *cobra.Command) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := menu.New(gen, ollama.New(cfg), cmd.InOrStdin(), cmd.OutOrStdout())
	m.OutputDir = cfg.OutputDir

	database, archive, err := openArchive()
	if err != nil {
		// The menu still works without the archive; saves only go to files.
		cmd.PrintErrln("archive unavailable:", err)
	} else {
		defer closeDB(database)
		m.Archive = archive
	}
	return m.Run(ctx)
}
