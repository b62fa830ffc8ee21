package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"infinite-canvas/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "infinite-canvas",
	Short: "An infinite canvas for drawing, selecting and resizing rectangles",
	Long: `infinite-canvas opens a pan-and-zoom editor for a board of rectangles.
The board is stored as YAML. The subcommands inspect and generate boards
without opening a window.

Settings are read from CANVAS_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		lvl, err := c.SlogLevel()
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		slog.SetDefault(logger)
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(cfg, logger)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
