package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semgraph/internal/config"
	"github.com/katalvlaran/semgraph/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what the root command resolves before any subcommand runs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    *printer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "semgraph",
		Short: "Semantic concept graphs and similarity-aware path search",
		Long: `semgraph builds graphs whose edges carry a similarity score in [0, 1]
and searches them for the chain of concepts with the highest combined
similarity.

Graphs are stored as JSON or YAML records (chosen by file extension).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newBuildCmd(a),
		newStatsCmd(a),
		newSearchCmd(a),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if _, err = logging.ParseLevel(lvl); err != nil {
			return err
		}
		cfg.Log.Level = lvl
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	jsonOut, _ := cmd.Flags().GetBool("json")
	a.out = newPrinter(cmd.OutOrStdout(), jsonOut)

	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.out.json {
				return a.out.JSON(map[string]string{"version": version})
			}
			return a.out.Linef("semgraph version %s", version)
		},
	}
}
