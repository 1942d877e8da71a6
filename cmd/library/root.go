package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/schoollibrary/lendingengine/library/shared/shell/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "library",
	Short:         "library - school library lending and reservation engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading LIBRARY_* variables (default: optional .env)")

	rootCmd.AddCommand(serveCmd, migrateCmd, feesCmd, directoryCmd)
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, cfg.NewLogger(os.Stderr), nil
}
