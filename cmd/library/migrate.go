package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the events schema of the configured store up to date",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		if err = cfg.Migrate(logger); err != nil {
			return err
		}

		logger.Info("events schema is up to date", "store", cfg.Store)

		return nil
	},
}
