package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schoollibrary/lendingengine/library/directory/memdirectory"
	"github.com/schoollibrary/lendingengine/library/directory/redisdirectory"
)

var errRedisNotConfigured = errors.New("LIBRARY_REDIS_ADDR is not set")

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Manage the member directory",
}

var directoryImportCmd = &cobra.Command{
	Use:   "import <seed.json>",
	Short: "Copy the members and sections of a JSON seed file into Redis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.RedisAddr == "" {
			return errRedisNotConfigured
		}

		seed, err := memdirectory.ReadSeedFile(args[0])
		if err != nil {
			return err
		}

		dir, err := redisdirectory.Connect(cmd.Context(), redisOptions(cfg))
		if err != nil {
			return err
		}
		defer dir.Close()

		if err = dir.Put(cmd.Context(), seed.Members, seed.Sections); err != nil {
			return err
		}

		logger.Info("directory imported", "members", len(seed.Members), "sections", len(seed.Sections))
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d members and %d sections\n", len(seed.Members), len(seed.Sections))

		return nil
	},
}

func init() {
	directoryCmd.AddCommand(directoryImportCmd)
}
