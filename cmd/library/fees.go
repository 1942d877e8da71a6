package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Work with assessed fines",
}

var feesResyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Deliver every assessed fine to billing again",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		e, closeEngine, err := openEngine(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeEngine()

		delivered, err := e.ResyncFees(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "delivered %d fees\n", delivered)

		return nil
	},
}

func init() {
	feesCmd.AddCommand(feesResyncCmd)
}
