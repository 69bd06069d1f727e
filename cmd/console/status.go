package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the school service is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if a.client.IsHealthy(cmd.Context()) {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %s is reachable\n", a.cfg.API.BaseURL)
				return nil
			}
			return fmt.Errorf("%s is not reachable", a.cfg.API.BaseURL)
		},
	}
}
