package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormattersCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "formatters",
		Short: "List the available formatters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range formatters().List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
