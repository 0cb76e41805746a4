package main

import (
	"fmt"

	"github.com/MichalMitros/supplier-feed-sync/internal/feed"
	"github.com/spf13/cobra"
)

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported feed dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range feed.Dialects() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
