package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kioskctl",
		Short:         "Operator tooling for the Gateway Discoveries kiosk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "config.yaml", "Path to the kiosk config file")

	root.AddCommand(newDBCheckCmd(), newFlightsCmd(), newShareCmd())
	return root
}
