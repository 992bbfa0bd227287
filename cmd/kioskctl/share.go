package main

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/kiosk/internal/service/route"
	"github.com/spf13/cobra"
)

func newShareCmd() *cobra.Command {
	var origin string

	cmd := &cobra.Command{
		Use:   "share <destination-id>...",
		Short: "Print the share link for a route",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if origin == "" {
				return errors.New("--origin is required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), route.ShareLink(origin, args))
			return nil
		},
	}
	cmd.Flags().StringVar(&origin, "origin", "", "Public origin of the kiosk site")
	return cmd
}
