package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Domenick1991/kiosk/internal/service/flights"
	"github.com/spf13/cobra"
)

func newFlightsCmd() *cobra.Command {
	var criteria flights.Criteria

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Search the kiosk flight list",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := flights.Search(flights.Flights(), criteria)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FLIGHT\tAIRLINE\tFROM\tTO\tDEPARTS\tSTATUS\tPRICE")
			for _, f := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\tR%d\n",
					f.FlightNumber, f.Airline, f.OriginCode, f.DestinationCode, f.DepartureTime, f.Status, f.PriceRand)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d flights\n", len(results))
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.Origin, "origin", flights.Any, "Origin airport code")
	cmd.Flags().StringVar(&criteria.Destination, "destination", flights.Any, "Destination airport code")
	cmd.Flags().StringVar(&criteria.Airline, "airline", flights.Any, "Airline name")
	return cmd
}
