package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baires-transit/batransit"
)

func NewArrivalsCmd(app *App) *cobra.Command {
	var (
		line      string
		direction string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "arrivals <station>",
		Short: "Upcoming arrivals for a station, Subte and trains merged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arrivals, err := app.Client.GetArrivals(cmd.Context(), batransit.ArrivalsQuery{
				Station:   args[0],
				Line:      batransit.Line(line),
				Direction: direction,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			return printJSON(arrivals)
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Restrict to one line (e.g. A, Mitre)")
	cmd.Flags().StringVar(&direction, "direction", "", "Filter train arrivals by destination")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of arrivals (default 5)")

	return cmd
}
