package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baires-transit/batransit"
)

func NewSearchCmd(app *App) *cobra.Command {
	var (
		line    string
		ramalID int
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search train stations by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stations, err := app.Client.SearchTrainStations(cmd.Context(), batransit.TrainStationQuery{
				Query:   args[0],
				Line:    batransit.Line(line),
				RamalID: ramalID,
				Limit:   limit,
			})
			if err != nil {
				return err
			}
			return printJSON(stations)
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Restrict to one line")
	cmd.Flags().IntVar(&ramalID, "ramal", 0, "Restrict to one branch")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")

	return cmd
}
