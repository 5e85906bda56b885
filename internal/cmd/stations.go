package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

func NewStationsCmd(app *App) *cobra.Command {
	var info bool

	cmd := &cobra.Command{
		Use:   "stations <ramalId>",
		Short: "List the stations of a train branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			if info {
				station, err := app.Client.GetStationInfo(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(station)
			}

			stations, err := app.Client.ListTrainStations(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(stations)
		},
	}

	cmd.Flags().BoolVar(&info, "info", false, "Treat the argument as a station id and print its full record")

	return cmd
}
