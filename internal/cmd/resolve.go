package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baires-transit/batransit"
	"github.com/baires-transit/batransit/subte"
)

func NewResolveCmd(app *App) *cobra.Command {
	var (
		line        string
		transitType string
		ramalID     int
	)

	cmd := &cobra.Command{
		Use:   "resolve <station>",
		Short: "Resolve a station name to a single station or candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch transitType {
			case "", "subte":
				return printJSON(subte.Resolve(args[0], line))
			case "train":
				res, err := app.Client.ResolveTrainStation(cmd.Context(), batransit.TrainStationQuery{
					Query:   args[0],
					Line:    batransit.Line(line),
					RamalID: ramalID,
				})
				if err != nil {
					return err
				}
				return printJSON(res)
			default:
				return fmt.Errorf("unknown type %q: use subte or train", transitType)
			}
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Restrict to one line")
	cmd.Flags().StringVar(&transitType, "type", "", "System to resolve against: subte (default) or train")
	cmd.Flags().IntVar(&ramalID, "ramal", 0, "Restrict train resolution to one branch")

	return cmd
}
