package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baires-transit/batransit"
)

func NewRamalesCmd(app *App) *cobra.Command {
	var (
		line   string
		lineID int
	)

	cmd := &cobra.Command{
		Use:   "ramales",
		Short: "List the branches of a train line",
		RunE: func(cmd *cobra.Command, args []string) error {
			ramales, err := app.Client.ListTrainRamales(cmd.Context(), batransit.RamalListQuery{
				Line:   batransit.Line(line),
				LineID: lineID,
			})
			if err != nil {
				return err
			}
			return printJSON(ramales)
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Line name (e.g. Mitre)")
	cmd.Flags().IntVar(&lineID, "line-id", 0, "Provider line id")

	return cmd
}
