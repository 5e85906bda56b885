package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baires-transit/batransit"
)

func NewStatusCmd(app *App) *cobra.Command {
	var (
		line           string
		transitType    string
		includeRamales bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Service status per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if includeRamales {
				statuses, err := app.Client.GetTrainStatus(cmd.Context(), batransit.TrainStatusQuery{
					Line:           batransit.Line(line),
					IncludeRamales: true,
				})
				if err != nil {
					return err
				}
				return printJSON(statuses)
			}

			statuses, err := app.Client.GetStatus(cmd.Context(), batransit.StatusQuery{
				Line: batransit.Line(line),
				Type: batransit.Type(transitType),
			})
			if err != nil {
				return err
			}
			return printJSON(statuses)
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Restrict to one line")
	cmd.Flags().StringVar(&transitType, "type", "", "Restrict to one system: subte or train")
	cmd.Flags().BoolVar(&includeRamales, "ramales", false, "Train status with per-branch breakdown")

	return cmd
}
