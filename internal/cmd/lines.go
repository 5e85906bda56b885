package cmd

import (
	"github.com/spf13/cobra"
)

func NewLinesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List metropolitan train lines and their state",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := app.Client.ListTrainLines(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(lines)
		},
	}
}
