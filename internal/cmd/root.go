package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baires-transit/batransit"
	"github.com/baires-transit/batransit/config"
)

// App holds the client shared by all subcommands. It is built once, after
// flag parsing, so every subcommand sees the same configuration.
type App struct {
	Client *batransit.Client
}

func Execute() error {
	app := &App{}
	return NewRootCmd(app).Execute()
}

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "batransit",
		Short:         "Query real-time Buenos Aires transit data (Subte and trains)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			batransit.InitLogging()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.Client = batransit.New(cfg)
			return nil
		},
	}

	cmd.AddCommand(NewArrivalsCmd(app))
	cmd.AddCommand(NewStatusCmd(app))
	cmd.AddCommand(NewResolveCmd(app))
	cmd.AddCommand(NewLinesCmd(app))
	cmd.AddCommand(NewRamalesCmd(app))
	cmd.AddCommand(NewStationsCmd(app))
	cmd.AddCommand(NewSearchCmd(app))

	return cmd
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
