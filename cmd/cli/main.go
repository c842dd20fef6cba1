package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GiuseppeBellamacina/SpazzApp/cmd/cli/commands"
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/utils/logging"
)

var app *commands.AppContext

func main() {
	rootCmd := &cobra.Command{
		Use:   "spazzapp",
		Short: "SpazzApp CLI - Generate monthly cleaning schedules",
		Long:  `A CLI tool that assigns recurring cleaning duties to a group of people over a calendar month, balancing workload and respecting absences.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default: spazzapp_config.yaml in cwd or home)")

	rootCmd.AddCommand(commands.GenerateCmd(appRef()))
	rootCmd.AddCommand(commands.ValidateCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating it empty so commands built
// before initApp runs still point at the same instance.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger and records the config path flag
func initApp(cmd *cobra.Command) error {
	var err error
	app = appRef()

	app.Logger, err = logging.InitLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.ConfigPath, _ = cmd.Flags().GetString("config")

	return nil
}
