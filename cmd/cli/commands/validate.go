package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file without generating a schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}

			app.Logger.Info("Configuration valid",
				zap.Int("year", cfg.Year),
				zap.Int("month", cfg.Month),
				zap.Int("people", len(cfg.People)),
				zap.Int("rooms", len(cfg.Rooms)),
				zap.Int("absences", len(cfg.Absences)))

			fmt.Printf("\n✓ Configuration valid: %d people, %d rooms, %d absence rules\n\n",
				len(cfg.People), len(cfg.Rooms), len(cfg.Absences))

			return nil
		},
	}
}
