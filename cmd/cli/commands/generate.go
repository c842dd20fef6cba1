package commands

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the cleaning schedule for the configured month",
		Long:  "Run the assignment engine to assign every room of every week to a person, honoring absences, exclusions, and fairness goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath, _ := cmd.Flags().GetString("csv")
			seed, _ := cmd.Flags().GetInt64("seed")

			app.Logger.Debug("generate command",
				zap.String("csv", csvPath),
				zap.Int64("seed", seed))

			cfg, err := app.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if seed != 0 {
				cfg.Algorithm.Seed = seed
			}

			result, err := services.GenerateSchedule(cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			printSchedule(result)

			if csvPath != "" {
				if err := writeCSV(csvPath, result.Schedule); err != nil {
					return fmt.Errorf("failed to write CSV: %w", err)
				}
				fmt.Printf("CSV written to %s\n\n", csvPath)
			}

			return nil
		},
	}

	cmd.Flags().String("csv", "", "Write the schedule to the given CSV file")
	cmd.Flags().Int64("seed", 0, "Seed for score jitter (0 disables randomness)")

	return cmd
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

func printSchedule(result *services.GenerateResult) {
	sched := result.Schedule

	fmt.Printf("\n🧹 Turni di pulizia - %s%s %d%s\n\n", colorBold, result.MonthName, result.Year, colorReset)
	fmt.Printf("Run ID: %s\n\n", result.RunID)

	week := 0
	for _, entry := range sched.Entries {
		if entry.Week != week {
			week = entry.Week
			fmt.Printf("%sSettimana %d%s (%s - %s)\n",
				colorBold, week, colorReset,
				entry.PeriodStart.Format("02/01"),
				entry.PeriodEnd.Format("02/01"))
		}
		fmt.Printf("  %s%-12s%s %-10s %s %s\n",
			colorGreen, entry.Room, colorReset,
			entry.Person,
			entry.Weekday,
			entry.Date.Format("02/01"))
	}
	fmt.Println()

	if len(sched.Unassigned) > 0 {
		fmt.Printf("%s⚠️  Stanze non assegnate (%d):%s\n", colorYellow, len(sched.Unassigned), colorReset)
		for _, slot := range sched.Unassigned {
			fmt.Printf("  • Settimana %d: %s\n", slot.Week, slot.Room)
		}
		fmt.Println()
	}

	fmt.Printf("%sTotali per persona:%s\n", colorBold, colorReset)
	for _, person := range result.Input.People {
		fmt.Printf("  %-10s %d\n", person, sched.Stats.PerPerson[person])
	}
	fmt.Println()
}

// writeCSV renders the schedule as CSV, one row per entry.
func writeCSV(path string, sched *scheduler.Schedule) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"Settimana", "Periodo", "Stanza", "Persona", "Data", "Giorno"}); err != nil {
		return err
	}

	for _, entry := range sched.Entries {
		record := []string{
			fmt.Sprintf("Settimana %d", entry.Week),
			fmt.Sprintf("%s - %s", entry.PeriodStart.Format("02/01"), entry.PeriodEnd.Format("02/01")),
			entry.Room,
			entry.Person,
			entry.Date.Format("2006-01-02"),
			entry.Weekday,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}
