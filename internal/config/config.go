package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// AbsenceRule describes one absence of a person: either an inclusive
// from/to date range, or a recurrence rule expanded within the target
// month (e.g. "FREQ=WEEKLY;BYDAY=TU").
type AbsenceRule struct {
	Person string `yaml:"person" validate:"required"`
	From   string `yaml:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To     string `yaml:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RRule  string `yaml:"rrule,omitempty"`
}

// Exclusion forbids rooms for a person during the first week of the month.
type Exclusion struct {
	Person string   `yaml:"person" validate:"required"`
	Rooms  []string `yaml:"rooms" validate:"required,min=1,dive,required"`
}

// FirstWeek holds the first-week-only preferences.
type FirstWeek struct {
	Priority []string    `yaml:"priority,omitempty"`
	Excluded []Exclusion `yaml:"excluded,omitempty" validate:"dive"`
}

// Algorithm holds the engine weights and flags. Zero values fall back to
// the engine defaults (0.5/0.3/0.2, avoid weekend, daily cap 3).
type Algorithm struct {
	BalanceWeight         float64  `yaml:"balanceWeight" validate:"min=0,max=1"`
	DayDistributionWeight float64  `yaml:"dayDistributionWeight" validate:"min=0,max=1"`
	QualityWeight         float64  `yaml:"qualityWeight" validate:"min=0,max=1"`
	AvoidWeekend          *bool    `yaml:"avoidWeekend,omitempty"`
	DailyCap              int      `yaml:"dailyCap,omitempty" validate:"omitempty,min=1"`
	Seed                  int64    `yaml:"seed,omitempty"`
	Relaxations           []string `yaml:"relaxations,omitempty" validate:"omitempty,dive,oneof=rotation day_spread daily_cap"`
}

// Config represents the application configuration
type Config struct {
	Year      int           `yaml:"year" validate:"required,min=1,max=9999"`
	Month     int           `yaml:"month" validate:"required,min=1,max=12"`
	People    []string      `yaml:"people" validate:"required,min=1,dive,required"`
	Rooms     []string      `yaml:"rooms" validate:"required,min=1,dive,required"`
	Absences  []AbsenceRule `yaml:"absences,omitempty" validate:"dive"`
	FirstWeek FirstWeek     `yaml:"firstWeek,omitempty"`
	Algorithm Algorithm     `yaml:"algorithm,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from spazzapp_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the rrule syntax of
// recurring absences, and the cross-references between people, rooms,
// exclusions, and priorities.
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	sum := cfg.Algorithm.BalanceWeight + cfg.Algorithm.DayDistributionWeight + cfg.Algorithm.QualityWeight
	if sum > 1.0 {
		return fmt.Errorf("algorithm weights sum to %.2f, must not exceed 1.0", sum)
	}

	people := stringSet(cfg.People)
	rooms := stringSet(cfg.Rooms)

	for i, absence := range cfg.Absences {
		if !people[absence.Person] {
			return fmt.Errorf("absences[%d]: unknown person %q", i, absence.Person)
		}
		hasRange := absence.From != "" && absence.To != ""
		if !hasRange && absence.RRule == "" {
			return fmt.Errorf("absences[%d]: needs either a from/to range or an rrule", i)
		}
		if absence.RRule != "" {
			if _, err := rrule.StrToRRule(absence.RRule); err != nil {
				return fmt.Errorf("invalid rrule in absences[%d]: %w", i, err)
			}
		}
	}

	for i, exclusion := range cfg.FirstWeek.Excluded {
		if !people[exclusion.Person] {
			return fmt.Errorf("firstWeek.excluded[%d]: unknown person %q", i, exclusion.Person)
		}
		for _, room := range exclusion.Rooms {
			if !rooms[room] {
				return fmt.Errorf("firstWeek.excluded[%d]: unknown room %q", i, room)
			}
		}
	}

	for _, room := range cfg.FirstWeek.Priority {
		if !rooms[room] {
			return fmt.Errorf("firstWeek.priority: unknown room %q", room)
		}
	}

	return nil
}

// findConfigFile searches for spazzapp_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "spazzapp_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

func stringSet(xs []string) map[string]bool {
	set := make(map[string]bool, len(xs))
	for _, x := range xs {
		set[x] = true
	}
	return set
}
