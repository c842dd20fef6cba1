package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/GiuseppeBellamacina/SpazzApp/internal/config"
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler/criteria"
)

// GenerateResult represents the result of one schedule generation run
type GenerateResult struct {
	// RunID uniquely identifies this generation run
	RunID string

	Year      int
	Month     time.Month
	MonthName string

	// Input is the engine input built from the configuration, kept so
	// consumers can re-validate or round-trip the output contract
	Input scheduler.Input

	// Schedule is the engine output
	Schedule *scheduler.Schedule
}

// GenerateSchedule builds the engine input from the configuration, runs the
// assignment engine, and reports the outcome. Recurring absences are
// expanded to concrete dates within the target month before the run.
func GenerateSchedule(cfg *config.Config, logger *zap.Logger) (*GenerateResult, error) {
	month := time.Month(cfg.Month)

	logger.Info("Generating schedule",
		zap.Int("year", cfg.Year),
		zap.String("month", scheduler.MonthName(month)),
		zap.Int("people", len(cfg.People)),
		zap.Int("rooms", len(cfg.Rooms)))

	input, err := buildInput(cfg)
	if err != nil {
		return nil, err
	}

	crits := criteria.Defaults(input.Config)

	sched, err := scheduler.Generate(input, crits)
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed: %w", err)
	}

	for _, ev := range sched.Relaxations {
		logger.Debug("Relaxation applied",
			zap.Int("week", ev.Week),
			zap.String("room", ev.Room),
			zap.String("step", string(ev.Step)))
	}
	for _, slot := range sched.Unassigned {
		logger.Warn("Slot left unassigned after full relaxation",
			zap.Int("week", slot.Week),
			zap.String("room", slot.Room))
	}

	if violations := scheduler.ValidateSchedule(sched, input); len(violations) > 0 {
		for _, v := range violations {
			logger.Error("Schedule invariant violated",
				zap.Int("week", v.Week),
				zap.String("room", v.Room),
				zap.String("description", v.Description))
		}
		return nil, fmt.Errorf("generated schedule violates %d invariants", len(violations))
	}

	result := &GenerateResult{
		RunID:     uuid.New().String(),
		Year:      cfg.Year,
		Month:     month,
		MonthName: scheduler.MonthName(month),
		Input:     input,
		Schedule:  sched,
	}

	logger.Info("Schedule generated",
		zap.String("run_id", result.RunID),
		zap.Int("weeks", len(sched.Weeks)),
		zap.Int("entries", len(sched.Entries)),
		zap.Int("unassigned", len(sched.Unassigned)),
		zap.Int("relaxations", len(sched.Relaxations)))

	return result, nil
}

// buildInput converts the validated configuration into the engine's input
// contract.
func buildInput(cfg *config.Config) (scheduler.Input, error) {
	month := time.Month(cfg.Month)

	absences, err := expandAbsences(cfg)
	if err != nil {
		return scheduler.Input{}, err
	}

	excluded := make(map[string][]string, len(cfg.FirstWeek.Excluded))
	for _, exclusion := range cfg.FirstWeek.Excluded {
		excluded[exclusion.Person] = append(excluded[exclusion.Person], exclusion.Rooms...)
	}

	engineCfg := scheduler.DefaultConfig()
	alg := cfg.Algorithm
	if alg.BalanceWeight != 0 || alg.DayDistributionWeight != 0 || alg.QualityWeight != 0 {
		engineCfg.BalanceWeight = alg.BalanceWeight
		engineCfg.DayDistributionWeight = alg.DayDistributionWeight
		engineCfg.QualityWeight = alg.QualityWeight
	}
	if alg.AvoidWeekend != nil {
		engineCfg.AvoidWeekend = *alg.AvoidWeekend
	}
	if alg.DailyCap > 0 {
		engineCfg.DailyCap = alg.DailyCap
	}
	if len(alg.Relaxations) > 0 {
		engineCfg.Relaxations = nil
		for _, step := range alg.Relaxations {
			engineCfg.Relaxations = append(engineCfg.Relaxations, scheduler.Relaxation(step))
		}
	}
	if alg.Seed != 0 {
		engineCfg.Rand = rand.New(rand.NewSource(alg.Seed))
	}

	return scheduler.Input{
		People:            cfg.People,
		Rooms:             cfg.Rooms,
		Year:              cfg.Year,
		Month:             month,
		Absences:          absences,
		FirstWeekExcluded: excluded,
		FirstWeekPriority: cfg.FirstWeek.Priority,
		Config:            engineCfg,
	}, nil
}

// expandAbsences turns every absence rule into date intervals: ranges are
// parsed as-is, recurrence rules are expanded to single-day intervals
// within the target month.
func expandAbsences(cfg *config.Config) (scheduler.Absences, error) {
	monthStart := time.Date(cfg.Year, time.Month(cfg.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	absences := scheduler.Absences{}
	for i, rule := range cfg.Absences {
		if rule.From != "" && rule.To != "" {
			from, err := time.ParseInLocation("2006-01-02", rule.From, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("absences[%d]: failed to parse from date: %w", i, err)
			}
			to, err := time.ParseInLocation("2006-01-02", rule.To, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("absences[%d]: failed to parse to date: %w", i, err)
			}
			absences[rule.Person] = append(absences[rule.Person], scheduler.DateInterval{Start: from, End: to})
		}

		if rule.RRule == "" {
			continue
		}

		opts, err := rrule.StrToROption(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("absences[%d]: invalid rrule: %w", i, err)
		}
		opts.Dtstart = monthStart
		recurrence, err := rrule.NewRRule(*opts)
		if err != nil {
			return nil, fmt.Errorf("absences[%d]: invalid rrule: %w", i, err)
		}

		for _, occurrence := range recurrence.Between(monthStart, monthEnd.AddDate(0, 0, 1), true) {
			day := time.Date(occurrence.Year(), occurrence.Month(), occurrence.Day(), 0, 0, 0, 0, time.UTC)
			if day.After(monthEnd) {
				continue
			}
			absences[rule.Person] = append(absences[rule.Person], scheduler.DateInterval{Start: day, End: day})
		}
	}

	return absences, nil
}
