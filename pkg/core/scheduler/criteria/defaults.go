package criteria

import (
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
)

// Defaults returns the standard criterion set wired with the weights and
// flags of the given config: balance, rotation, and day quality.
func Defaults(cfg scheduler.Config) []scheduler.Criterion {
	return []scheduler.Criterion{
		NewBalanceCriterion(cfg.BalanceWeight),
		NewRotationCriterion(cfg.QualityWeight),
		NewDayQualityCriterion(cfg.DayDistributionWeight, cfg.AvoidWeekend),
	}
}
