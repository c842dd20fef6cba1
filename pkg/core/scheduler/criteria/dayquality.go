package criteria

import (
	"time"

	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
)

// Raw day-quality constants.
const (
	// RawWeekdayBonus / RawWeekendBonus apply when avoid-weekend is set
	RawWeekdayBonus = 30.0
	RawWeekendBonus = 10.0

	// RawNewWeekdayBonus rewards a weekday the person has not been assigned
	// on yet this month, keeping their weekday distribution even
	RawNewWeekdayBonus = 20.0
)

// rawDayShape prefers mid-week days so assignments cluster around the
// middle of the week rather than piling onto Monday.
var rawDayShape = map[time.Weekday]float64{
	time.Monday:    20,
	time.Tuesday:   25,
	time.Wednesday: 30,
	time.Thursday:  25,
	time.Friday:    20,
	time.Saturday:  10,
	time.Sunday:    5,
}

// DayQualityCriterion scores which date of the week a room lands on.
//
// Validity:
//   - Vetoes a date already used by another room of the current week, so
//     duties spread across distinct days. Suspended by the day-spread
//     relaxation (short clipped weeks need to share dates).
//
// Score:
//   - Weekday-over-weekend bonus when avoid-weekend is set, a mid-week
//     shape bonus, and a bonus for a weekday the person has not used yet.
type DayQualityCriterion struct {
	weight       float64
	avoidWeekend bool
}

// NewDayQualityCriterion creates a DayQualityCriterion with the given
// weight and avoid-weekend flag.
func NewDayQualityCriterion(weight float64, avoidWeekend bool) *DayQualityCriterion {
	return &DayQualityCriterion{weight: weight, avoidWeekend: avoidWeekend}
}

func (c *DayQualityCriterion) Name() string {
	return "DayQuality"
}

func (c *DayQualityCriterion) IsCandidateValid(state *scheduler.State, cand scheduler.Candidate, room string, relaxed scheduler.RelaxSet) bool {
	if relaxed.Has(scheduler.RelaxDaySpread) {
		return true
	}
	return !state.DateUsedThisWeek(cand.Date)
}

func (c *DayQualityCriterion) Score(state *scheduler.State, cand scheduler.Candidate, room string) float64 {
	score := RawWeekdayBonus
	if c.avoidWeekend && scheduler.IsWeekend(cand.Date) {
		score = RawWeekendBonus
	}

	score += rawDayShape[cand.Date.Weekday()]

	if !cand.Person.HasWeekday(cand.Date.Weekday()) {
		score += RawNewWeekdayBonus
	}

	return score
}

func (c *DayQualityCriterion) Weight() float64 {
	return c.weight
}
