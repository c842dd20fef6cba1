package scheduler

import (
	"math/rand"
	"time"
)

// WeekPeriod is a contiguous run of calendar days (at most 7) used as the
// scheduling unit. The first and last period of a month may be shorter than
// a full week because periods are clipped to the month boundaries.
type WeekPeriod struct {
	// Index is 1-based and chronological
	Index int

	Start time.Time
	End   time.Time
}

// Days returns every date in the period in chronological order.
func (w WeekPeriod) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the date falls inside the period (inclusive bounds).
func (w WeekPeriod) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// DateInterval is an inclusive [Start, End] span of days.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// Absences maps a person's name to their absence intervals. Overlapping or
// duplicate intervals for the same person are tolerated; only the union of
// coverage matters.
type Absences map[string][]DateInterval

// Relaxation identifies one soft constraint that can be dropped when a room
// has no feasible candidate left.
type Relaxation string

const (
	// RelaxRotation drops the monthly rotation rule (no repeat room/person
	// pairing within the month, no consecutive-week repeat).
	RelaxRotation Relaxation = "rotation"

	// RelaxDaySpread drops the preference that each room of a week is
	// cleaned on a distinct date.
	RelaxDaySpread Relaxation = "day_spread"

	// RelaxDailyCap raises the daily assignment cap by one.
	RelaxDailyCap Relaxation = "daily_cap"
)

// DefaultRelaxations is the order in which soft constraints are dropped when
// a room cannot be filled.
func DefaultRelaxations() []Relaxation {
	return []Relaxation{RelaxRotation, RelaxDaySpread, RelaxDailyCap}
}

// RelaxSet is the set of relaxations currently in effect for one selection.
type RelaxSet map[Relaxation]bool

// Has reports whether the given relaxation is in effect.
func (r RelaxSet) Has(step Relaxation) bool {
	return r[step]
}

// Config contains the tunable weights and flags of the engine. The weights
// are relative multipliers applied to raw criterion scores, not a strict
// partition; their sum must not exceed 1.0.
type Config struct {
	// BalanceWeight multiplies the fairness sub-score (default 0.5)
	BalanceWeight float64

	// DayDistributionWeight multiplies the day-quality sub-score (default 0.3)
	DayDistributionWeight float64

	// QualityWeight multiplies the rotation sub-score (default 0.2)
	QualityWeight float64

	// AvoidWeekend prefers Monday-Friday over Saturday/Sunday
	AvoidWeekend bool

	// DailyCap is the maximum number of assignments sharing one date (default 3)
	DailyCap int

	// Relaxations is the order in which soft constraints are dropped for a
	// room with an empty candidate pool
	Relaxations []Relaxation

	// Rand, when non-nil, adds a small seeded jitter to every candidate
	// score. Leave nil for pure input-order tie-breaking.
	Rand *rand.Rand
}

// DefaultConfig returns the documented default weights and flags.
func DefaultConfig() Config {
	return Config{
		BalanceWeight:         0.5,
		DayDistributionWeight: 0.3,
		QualityWeight:         0.2,
		AvoidWeekend:          true,
		DailyCap:              3,
		Relaxations:           DefaultRelaxations(),
	}
}

// Input is the full description of one schedule-generation run.
type Input struct {
	// People to schedule, in priority order for tie-breaking
	People []string

	// Rooms to assign once per week, in default processing order
	Rooms []string

	// Year and Month identify the target month
	Year  int
	Month time.Month

	// Absences per person (may be nil)
	Absences Absences

	// FirstWeekExcluded maps a person to rooms they must not receive in the
	// month's first week only
	FirstWeekExcluded map[string][]string

	// FirstWeekPriority overrides the room processing order for the first
	// week (may be nil to use Rooms order)
	FirstWeekPriority []string

	// Config holds weights and flags; zero value is replaced by DefaultConfig
	Config Config
}

// Candidate is a transient (person, date) pair under evaluation for a
// specific room within a week.
type Candidate struct {
	Person *PersonState
	Date   time.Time

	// AvailableDays is how many days of the current week the person is
	// available for, used to prioritize highly-constrained people
	AvailableDays int
}

// ScheduleEntry is the unit of output: one room assigned to one person on
// one specific date.
type ScheduleEntry struct {
	Week        int
	PeriodStart time.Time
	PeriodEnd   time.Time
	Room        string
	Person      string
	Date        time.Time
	Weekday     string
}

// UnassignedSlot records a (week, room) pair that could not be filled even
// after exhausting every relaxation step.
type UnassignedSlot struct {
	Week int
	Room string
}

// RelaxationEvent records one soft constraint dropped while filling a
// specific (week, room) slot.
type RelaxationEvent struct {
	Week int
	Room string
	Step Relaxation
}

// Stats are the aggregate counts of a finished schedule.
type Stats struct {
	PerPerson  map[string]int
	PerRoom    map[string]int
	PerWeekday map[string]int
}

// Schedule is the complete output of one generation run.
type Schedule struct {
	// Weeks are the periods the month was partitioned into
	Weeks []WeekPeriod

	// Entries are sorted chronologically by date, then by room name
	Entries []ScheduleEntry

	// Stats summarize the entries
	Stats Stats

	// Unassigned lists every slot that stayed empty after full relaxation
	Unassigned []UnassignedSlot

	// Relaxations lists every soft constraint that had to be dropped
	Relaxations []RelaxationEvent
}
