package criteria

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
)

func TestDayQualityCriterion_Name(t *testing.T) {
	criterion := NewDayQualityCriterion(0.3, true)
	assert.Equal(t, "DayQuality", criterion.Name())
}

func TestDayQualityCriterion_VetoesDateUsedThisWeek(t *testing.T) {
	criterion := NewDayQualityCriterion(0.3, true)
	state := scheduler.NewState([]string{"Anna", "Marco"}, []string{"Bagno", "Cucina"})
	state.BeginWeek(week(1, 2))
	state.Record(scheduler.ScheduleEntry{Week: 1, Room: "Bagno", Person: "Anna", Date: date(2026, time.March, 4)})

	sameDay := scheduler.Candidate{Person: state.Person("Marco"), Date: date(2026, time.March, 4)}
	otherDay := scheduler.Candidate{Person: state.Person("Marco"), Date: date(2026, time.March, 5)}

	assert.False(t, criterion.IsCandidateValid(state, sameDay, "Cucina", scheduler.RelaxSet{}))
	assert.True(t, criterion.IsCandidateValid(state, otherDay, "Cucina", scheduler.RelaxSet{}))

	// The day-spread relaxation lets rooms share a date
	relaxed := scheduler.RelaxSet{scheduler.RelaxDaySpread: true}
	assert.True(t, criterion.IsCandidateValid(state, sameDay, "Cucina", relaxed))
}

func TestDayQualityCriterion_WeekdayBeatsWeekend(t *testing.T) {
	criterion := NewDayQualityCriterion(0.3, true)
	state := scheduler.NewState([]string{"Anna"}, []string{"Bagno"})
	state.BeginWeek(week(1, 2))

	// March 4 2026 is a Wednesday, March 7 a Saturday
	wednesday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 4)}
	saturday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 7)}

	assert.Greater(t,
		criterion.Score(state, wednesday, "Bagno"),
		criterion.Score(state, saturday, "Bagno"))
}

func TestDayQualityCriterion_NoWeekendPenaltyWhenFlagOff(t *testing.T) {
	criterion := NewDayQualityCriterion(0.3, false)
	state := scheduler.NewState([]string{"Anna"}, []string{"Bagno"})
	state.BeginWeek(week(1, 2))

	saturday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 7)}

	// Flat weekday bonus plus Saturday shape bonus, no weekend downgrade
	assert.Equal(t, RawWeekdayBonus+10+RawNewWeekdayBonus, criterion.Score(state, saturday, "Bagno"))
}

func TestDayQualityCriterion_MidWeekPreferred(t *testing.T) {
	criterion := NewDayQualityCriterion(0.3, true)
	state := scheduler.NewState([]string{"Anna"}, []string{"Bagno"})
	state.BeginWeek(week(1, 2))

	monday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 2)}
	wednesday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 4)}

	assert.Greater(t,
		criterion.Score(state, wednesday, "Bagno"),
		criterion.Score(state, monday, "Bagno"))
}

func TestDayQualityCriterion_RewardsFreshWeekday(t *testing.T) {
	criterion := NewDayQualityCriterion(0.3, true)
	state := scheduler.NewState([]string{"Anna"}, []string{"Bagno", "Cucina"})
	state.BeginWeek(week(1, 2))
	state.Record(scheduler.ScheduleEntry{Week: 1, Room: "Bagno", Person: "Anna", Date: date(2026, time.March, 4)})
	state.EndWeek()
	state.BeginWeek(week(2, 9))

	// March 11 2026 is a Wednesday (already used), March 12 a Thursday
	usedWeekday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 11)}
	freshWeekday := scheduler.Candidate{Person: state.Person("Anna"), Date: date(2026, time.March, 12)}

	usedScore := criterion.Score(state, usedWeekday, "Cucina")
	freshScore := criterion.Score(state, freshWeekday, "Cucina")

	// Thursday's shape bonus is 25 vs Wednesday's 30, but the fresh-weekday
	// bonus (+20) more than makes up for it
	assert.Greater(t, freshScore, usedScore)
}
