package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsences_Available_InclusiveBounds(t *testing.T) {
	absences := Absences{
		"Anna": {
			{Start: date(2026, time.March, 10), End: date(2026, time.March, 12)},
		},
	}

	assert.True(t, absences.Available("Anna", date(2026, time.March, 9)))
	assert.False(t, absences.Available("Anna", date(2026, time.March, 10)))
	assert.False(t, absences.Available("Anna", date(2026, time.March, 11)))
	assert.False(t, absences.Available("Anna", date(2026, time.March, 12)))
	assert.True(t, absences.Available("Anna", date(2026, time.March, 13)))
}

func TestAbsences_Available_UnknownPersonAlwaysAvailable(t *testing.T) {
	absences := Absences{}
	assert.True(t, absences.Available("Marco", date(2026, time.March, 10)))
}

func TestAbsences_Available_OverlappingIntervals(t *testing.T) {
	// Overlapping intervals are tolerated; the union of coverage matters
	absences := Absences{
		"Luca": {
			{Start: date(2026, time.March, 2), End: date(2026, time.March, 5)},
			{Start: date(2026, time.March, 4), End: date(2026, time.March, 8)},
		},
	}

	for d := 2; d <= 8; d++ {
		assert.False(t, absences.Available("Luca", date(2026, time.March, d)), "day %d", d)
	}
	assert.True(t, absences.Available("Luca", date(2026, time.March, 9)))
}

func TestAbsences_AvailableDays_FiltersAbsentDates(t *testing.T) {
	week := WeekPeriod{Index: 1, Start: date(2026, time.March, 2), End: date(2026, time.March, 8)}
	absences := Absences{
		"Sofia": {
			{Start: date(2026, time.March, 4), End: date(2026, time.March, 6)},
		},
	}

	days := absences.AvailableDays("Sofia", week, false)
	require.Len(t, days, 4)
	assert.Equal(t, date(2026, time.March, 2), days[0])
	assert.Equal(t, date(2026, time.March, 3), days[1])
	assert.Equal(t, date(2026, time.March, 7), days[2])
	assert.Equal(t, date(2026, time.March, 8), days[3])
}

func TestAbsences_AvailableDays_WeekdaysFirst(t *testing.T) {
	// March 2-8 2026 is a full Monday-Sunday week
	week := WeekPeriod{Index: 1, Start: date(2026, time.March, 2), End: date(2026, time.March, 8)}

	days := Absences{}.AvailableDays("Anna", week, true)
	require.Len(t, days, 7)

	// Monday-Friday first, then Saturday and Sunday
	for _, d := range days[:5] {
		assert.False(t, IsWeekend(d))
	}
	assert.Equal(t, time.Saturday, days[5].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
}
