package scheduler

import "time"

// Available reports whether the person is available on the given date, i.e.
// the date falls inside none of their absence intervals (inclusive bounds).
// A person with no recorded absences is always available.
func (a Absences) Available(person string, date time.Time) bool {
	for _, interval := range a[person] {
		if !date.Before(interval.Start) && !date.After(interval.End) {
			return false
		}
	}
	return true
}

// AvailableDays returns the dates inside the week on which the person is
// available. When preferWeekdays is set, Monday-Friday dates are returned
// before weekend dates so that callers iterating in order try weekdays
// first; within each class dates stay chronological.
func (a Absences) AvailableDays(person string, week WeekPeriod, preferWeekdays bool) []time.Time {
	var days []time.Time
	for _, d := range week.Days() {
		if a.Available(person, d) {
			days = append(days, d)
		}
	}

	if !preferWeekdays {
		return days
	}

	var workdays, weekends []time.Time
	for _, d := range days {
		if IsWeekend(d) {
			weekends = append(weekends, d)
		} else {
			workdays = append(workdays, d)
		}
	}
	return append(workdays, weekends...)
}
