package scheduler

import (
	"fmt"
	"time"
)

var italianWeekdays = map[time.Weekday]string{
	time.Monday:    "Lunedì",
	time.Tuesday:   "Martedì",
	time.Wednesday: "Mercoledì",
	time.Thursday:  "Giovedì",
	time.Friday:    "Venerdì",
	time.Saturday:  "Sabato",
	time.Sunday:    "Domenica",
}

var italianMonths = map[time.Month]string{
	time.January:   "Gennaio",
	time.February:  "Febbraio",
	time.March:     "Marzo",
	time.April:     "Aprile",
	time.May:       "Maggio",
	time.June:      "Giugno",
	time.July:      "Luglio",
	time.August:    "Agosto",
	time.September: "Settembre",
	time.October:   "Ottobre",
	time.November:  "Novembre",
	time.December:  "Dicembre",
}

// WeekdayName returns the Italian name of a weekday.
func WeekdayName(d time.Weekday) string {
	return italianWeekdays[d]
}

// MonthName returns the Italian name of a month.
func MonthName(m time.Month) string {
	return italianMonths[m]
}

// IsWeekend reports whether the date is a Saturday or a Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthWeeks partitions the given month into week periods. Weeks run Monday
// to Sunday; the first and last periods are clipped to the month boundaries,
// so every day of the month belongs to exactly one period with no gaps or
// overlaps.
func MonthWeeks(year int, month time.Month) ([]WeekPeriod, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d out of range", ErrInvalidDateRange, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidDateRange, year)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var weeks []WeekPeriod
	start := first
	for !start.After(last) {
		// End of the Monday-based week containing start
		end := start.AddDate(0, 0, 6-mondayIndex(start.Weekday()))
		if end.After(last) {
			end = last
		}
		weeks = append(weeks, WeekPeriod{Index: len(weeks) + 1, Start: start, End: end})
		start = end.AddDate(0, 0, 1)
	}

	return weeks, nil
}

// mondayIndex maps a weekday to its offset from Monday (Monday=0 .. Sunday=6).
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
