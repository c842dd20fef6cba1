package scheduler

import "fmt"

// SlotValidationError reports one invariant violation in a finished
// schedule.
type SlotValidationError struct {
	Week        int
	Room        string
	Description string
}

// ValidateSchedule checks the hard invariants of a finished schedule
// against its input: daily cap respected, exactly one entry per assigned
// (week, room), at most one entry per (week, person), and every assigned
// person available on their date. Returns a slice of violations, empty if
// the schedule is valid.
func ValidateSchedule(schedule *Schedule, input Input) []SlotValidationError {
	var errors []SlotValidationError

	dailyCap := normalizeConfig(input.Config).DailyCap
	// The cap may have been raised by relaxation; account for it per slot
	raisedCap := map[int]bool{}
	for _, ev := range schedule.Relaxations {
		if ev.Step == RelaxDailyCap {
			raisedCap[ev.Week] = true
		}
	}

	perDate := map[string]int{}
	perWeekRoom := map[string]int{}
	perWeekPerson := map[string]int{}

	for _, entry := range schedule.Entries {
		perDate[dateKey(entry.Date)]++
		perWeekRoom[fmt.Sprintf("%d/%s", entry.Week, entry.Room)]++
		perWeekPerson[fmt.Sprintf("%d/%s", entry.Week, entry.Person)]++

		if !input.Absences.Available(entry.Person, entry.Date) {
			errors = append(errors, SlotValidationError{
				Week:        entry.Week,
				Room:        entry.Room,
				Description: fmt.Sprintf("%s is absent on %s", entry.Person, entry.Date.Format("2006-01-02")),
			})
		}
	}

	for _, entry := range schedule.Entries {
		effectiveCap := dailyCap
		if raisedCap[entry.Week] {
			effectiveCap++
		}
		if count := perDate[dateKey(entry.Date)]; count > effectiveCap {
			errors = append(errors, SlotValidationError{
				Week:        entry.Week,
				Room:        entry.Room,
				Description: fmt.Sprintf("date %s holds %d assignments (cap %d)", entry.Date.Format("2006-01-02"), count, effectiveCap),
			})
		}
		if count := perWeekRoom[fmt.Sprintf("%d/%s", entry.Week, entry.Room)]; count > 1 {
			errors = append(errors, SlotValidationError{
				Week:        entry.Week,
				Room:        entry.Room,
				Description: fmt.Sprintf("room assigned %d times in week %d", count, entry.Week),
			})
		}
		if count := perWeekPerson[fmt.Sprintf("%d/%s", entry.Week, entry.Person)]; count > 1 {
			errors = append(errors, SlotValidationError{
				Week:        entry.Week,
				Room:        entry.Room,
				Description: fmt.Sprintf("%s assigned %d times in week %d", entry.Person, count, entry.Week),
			})
		}
	}

	return errors
}
