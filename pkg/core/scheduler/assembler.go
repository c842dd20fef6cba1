package scheduler

import "sort"

// assemble orders and packages the accumulated entries into the final
// schedule: chronological by date then by room name (stable), with summary
// statistics, the unassigned list, and the relaxation log.
func (e *engine) assemble(weeks []WeekPeriod) *Schedule {
	entries := append([]ScheduleEntry(nil), e.state.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Room < entries[j].Room
	})

	// Initialize with empty slices (not nil) for easier consumption
	schedule := &Schedule{
		Weeks:       weeks,
		Entries:     entries,
		Stats:       buildStats(entries),
		Unassigned:  []UnassignedSlot{},
		Relaxations: []RelaxationEvent{},
	}
	schedule.Unassigned = append(schedule.Unassigned, e.unassigned...)
	schedule.Relaxations = append(schedule.Relaxations, e.relaxations...)

	return schedule
}

// buildStats computes total assignments per person, per room, and per
// weekday name. Pure aggregation, no feasibility logic.
func buildStats(entries []ScheduleEntry) Stats {
	stats := Stats{
		PerPerson:  map[string]int{},
		PerRoom:    map[string]int{},
		PerWeekday: map[string]int{},
	}
	for _, e := range entries {
		stats.PerPerson[e.Person]++
		stats.PerRoom[e.Room]++
		stats.PerWeekday[e.Weekday]++
	}
	return stats
}
