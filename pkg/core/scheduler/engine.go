package scheduler

import (
	"fmt"
	"sort"
	"time"
)

// Generate runs the assignment engine: it partitions the month into week
// periods, then fills every room of every week with the best feasible
// (person, day) candidate, relaxing soft constraints in the configured
// order when a room has no candidate left. Rooms within a week are filled
// sequentially because each pick changes the balance inputs of the next.
//
// The returned schedule is deterministic for identical inputs; when
// Config.Rand is set, results are reproducible per seed.
func Generate(input Input, criteria []Criterion) (*Schedule, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	weeks, err := MonthWeeks(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	eng := &engine{
		input:    input,
		cfg:      normalizeConfig(input.Config),
		criteria: criteria,
		state:    NewState(input.People, input.Rooms),
	}

	for _, week := range weeks {
		eng.fillWeek(week)
	}

	return eng.assemble(weeks), nil
}

// engine carries the run-scoped pieces of one generation.
type engine struct {
	input    Input
	cfg      Config
	criteria []Criterion
	state    *State

	unassigned  []UnassignedSlot
	relaxations []RelaxationEvent

	// rooms left unassigned the previous week, processed first the next week
	lastUnassigned map[string]bool
}

// fillWeek assigns every room of one week period.
func (e *engine) fillWeek(week WeekPeriod) {
	e.state.BeginWeek(week)

	// Available days per person, weekdays first when weekends are avoided
	availableDays := make(map[string][]time.Time, len(e.input.People))
	for _, person := range e.input.People {
		availableDays[person] = e.input.Absences.AvailableDays(person, week, e.cfg.AvoidWeekend)
	}

	unassignedThisWeek := map[string]bool{}
	for _, room := range e.roomOrder(week) {
		if !e.fillRoom(week, room, availableDays) {
			e.unassigned = append(e.unassigned, UnassignedSlot{Week: week.Index, Room: room})
			unassignedThisWeek[room] = true
		}
	}

	e.state.EndWeek()
	e.lastUnassigned = unassignedThisWeek
}

// roomOrder returns the processing order of rooms for a week: the
// configured priority order for the first week, otherwise rooms that
// stayed unassigned the previous week first, then the rest in input order.
func (e *engine) roomOrder(week WeekPeriod) []string {
	if week.Index == 1 && len(e.input.FirstWeekPriority) > 0 {
		order := append([]string(nil), e.input.FirstWeekPriority...)
		for _, room := range e.input.Rooms {
			if !containsString(order, room) {
				order = append(order, room)
			}
		}
		return order
	}

	var priority, rest []string
	for _, room := range e.input.Rooms {
		if e.lastUnassigned[room] {
			priority = append(priority, room)
		} else {
			rest = append(rest, room)
		}
	}
	return append(priority, rest...)
}

// fillRoom selects the winning candidate for one room, applying the
// relaxation ladder when the pool comes up empty. Returns false if the slot
// stayed unassigned after full relaxation.
func (e *engine) fillRoom(week WeekPeriod, room string, availableDays map[string][]time.Time) bool {
	relaxed := RelaxSet{}
	ladder := e.cfg.Relaxations

	for attempt := 0; ; attempt++ {
		pool := e.buildPool(week, room, availableDays, relaxed)
		if len(pool) > 0 {
			winner := e.selectWinner(pool, room)
			e.state.Record(ScheduleEntry{
				Week:        week.Index,
				PeriodStart: week.Start,
				PeriodEnd:   week.End,
				Room:        room,
				Person:      winner.Person.Name,
				Date:        winner.Date,
				Weekday:     WeekdayName(winner.Date.Weekday()),
			})
			return true
		}

		if attempt >= len(ladder) {
			return false
		}

		// Drop the next soft constraint and retry
		step := ladder[attempt]
		relaxed[step] = true
		e.relaxations = append(e.relaxations, RelaxationEvent{Week: week.Index, Room: room, Step: step})
	}
}

// buildPool collects every feasible (person, day) candidate for the room,
// applying the hard filters in order and then each criterion's veto hook.
// People are visited in ascending order of remaining availability so that
// highly-constrained people are considered before flexible ones.
func (e *engine) buildPool(week WeekPeriod, room string, availableDays map[string][]time.Time, relaxed RelaxSet) []Candidate {
	if e.state.RoomAssignedThisWeek(room) {
		return nil
	}

	dailyCap := e.cfg.DailyCap
	if relaxed.Has(RelaxDailyCap) {
		dailyCap++
	}

	var pool []Candidate
	for _, p := range e.peopleByAvailability(availableDays) {
		if e.state.PersonAssignedThisWeek(p.Name) {
			continue
		}
		if week.Index == 1 && e.isExcludedFirstWeek(p.Name, room) {
			continue
		}

		days := availableDays[p.Name]
		for _, day := range days {
			if e.state.AssignmentsOn(day) >= dailyCap {
				continue
			}
			cand := Candidate{Person: p, Date: day, AvailableDays: len(days)}
			if !IsCandidateValid(e.state, cand, room, relaxed, e.criteria) {
				continue
			}
			pool = append(pool, cand)
		}
	}
	return pool
}

// peopleByAvailability returns the people sorted by how few days they have
// left in the current week, input order breaking ties (stable).
func (e *engine) peopleByAvailability(availableDays map[string][]time.Time) []*PersonState {
	people := append([]*PersonState(nil), e.state.People...)
	sort.SliceStable(people, func(i, j int) bool {
		return len(availableDays[people[i].Name]) < len(availableDays[people[j].Name])
	})
	return people
}

func (e *engine) isExcludedFirstWeek(person, room string) bool {
	return containsString(e.input.FirstWeekExcluded[person], room)
}

// selectWinner scores the pool and picks the highest composite score. Ties
// break by fewer total assignments, then earlier date, then input order of
// people - stable and deterministic.
func (e *engine) selectWinner(pool []Candidate, room string) Candidate {
	best := pool[0]
	bestScore := e.score(best, room)

	for _, cand := range pool[1:] {
		score := e.score(cand, room)
		if betterCandidate(cand, score, best, bestScore) {
			best = cand
			bestScore = score
		}
	}
	return best
}

func (e *engine) score(cand Candidate, room string) float64 {
	score := ScoreCandidate(e.state, cand, room, e.criteria)
	if e.cfg.Rand != nil {
		score += float64(1 + e.cfg.Rand.Intn(10))
	}
	return score
}

func betterCandidate(cand Candidate, score float64, best Candidate, bestScore float64) bool {
	if score != bestScore {
		return score > bestScore
	}
	if cand.Person.Total != best.Person.Total {
		return cand.Person.Total < best.Person.Total
	}
	if !cand.Date.Equal(best.Date) {
		return cand.Date.Before(best.Date)
	}
	return cand.Person.Index < best.Person.Index
}

// validateInput rejects unusable inputs before any scheduling attempt.
func validateInput(input Input) error {
	if len(input.People) == 0 {
		return fmt.Errorf("%w: empty person list", ErrInvalidInput)
	}
	if len(input.Rooms) == 0 {
		return fmt.Errorf("%w: empty room list", ErrInvalidInput)
	}

	seenPeople := map[string]bool{}
	for _, person := range input.People {
		if person == "" {
			return fmt.Errorf("%w: empty person name", ErrInvalidInput)
		}
		if seenPeople[person] {
			return fmt.Errorf("%w: duplicate person %q", ErrInvalidInput, person)
		}
		seenPeople[person] = true
	}

	seenRooms := map[string]bool{}
	for _, room := range input.Rooms {
		if room == "" {
			return fmt.Errorf("%w: empty room name", ErrInvalidInput)
		}
		if seenRooms[room] {
			return fmt.Errorf("%w: duplicate room %q", ErrInvalidInput, room)
		}
		seenRooms[room] = true
	}

	for person, intervals := range input.Absences {
		for _, interval := range intervals {
			if interval.Start.After(interval.End) {
				return fmt.Errorf("%w: absence for %q starts after it ends (%s > %s)",
					ErrInvalidInput, person,
					interval.Start.Format("2006-01-02"), interval.End.Format("2006-01-02"))
			}
		}
	}

	return nil
}

// normalizeConfig fills zero-valued config fields with the documented
// defaults so a partially-specified config stays usable.
func normalizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.BalanceWeight == 0 && cfg.DayDistributionWeight == 0 && cfg.QualityWeight == 0 {
		cfg.BalanceWeight = def.BalanceWeight
		cfg.DayDistributionWeight = def.DayDistributionWeight
		cfg.QualityWeight = def.QualityWeight
	}
	if cfg.DailyCap <= 0 {
		cfg.DailyCap = def.DailyCap
	}
	if cfg.Relaxations == nil {
		cfg.Relaxations = def.Relaxations
	}
	return cfg
}

func containsString(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
