package scheduler

import "time"

// PersonState carries one person's running tallies during a generation run.
// Tallies are reset at the start of every run and never leak across runs.
type PersonState struct {
	// Name of the person (unique within a run)
	Name string

	// Index is the position in the input people list, used as the final
	// deterministic tie-break
	Index int

	// Total is the number of assignments so far this month
	Total int

	// RoomCounts tracks how many times each room was assigned to this person
	RoomCounts map[string]int

	// WeekdayCounts tracks how many assignments landed on each weekday
	WeekdayCounts map[time.Weekday]int
}

// HasRoom reports whether the person was already assigned the room earlier
// in the current month.
func (p *PersonState) HasRoom(room string) bool {
	return p.RoomCounts[room] > 0
}

// HasWeekday reports whether the person already has an assignment on the
// given weekday this month.
func (p *PersonState) HasWeekday(d time.Weekday) bool {
	return p.WeekdayCounts[d] > 0
}

// State is the mutable accumulator threaded through the week/room loop.
// Every selection updates it immediately so the next room of the same week
// sees fresh balance inputs.
type State struct {
	// Rooms in input order
	Rooms []string

	// People in input order, tallies included
	People []*PersonState

	// Entries accumulated so far, in selection order
	Entries []ScheduleEntry

	// CurrentWeek is the period being filled
	CurrentWeek WeekPeriod

	// LastWeekRoomPerson maps room name to the person who had it the
	// previous week (empty map for the first week)
	LastWeekRoomPerson map[string]string

	byName       map[string]*PersonState
	dailyCounts  map[string]int          // date key -> assignments on that date
	weekRooms    map[string]bool         // rooms already assigned this week
	weekPeople   map[string]bool         // people already assigned this week
	weekDates    map[string]bool         // dates already used this week
}

func NewState(people, rooms []string) *State {
	s := &State{
		Rooms:              rooms,
		LastWeekRoomPerson: map[string]string{},
		byName:             make(map[string]*PersonState, len(people)),
		dailyCounts:        map[string]int{},
	}
	for i, name := range people {
		p := &PersonState{
			Name:          name,
			Index:         i,
			RoomCounts:    map[string]int{},
			WeekdayCounts: map[time.Weekday]int{},
		}
		s.People = append(s.People, p)
		s.byName[name] = p
	}
	return s
}

func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// Person returns the state of the named person, or nil if unknown.
func (s *State) Person(name string) *PersonState {
	return s.byName[name]
}

// AssignmentsOn returns how many assignments already share the given date.
func (s *State) AssignmentsOn(date time.Time) int {
	return s.dailyCounts[dateKey(date)]
}

// RoomAssignedThisWeek reports whether the room already has an assignment in
// the current week.
func (s *State) RoomAssignedThisWeek(room string) bool {
	return s.weekRooms[room]
}

// PersonAssignedThisWeek reports whether the person already has an
// assignment in the current week.
func (s *State) PersonAssignedThisWeek(name string) bool {
	return s.weekPeople[name]
}

// DateUsedThisWeek reports whether another room of the current week was
// already placed on the given date.
func (s *State) DateUsedThisWeek(date time.Time) bool {
	return s.weekDates[dateKey(date)]
}

// MaxTotal returns the highest total assignment count across all people.
func (s *State) MaxTotal() int {
	maxTotal := 0
	for _, p := range s.People {
		if p.Total > maxTotal {
			maxTotal = p.Total
		}
	}
	return maxTotal
}

// BeginWeek resets the per-week scratch maps.
func (s *State) BeginWeek(week WeekPeriod) {
	s.CurrentWeek = week
	s.weekRooms = map[string]bool{}
	s.weekPeople = map[string]bool{}
	s.weekDates = map[string]bool{}
}

// EndWeek snapshots the week's room/person pairings for the next week's
// consecutive-repeat rule.
func (s *State) EndWeek() {
	snapshot := make(map[string]string, len(s.weekRooms))
	for _, e := range s.Entries {
		if e.Week == s.CurrentWeek.Index {
			snapshot[e.Room] = e.Person
		}
	}
	s.LastWeekRoomPerson = snapshot
}

// Record adds an entry and updates every tally the next selection depends on.
func (s *State) Record(entry ScheduleEntry) {
	s.Entries = append(s.Entries, entry)
	s.dailyCounts[dateKey(entry.Date)]++
	s.weekRooms[entry.Room] = true
	s.weekPeople[entry.Person] = true
	s.weekDates[dateKey(entry.Date)] = true

	p := s.byName[entry.Person]
	p.Total++
	p.RoomCounts[entry.Room]++
	p.WeekdayCounts[entry.Date.Weekday()]++
}
