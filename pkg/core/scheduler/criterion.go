package scheduler

// Criterion defines one scoring concern of the selection step. Criteria
// influence which candidate wins a room and can veto candidates that violate
// a soft constraint that has not been relaxed yet.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsCandidateValid determines if the candidate may take the room at all.
	// This acts as a veto - if ANY criterion returns false, the candidate is
	// dropped from the pool. The relaxed set tells the criterion which soft
	// constraints are currently suspended.
	IsCandidateValid(state *State, cand Candidate, room string, relaxed RelaxSet) bool

	// Score returns the raw sub-score of the candidate for the room. The
	// engine multiplies it by Weight before summing.
	Score(state *State, cand Candidate, room string) float64

	// Weight returns the multiplier applied to Score
	Weight() float64
}

// ScoreCandidate computes the weighted composite score of a candidate, plus
// the constrained-availability bonus: people with very few available days in
// the week are bumped so flexible people cannot exhaust the slots first.
func ScoreCandidate(state *State, cand Candidate, room string, criteria []Criterion) float64 {
	total := 0.0
	for _, criterion := range criteria {
		total += criterion.Score(state, cand, room) * criterion.Weight()
	}
	total += constrainedAvailabilityBonus(cand.AvailableDays)
	return total
}

// constrainedAvailabilityBonus rewards people with little room for
// maneuver inside the week.
func constrainedAvailabilityBonus(availableDays int) float64 {
	switch {
	case availableDays <= 2:
		return 100
	case availableDays <= 4:
		return 50
	default:
		return 10
	}
}

// IsCandidateValid runs every criterion's veto hook, short-circuiting on the
// first failure.
func IsCandidateValid(state *State, cand Candidate, room string, relaxed RelaxSet, criteria []Criterion) bool {
	for _, criterion := range criteria {
		if !criterion.IsCandidateValid(state, cand, room, relaxed) {
			return false
		}
	}
	return true
}
