package criteria

import (
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
)

// RawBalanceMax is the bonus earned by the person with the lowest total
// assignment count, scaled down as their count rises toward the group
// maximum.
const RawBalanceMax = 600.0

// BalanceCriterion is the fairness-driving term: it rewards people who are
// behind on total assignments so the month-end spread stays tight.
//
// Validity:
//   - Never vetoes a candidate; balance is purely a preference.
//
// Score:
//   - RawBalanceMax for a person at zero while others have assignments,
//     scaled by how far the person sits below the current group maximum.
//   - 0 when everyone is level (nobody is behind).
type BalanceCriterion struct {
	weight float64
}

// NewBalanceCriterion creates a BalanceCriterion with the given weight.
func NewBalanceCriterion(weight float64) *BalanceCriterion {
	return &BalanceCriterion{weight: weight}
}

func (c *BalanceCriterion) Name() string {
	return "Balance"
}

func (c *BalanceCriterion) IsCandidateValid(state *scheduler.State, cand scheduler.Candidate, room string, relaxed scheduler.RelaxSet) bool {
	return true
}

func (c *BalanceCriterion) Score(state *scheduler.State, cand scheduler.Candidate, room string) float64 {
	maxTotal := state.MaxTotal()
	if maxTotal == 0 {
		return 0
	}
	return RawBalanceMax * float64(maxTotal-cand.Person.Total) / float64(maxTotal)
}

func (c *BalanceCriterion) Weight() float64 {
	return c.weight
}
