package criteria

import (
	"github.com/GiuseppeBellamacina/SpazzApp/pkg/core/scheduler"
)

// RawRotationBonus is earned by a person who has never been assigned the
// candidate room in the current month.
const RawRotationBonus = 400.0

// RotationCriterion discourages repeat room/person pairings within one
// month and repeats of the previous week's pairing.
//
// Validity:
//   - Vetoes a candidate whose person already had this room earlier in the
//     month, or had it the previous week, unless the rotation relaxation is
//     in effect. The engine relaxes rotation first, so a repeat only ever
//     happens when every other pairing is infeasible.
//
// Score:
//   - RawRotationBonus for a fresh room/person pairing, 0 for a repeat.
type RotationCriterion struct {
	weight float64
}

// NewRotationCriterion creates a RotationCriterion with the given weight.
func NewRotationCriterion(weight float64) *RotationCriterion {
	return &RotationCriterion{weight: weight}
}

func (c *RotationCriterion) Name() string {
	return "Rotation"
}

func (c *RotationCriterion) IsCandidateValid(state *scheduler.State, cand scheduler.Candidate, room string, relaxed scheduler.RelaxSet) bool {
	if relaxed.Has(scheduler.RelaxRotation) {
		return true
	}
	if cand.Person.HasRoom(room) {
		return false
	}
	if state.LastWeekRoomPerson[room] == cand.Person.Name {
		return false
	}
	return true
}

func (c *RotationCriterion) Score(state *scheduler.State, cand scheduler.Candidate, room string) float64 {
	if cand.Person.HasRoom(room) {
		return 0
	}
	return RawRotationBonus
}

func (c *RotationCriterion) Weight() float64 {
	return c.weight
}
