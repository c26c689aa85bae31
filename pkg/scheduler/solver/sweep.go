package solver

import (
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

// firstStaffAbsoluteViolation returns the first non-UNFILLED cell (in grid
// scan order) whose occupant fails one of their own ABSOLUTE predicates.
func firstStaffAbsoluteViolation(s *model.Schedule, eval *evaluator.Evaluator) (Coord, bool) {
	res := eval.CountViolations(s)
	for _, v := range res.Violations {
		if v.Severity == model.Absolute && !v.Employee.IsUnfilled() {
			return Coord{Week: v.Week, Day: v.Day, Slot: v.Slot}, true
		}
	}
	return Coord{}, false
}

// trySwapPreservingAbsolutes scans the entire grid for a swap partner for
// coord that leaves both endpoints' ABSOLUTE predicates satisfied,
// regardless of score (§4.9's last resort, unlike repair's score-improving
// swap).
func trySwapPreservingAbsolutes(s *model.Schedule, roster *model.Roster, coord Coord) bool {
	empA := s.Get(coord.Week, coord.Day, coord.Slot)

	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			for slot := 0; slot < model.Slots; slot++ {
				other := Coord{Week: w, Day: d, Slot: slot}
				if other == coord {
					continue
				}
				empB := s.Get(w, d, slot)
				if empB.IsUnfilled() {
					continue
				}

				s.Set(coord.Week, coord.Day, coord.Slot, empB)
				s.Set(w, d, slot, empA)

				if allAbsoluteSatisfied(s, roster, empB, coord) && allAbsoluteSatisfied(s, roster, empA, other) {
					return true
				}

				s.Set(coord.Week, coord.Day, coord.Slot, empA)
				s.Set(w, d, slot, empB)
			}
		}
	}
	return false
}

// AbsoluteSweep is the final pass (§4.9): while a staff-level ABSOLUTE
// violation remains, try replacing the offender via the candidate
// selector, then a grid-wide absolute-preserving swap. If neither
// succeeds for the current offender, give up and report how many
// violations remain.
func AbsoluteSweep(s *model.Schedule, roster *model.Roster, eval *evaluator.Evaluator, shiftLength float64) (*model.Schedule, int) {
	current := s.Clone()

	for {
		coord, ok := firstStaffAbsoluteViolation(current, eval)
		if !ok {
			return current, 0
		}

		replacement := Select(current, roster, eval, coord, shiftLength)
		if !replacement.IsUnfilled() {
			current.Set(coord.Week, coord.Day, coord.Slot, replacement)
			continue
		}

		if trySwapPreservingAbsolutes(current, roster, coord) {
			continue
		}

		res := eval.CountViolations(current)
		return current, res.StaffAbsolute
	}
}
