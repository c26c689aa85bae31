package solver

import (
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

// requiredUnfilled lists weekday cells that must hold an employee but
// currently don't: every D1/N, and D2 except where D2Exists says none
// exists (§4.7's "if UNFILLED: try to fill").
func requiredUnfilled(s *model.Schedule) []Coord {
	var out []Coord
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			weekday := model.Weekday(d)
			if weekday.IsWeekend() {
				continue
			}
			for slot := 0; slot < model.Slots; slot++ {
				sl := model.Slot(slot)
				if sl == model.D2 && !model.D2Exists(w, weekday) {
					continue
				}
				if s.Get(w, d, slot).IsUnfilled() {
					out = append(out, Coord{Week: w, Day: d, Slot: slot})
				}
			}
		}
	}
	return out
}

// violatingAssigned lists non-UNFILLED weekday cells whose occupant fails
// one of their own predicates (§4.5, §4.7).
func violatingAssigned(s *model.Schedule, eval *evaluator.Evaluator) []Coord {
	res := eval.CountViolations(s)
	seen := make(map[Coord]bool)
	var out []Coord
	for _, v := range res.Violations {
		if v.Employee.IsUnfilled() || model.Weekday(v.Day).IsWeekend() {
			continue
		}
		c := Coord{Week: v.Week, Day: v.Day, Slot: v.Slot}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// repairTargets is the deduplicated (w,d,s) worklist for one repair pass.
func repairTargets(s *model.Schedule, eval *evaluator.Evaluator) []Coord {
	seen := make(map[Coord]bool)
	var out []Coord
	for _, c := range requiredUnfilled(s) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range violatingAssigned(s, eval) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// trySwapImproving scans every other non-UNFILLED weekday cell for a swap
// with coord that leaves both endpoints ABSOLUTE-clean and strictly
// improves the global score (§4.7). Accepts the first such swap found.
func trySwapImproving(s *model.Schedule, roster *model.Roster, eval *evaluator.Evaluator, coord Coord) bool {
	baseScore := eval.Score(s)
	empA := s.Get(coord.Week, coord.Day, coord.Slot)

	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			if model.Weekday(d).IsWeekend() {
				continue
			}
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

				okA := allAbsoluteSatisfied(s, roster, empB, coord)
				okB := allAbsoluteSatisfied(s, roster, empA, other)
				improved := eval.Score(s) < baseScore

				if okA && okB && improved {
					return true
				}

				s.Set(coord.Week, coord.Day, coord.Slot, empA)
				s.Set(w, d, slot, empB)
			}
		}
	}
	return false
}

// Repair runs the post-annealing cleanup pass (§4.7): fill required-empty
// cells, swap away remaining per-employee violations, and iterate until a
// full pass produces no change. Never increases score relative to its
// starting point per accepted move; the caller is responsible for rolling
// back the whole phase if the total regressed (§4.10).
func Repair(s *model.Schedule, roster *model.Roster, eval *evaluator.Evaluator, shiftLength float64) *model.Schedule {
	current := s.Clone()

	for {
		changed := false
		for _, coord := range repairTargets(current, eval) {
			if current.Get(coord.Week, coord.Day, coord.Slot).IsUnfilled() {
				emp := Select(current, roster, eval, coord, shiftLength)
				if !emp.IsUnfilled() {
					current.Set(coord.Week, coord.Day, coord.Slot, emp)
					changed = true
				}
				continue
			}
			if trySwapImproving(current, roster, eval, coord) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return current
}
