package solver

import (
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

const adjacencyBonus = -3000
const softViolationCost = 2

// payPeriodRange returns the 2-week pay-period window containing week w,
// matching the resolved Open Question: the inclusive odd-week window
// [w-1, w] when w is odd, [w, w+1] when w is even.
func payPeriodRange(w int) (int, int) {
	if w%2 == 1 {
		return w - 1, w
	}
	return w, w + 1
}

// hoursPerPayPeriodCap looks up the employee's HOURS_PER_PAY_PERIOD cap, or
// a large sentinel (1<<30) if they carry no such rule.
func hoursPerPayPeriodCap(roster *model.Roster, emp model.EmployeeID) float64 {
	for _, r := range roster.RulesFor(emp) {
		if hr, ok := r.(constraint.HoursPerPayPeriod); ok {
			return hr.Cap
		}
	}
	return 1 << 30
}

// consecutiveDaysCap looks up the employee's CONSECUTIVE_DAYS parameter, or
// a large sentinel if they carry no such rule.
func consecutiveDaysCap(roster *model.Roster, emp model.EmployeeID) int {
	for _, r := range roster.RulesFor(emp) {
		if cd, ok := r.(constraint.ConsecutiveDays); ok {
			return cd.Max
		}
	}
	return 1 << 30
}

func dayWorkedBy(s *model.Schedule, w, d int, emp model.EmployeeID) bool {
	if d < 0 || d >= model.Days {
		return false
	}
	for _, got := range s.CellsOn(w, d) {
		if got == emp {
			return true
		}
	}
	return false
}

// runContaining returns the length of the contiguous worked-day run that
// includes day d, assuming emp is assigned there. Does not wrap across
// week boundaries, matching ConsecutiveDays' own intra-week scan.
func runContaining(s *model.Schedule, w, d int, emp model.EmployeeID) int {
	run := 1
	for dd := d - 1; dd >= 0 && dayWorkedBy(s, w, dd, emp); dd-- {
		run++
	}
	for dd := d + 1; dd < model.Days && dayWorkedBy(s, w, dd, emp); dd++ {
		run++
	}
	return run
}

// extendsAdjacentStretch reports whether placing emp at coord would extend
// an adjacent worked stretch without exceeding their CONSECUTIVE_DAYS
// parameter — the candidate selector's adjacency bonus trigger (§4.4).
func extendsAdjacentStretch(s *model.Schedule, roster *model.Roster, emp model.EmployeeID, coord Coord) bool {
	if !dayWorkedBy(s, coord.Week, coord.Day-1, emp) && !dayWorkedBy(s, coord.Week, coord.Day+1, emp) {
		return false
	}
	prev := s.Get(coord.Week, coord.Day, coord.Slot)
	s.Set(coord.Week, coord.Day, coord.Slot, emp)
	run := runContaining(s, coord.Week, coord.Day, emp)
	s.Set(coord.Week, coord.Day, coord.Slot, prev)
	return run <= consecutiveDaysCap(roster, emp)
}

// softCost sums 2 per failing RELATIVE predicate (excluding MINIMUM_HOURS,
// which is handled by its own fill phase, §4.8) plus the adjacency bonus
// (§4.4).
func softCost(s *model.Schedule, roster *model.Roster, emp model.EmployeeID, coord Coord) float64 {
	cost := 0.0
	for _, r := range roster.RulesFor(emp) {
		if r.Severity() != model.Relative || r.Kind() == model.KindMinimumHours {
			continue
		}
		if !r.Satisfied(s, emp, coord.Week, coord.Day, coord.Slot) {
			cost += softViolationCost
		}
	}
	if extendsAdjacentStretch(s, roster, emp, coord) {
		cost += adjacencyBonus
	}
	return cost
}

// passesHardFilters applies §4.4's ordered hard filters, cheapest first.
// Filter 5 (tentative ABSOLUTE check) mutates and restores the single cell.
func passesHardFilters(s *model.Schedule, roster *model.Roster, emp model.EmployeeID, coord Coord, shiftLength float64) bool {
	if emp.IsUnfilled() {
		return false
	}
	for _, got := range s.CellsOn(coord.Week, coord.Day) {
		if got == emp {
			return false
		}
	}
	if model.Slot(coord.Slot) == model.D1 || model.Slot(coord.Slot) == model.D2 {
		var prevNightWeek, prevNightDay int
		if coord.Day > 0 {
			prevNightWeek, prevNightDay = coord.Week, coord.Day-1
		} else {
			prevNightWeek, prevNightDay = coord.Week-1, int(model.Saturday)
		}
		if s.Get(prevNightWeek, prevNightDay, int(model.N)) == emp {
			return false
		}
	}
	from, to := payPeriodRange(coord.Week)
	if s.HoursInWeeks(emp, from, to)+shiftLength > hoursPerPayPeriodCap(roster, emp) {
		return false
	}
	prev := s.Get(coord.Week, coord.Day, coord.Slot)
	s.Set(coord.Week, coord.Day, coord.Slot, emp)
	ok := allAbsoluteSatisfied(s, roster, emp, coord)
	s.Set(coord.Week, coord.Day, coord.Slot, prev)
	return ok
}

// Select chooses the employee minimizing Δscore + soft_cost for an open
// slot, tie-breaking on fewer hours worked this week (§4.4). Returns
// model.Unfilled if no candidate survives the hard filters.
func Select(s *model.Schedule, roster *model.Roster, eval *evaluator.Evaluator, coord Coord, shiftLength float64) model.EmployeeID {
	sl := model.Slot(coord.Slot)
	candidates := eligibleEmployees(roster, sl)
	currentScore := eval.Score(s)
	prev := s.Get(coord.Week, coord.Day, coord.Slot)

	best := model.Unfilled
	bestCost := 0.0
	bestWeekHours := -1.0
	found := false

	for _, emp := range candidates {
		if !passesHardFilters(s, roster, emp, coord, shiftLength) {
			continue
		}
		s.Set(coord.Week, coord.Day, coord.Slot, emp)
		delta := eval.Score(s) - currentScore
		cost := delta + softCost(s, roster, emp, coord)
		weekHours := s.HoursInWeeks(emp, coord.Week, coord.Week)
		s.Set(coord.Week, coord.Day, coord.Slot, prev)

		if !found || cost < bestCost || (cost == bestCost && weekHours < bestWeekHours) {
			found = true
			best = emp
			bestCost = cost
			bestWeekHours = weekHours
		}
	}

	return best
}
