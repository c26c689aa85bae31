package solver

import (
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

const (
	crossThresholdBonus = -500
	partialProgressBonus = -100
)

// minimumHours looks up an employee's MINIMUM_HOURS parameter, or 0 (no
// requirement) if they carry none.
func minimumHours(roster *model.Roster, emp model.EmployeeID) (float64, bool) {
	for _, r := range roster.RulesFor(emp) {
		if mh, ok := r.(constraint.MinimumHours); ok {
			return mh.Min, true
		}
	}
	return 0, false
}

// MinimumHoursFill runs the pay-period shortfall pass (§4.8): for each
// employee under their MINIMUM_HOURS floor, try placing them in an open
// required slot within that pay period, scoring the placement with a
// bonus for crossing the threshold or making partial progress. Applies
// only the single best plan found each iteration, stopping once no
// candidate placement improves the score.
func MinimumHoursFill(s *model.Schedule, roster *model.Roster, eval *evaluator.Evaluator, shiftLength float64) *model.Schedule {
	current := s.Clone()

	for {
		baseScore := eval.Score(current)
		bestDelta := 0.0
		bestCoord := Coord{}
		bestEmp := model.Unfilled
		found := false

		for _, emp := range roster.All() {
			min, ok := minimumHours(roster, emp)
			if !ok {
				continue
			}
			capHours := hoursPerPayPeriodCap(roster, emp)

			for payWeek := 1; payWeek < current.Weeks; payWeek += 2 {
				from, to := payPeriodRange(payWeek)
				before := current.HoursInWeeks(emp, from, to)
				if before >= min {
					continue
				}

				for w := from; w <= to; w++ {
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
							if !current.Get(w, d, slot).IsUnfilled() {
								continue
							}
							coord := Coord{Week: w, Day: d, Slot: slot}
							if !passesHardFilters(current, roster, emp, coord, shiftLength) {
								continue
							}

							current.Set(w, d, slot, emp)
							after := current.HoursInWeeks(emp, from, to)
							delta := eval.Score(current) - baseScore

							bonus := 0.0
							switch {
							case before < min && min <= after && after <= capHours:
								bonus = crossThresholdBonus
							case before < after && after < min && after <= capHours:
								bonus = partialProgressBonus
							}
							total := delta + bonus

							current.Set(w, d, slot, model.Unfilled)

							if total < bestDelta {
								bestDelta = total
								bestCoord = coord
								bestEmp = emp
								found = true
							}
						}
					}
				}
			}
		}

		if !found || bestDelta >= 0 {
			break
		}
		current.Set(bestCoord.Week, bestCoord.Day, bestCoord.Slot, bestEmp)
	}

	return current
}
