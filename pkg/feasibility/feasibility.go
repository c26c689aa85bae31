// Package feasibility implements the staff-hours pre-check that runs
// before the solver ever sees a schedule (§7: "total staff-hour capacity
// < required shift-hours... the solver itself is never invoked").
package feasibility

import (
	"fmt"

	"github.com/rotaworks/scheduler/pkg/errors"
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
)

const (
	weekdayShiftsPerFullWeek  = 3 * 5 // D1, D2, N on each of 5 weekdays
	weekdayShiftsPerOddWeek   = 2 * 5 // no D2 on the weekend-off week's Wednesday pattern
	weekendShiftsPerWeek      = 2 * 2 // Sat+Sun, D1+N (D2 never exists on weekends)
)

// Report is the outcome of a pre-check run.
type Report struct {
	Feasible            bool
	RequiredShifts       int
	RequiredHours        float64
	TotalAvailableHours  float64
}

// Check computes required shift-hours against the roster's total
// HOURS_PER_PAY_PERIOD capacity across the run, grounded on the source's
// isFeasible. Even weeks get a full D1+D2+N weekday pattern; odd weeks
// drop the D2 slot on all five weekdays, matching the biweekly D2 pattern
// (§3 D2_FILLED).
func Check(roster *model.Roster, weeks int) Report {
	evenWeeks := weeks / 2
	oddWeeks := weeks - evenWeeks

	requiredShifts := evenWeeks*weekdayShiftsPerFullWeek + oddWeeks*weekdayShiftsPerOddWeek + weeks*weekendShiftsPerWeek
	requiredHours := float64(requiredShifts) * model.ShiftLength

	var totalAvailable float64
	payPeriods := float64(weeks / 2)
	for _, id := range roster.All() {
		for _, r := range roster.RulesFor(id) {
			if hr, ok := r.(constraint.HoursPerPayPeriod); ok {
				totalAvailable += hr.Cap * payPeriods
				break
			}
		}
	}

	return Report{
		Feasible:            totalAvailable >= requiredHours,
		RequiredShifts:      requiredShifts,
		RequiredHours:       requiredHours,
		TotalAvailableHours: totalAvailable,
	}
}

// CheckOrError runs Check and turns an infeasible result into the
// standard infeasibility error value (§7), so callers that just want a
// go/no-go can treat this like any other pre-flight validation.
func CheckOrError(roster *model.Roster, weeks int) (*Report, error) {
	report := Check(roster, weeks)
	if !report.Feasible {
		reason := fmt.Sprintf(
			"required %.0f staff-hours over %d weeks, only %.0f available",
			report.RequiredHours, weeks, report.TotalAvailableHours,
		)
		return &report, errors.Infeasible(reason)
	}
	return &report, nil
}
