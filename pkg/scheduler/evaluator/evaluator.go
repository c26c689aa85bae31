// Package evaluator counts constraint violations and reduces a schedule to
// the single scalar score the rest of the pipeline optimises against
// (§4.2). It is the one place severity (ABSOLUTE vs RELATIVE) is turned
// into a number — every other component only asks rules yes/no questions.
package evaluator

import (
	"fmt"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/config"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
)

// Violation describes one failing predicate for reporting (§4.2:
// count_violations "also returns human-readable descriptions").
type Violation struct {
	Kind        model.Kind
	Severity    model.Severity
	Employee    model.EmployeeID
	Week, Day   int
	Slot        int
	Description string
}

// Result is the full violation breakdown for one schedule.
type Result struct {
	GlobalAbsolute int
	GlobalRelative int
	StaffAbsolute  int
	StaffRelative  int
	Violations     []Violation
}

// Evaluator holds the fixed inputs needed to score any schedule for one
// roster: the global coverage rules and the solver's penalty weights.
// It never holds a schedule itself — every method takes one as an
// argument, so the same Evaluator serves every phase and every trial
// mutation (§4.1 rationale).
type Evaluator struct {
	roster *model.Roster
	cfg    config.Config
}

// New builds an Evaluator bound to a roster and the solver's scoring
// configuration.
func New(roster *model.Roster, cfg config.Config) *Evaluator {
	return &Evaluator{roster: roster, cfg: cfg}
}

// CountViolations walks all global constraints once, then every non-UNFILLED
// cell against every per-employee constraint, classifying failures by
// severity (§4.2).
func (e *Evaluator) CountViolations(s *model.Schedule) Result {
	var res Result

	for _, g := range constraint.Globals() {
		if g.Satisfied(s, 0, 0, 0) {
			continue
		}
		v := Violation{
			Kind:        g.Kind(),
			Severity:    g.Severity(),
			Description: fmt.Sprintf("%s: global coverage violated", g.Kind()),
		}
		res.Violations = append(res.Violations, v)
		if g.Severity() == model.Absolute {
			res.GlobalAbsolute++
		} else {
			res.GlobalRelative++
		}
	}

	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			for slot := 0; slot < model.Slots; slot++ {
				emp := s.Get(w, d, slot)
				if emp.IsUnfilled() {
					continue
				}
				for _, r := range e.roster.RulesFor(emp) {
					if r.Satisfied(s, emp, w, d, slot) {
						continue
					}
					v := Violation{
						Kind: r.Kind(), Severity: r.Severity(), Employee: emp,
						Week: w, Day: d, Slot: slot,
						Description: fmt.Sprintf("%s: employee %d violates %s at week %d day %d slot %d",
							r.Kind(), emp, r.Kind(), w, d, slot),
					}
					res.Violations = append(res.Violations, v)
					if r.Severity() == model.Absolute {
						res.StaffAbsolute++
					} else {
						res.StaffRelative++
					}
				}
			}
		}
	}

	return res
}

// Score reduces a schedule to the scalar the search pipeline optimises:
// (g_abs + s_abs) * ABS_PENALTY + g_rel + s_rel + UNFILLED_PENALTY ×
// unfilled_required_cells (§4.2). The ABS_PENALTY cliff guarantees any
// absolute-violating state scores worse than any absolute-clean one.
func (e *Evaluator) Score(s *model.Schedule) float64 {
	res := e.CountViolations(s)
	abs := res.GlobalAbsolute + res.StaffAbsolute
	rel := res.GlobalRelative + res.StaffRelative
	unfilled := e.unfilledRequiredCells(s)
	return float64(abs*e.cfg.ABSPenalty) + float64(rel) + float64(unfilled*e.cfg.UnfilledPenalty)
}

// unfilledRequiredCells counts cells on all seven days that must hold an
// employee but don't: every D1 and N slot, and D2 except on Tuesday/Friday and on a
// weekend-off week's weekend days (§4.2: "required excludes D2 on Tue/Fri
// and D2 on weekend-off weeks").
func (e *Evaluator) unfilledRequiredCells(s *model.Schedule) int {
	count := 0
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			if s.Get(w, d, int(model.D1)).IsUnfilled() {
				count++
			}
			if s.Get(w, d, int(model.N)).IsUnfilled() {
				count++
			}
			if model.D2Exists(w, model.Weekday(d)) && s.Get(w, d, int(model.D2)).IsUnfilled() {
				count++
			}
		}
	}
	return count
}
