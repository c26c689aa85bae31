package solver

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

func TestAbsoluteSweep_ClearsNoDayAfterNightViolation(t *testing.T) {
	roster := newTestRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(2)

	// Carol works a night shift, then a day shift the very next day:
	// an ABSOLUTE NO_DAY_AFTER_NIGHT violation.
	s.Set(0, 0, int(model.N), 3)
	s.Set(0, 1, int(model.D1), 3)

	_, remaining := AbsoluteSweep(s, roster, eval, DefaultConfig().ShiftLength)

	if remaining != 0 {
		t.Errorf("expected the sweep to clear the NO_DAY_AFTER_NIGHT violation, %d staff-absolute violation(s) remain", remaining)
	}
}

func TestAbsoluteSweep_NoViolationsIsNoOp(t *testing.T) {
	roster := newTestRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(2)

	result, remaining := AbsoluteSweep(s, roster, eval, DefaultConfig().ShiftLength)

	if remaining != 0 {
		t.Errorf("expected 0 remaining staff-absolute violations on an empty grid, got %d", remaining)
	}
	if !result.Equal(s) {
		t.Error("expected no changes when there are no staff-absolute violations to fix")
	}
}
