package solver

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

func TestMinimumHoursFill_ImprovesUnderflowingEmployee(t *testing.T) {
	roster := newTestRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(2)

	// Alice works only one shift all pay period: far under her MINIMUM_HOURS floor.
	s.Set(0, 0, int(model.D1), 1)

	before := s.HoursInWeeks(1, 0, 1)
	filled := MinimumHoursFill(s, roster, eval, DefaultConfig().ShiftLength)
	after := filled.HoursInWeeks(1, 0, 1)

	if after <= before {
		t.Errorf("minimum-hours fill should add hours for an employee under the floor: before=%v after=%v", before, after)
	}
}

func TestMinimumHoursFill_DoesNotMutateInput(t *testing.T) {
	roster := newTestRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(2)
	before := s.Clone()

	MinimumHoursFill(s, roster, eval, DefaultConfig().ShiftLength)

	if !s.Equal(before) {
		t.Error("MinimumHoursFill must operate on a clone, leaving its input unchanged")
	}
}
