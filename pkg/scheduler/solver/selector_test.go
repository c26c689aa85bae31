package solver

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

func TestSelect_DoesNotMutateSchedule(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	eval := evaluator.New(roster, DefaultConfig())
	before := s.Clone()

	Select(s, roster, eval, Coord{Week: 0, Day: 0, Slot: int(model.D1)}, DefaultConfig().ShiftLength)

	if !s.Equal(before) {
		t.Error("Select must leave the schedule bit-identical to its pre-call value")
	}
}

func TestSelect_ReturnsAbsoluteClean(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	eval := evaluator.New(roster, DefaultConfig())
	shiftLength := DefaultConfig().ShiftLength

	coord := Coord{Week: 0, Day: 0, Slot: int(model.D1)}
	emp := Select(s, roster, eval, coord, shiftLength)
	if emp.IsUnfilled() {
		t.Fatal("expected a real candidate on an empty schedule")
	}

	s.Set(coord.Week, coord.Day, coord.Slot, emp)
	for _, r := range roster.RulesFor(emp) {
		if r.Severity() != model.Absolute {
			continue
		}
		if !r.Satisfied(s, emp, coord.Week, coord.Day, coord.Slot) {
			t.Errorf("rule %s violated immediately after selection", r.Kind())
		}
	}
}

func TestSelect_NoSurvivorReturnsUnfilled(t *testing.T) {
	roster := model.NewRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(1)

	emp := Select(s, roster, eval, Coord{Week: 0, Day: 0, Slot: int(model.D1)}, DefaultConfig().ShiftLength)
	if !emp.IsUnfilled() {
		t.Errorf("expected Unfilled with an empty roster, got %d", emp)
	}
}
