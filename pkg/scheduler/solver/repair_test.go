package solver

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

func TestRepair_NeverIncreasesScore(t *testing.T) {
	roster := newTestRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(2)

	// Seed a partially-filled grid so repair has real work to do.
	for w := 0; w < 2; w++ {
		for d := 0; d < model.Days; d++ {
			if model.Weekday(d).IsWeekend() {
				continue
			}
			s.Set(w, d, int(model.D1), 1)
			s.Set(w, d, int(model.N), 3)
		}
	}

	before := eval.Score(s)
	repaired := Repair(s, roster, eval, DefaultConfig().ShiftLength)
	after := eval.Score(repaired)

	if after > before {
		t.Errorf("repair must never increase score: before=%v after=%v", before, after)
	}
}

func TestRepair_DoesNotMutateInput(t *testing.T) {
	roster := newTestRoster()
	eval := evaluator.New(roster, DefaultConfig())
	s := model.NewSchedule(2)
	before := s.Clone()

	Repair(s, roster, eval, DefaultConfig().ShiftLength)

	if !s.Equal(before) {
		t.Error("Repair must operate on a clone, leaving its input unchanged")
	}
}
