package solver

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
)

func newTestRoster() *model.Roster {
	r := model.NewRoster()
	cfg := DefaultConfig()
	r.Add(&model.Employee{ID: 1, Name: "Alice", FTE: 1.0}, model.PoolDay, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 2, Name: "Bob", FTE: 1.0}, model.PoolDay, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 3, Name: "Carol", FTE: 1.0}, model.PoolNight, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 4, Name: "Dave", FTE: 1.0}, model.PoolNight, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 5, Name: "Erin", FTE: 1.0}, model.PoolFloat, constraint.DefaultRules(1.0, cfg))
	return r
}

func TestOrder_SkipsWeekendsAndNonexistentD2(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)

	order := Order(s, roster)
	for _, c := range order {
		weekday := model.Weekday(c.Day)
		if weekday.IsWeekend() {
			t.Fatalf("expected no weekend coordinates in ordering, got %+v", c)
		}
		if model.Slot(c.Slot) == model.D2 && !model.D2Exists(c.Week, weekday) {
			t.Fatalf("expected no D2 on Tue/Fri or weekend-off weeks, got %+v", c)
		}
	}
}

func TestOrder_DoesNotMutateSchedule(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	before := s.Clone()

	Order(s, roster)

	if !s.Equal(before) {
		t.Error("Order must leave the schedule bit-identical to its pre-call value")
	}
}
