package seed

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
	"github.com/rotaworks/scheduler/pkg/scheduler/solver"
)

func testRoster() *model.Roster {
	r := model.NewRoster()
	cfg := solver.DefaultConfig()
	r.Add(&model.Employee{ID: 1, Name: "David", FTE: 1.0}, model.PoolDay, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 2, Name: "Kati", FTE: 1.0}, model.PoolDay, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 3, Name: "Britt", FTE: 1.0}, model.PoolNight, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 4, Name: "Liz", FTE: 1.0}, model.PoolNight, constraint.DefaultRules(1.0, cfg))
	r.Add(&model.Employee{ID: 5, Name: "Ashley", FTE: 1.0}, model.PoolFloat, constraint.DefaultRules(1.0, cfg))
	return r
}

func TestBuildTemplate_WeekdaysUnfilledExceptAnchorWednesday(t *testing.T) {
	roster := testRoster()
	s := BuildTemplate(roster, 4, Config{AnchorName: "David"})

	for w := 0; w < 4; w++ {
		for d := 0; d < model.Days; d++ {
			weekday := model.Weekday(d)
			if weekday.IsWeekend() {
				continue
			}
			for slot := 0; slot < model.Slots; slot++ {
				got := s.Get(w, d, slot)
				isAnchorWed := w%2 == 0 && weekday == model.Wednesday && model.Slot(slot) == model.D2
				if isAnchorWed {
					if got != 1 {
						t.Errorf("expected anchor at (%d,%d,%d), got %d", w, d, slot, got)
					}
					continue
				}
				if !got.IsUnfilled() {
					t.Errorf("expected UNFILLED weekday cell at (%d,%d,%d), got %d", w, d, slot, got)
				}
			}
		}
	}
}

func TestBuildTemplate_WeekendsFilled(t *testing.T) {
	roster := testRoster()
	s := BuildTemplate(roster, 4, Config{AnchorName: "David"})

	for w := 0; w < 4; w++ {
		if s.Get(w, int(model.Saturday), int(model.N)).IsUnfilled() {
			t.Errorf("expected Saturday night filled at week %d", w)
		}
		if s.Get(w, int(model.Sunday), int(model.N)) != s.Get(w, int(model.Saturday), int(model.N)) {
			t.Errorf("expected Sunday to mirror Saturday's night assignment at week %d", w)
		}
	}
}
