// Package constraint holds the concrete rule catalogue: one Go type per
// constraint kind in spec §3, each implementing model.Rule or
// model.GlobalRule. This replaces the conditional-on-name predicate of the
// source with a tagged variant per §9 Design Notes — the evaluator
// dispatches through the interface, never through a name switch.
package constraint

import "github.com/rotaworks/scheduler/pkg/model"

// D1FilledRule requires every (w,d,0) to hold a real employee. Weekends are
// pre-seeded externally (§6), but the rule itself makes no exception —
// it simply reports whatever gap remains.
type D1FilledRule struct{}

func (D1FilledRule) Kind() model.Kind         { return model.KindD1Filled }
func (D1FilledRule) Severity() model.Severity { return model.Absolute }

func (D1FilledRule) Satisfied(s *model.Schedule, w, d, slot int) bool {
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			if s.Get(w, d, int(model.D1)).IsUnfilled() {
				return false
			}
		}
	}
	return true
}

// D2FilledRule requires every (w,d,1) to hold a real employee, except on
// Tuesdays and Fridays (no D2 exists there) and on weekend days of
// odd-indexed weeks (biweekly weekend-off pattern).
type D2FilledRule struct{}

func (D2FilledRule) Kind() model.Kind         { return model.KindD2Filled }
func (D2FilledRule) Severity() model.Severity { return model.Absolute }

func (D2FilledRule) Satisfied(s *model.Schedule, w, d, slot int) bool {
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			if !model.D2Exists(w, model.Weekday(d)) {
				continue
			}
			if s.Get(w, d, int(model.D2)).IsUnfilled() {
				return false
			}
		}
	}
	return true
}

// NFilledRule requires every (w,d,2) to hold a real employee.
type NFilledRule struct{}

func (NFilledRule) Kind() model.Kind         { return model.KindNFilled }
func (NFilledRule) Severity() model.Severity { return model.Absolute }

func (NFilledRule) Satisfied(s *model.Schedule, w, d, slot int) bool {
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			if s.Get(w, d, int(model.N)).IsUnfilled() {
				return false
			}
		}
	}
	return true
}

// Globals returns the three mandatory global coverage rules in the order
// the evaluator and slot-ordering's hard-filter scan expect.
func Globals() []model.GlobalRule {
	return []model.GlobalRule{D1FilledRule{}, D2FilledRule{}, NFilledRule{}}
}
