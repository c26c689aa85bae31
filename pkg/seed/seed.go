// Package seed builds the initial schedule grid an external templater
// hands to the solver (§6 "Input schedule"): weekends pre-populated by a
// round-robin rotation, weekdays left UNFILLED except a biweekly
// Wednesday D2 anchor assignment. Grounded on the original's
// Templater.fillWeekends/makeTemplate.
package seed

import "github.com/rotaworks/scheduler/pkg/model"

// Config names the one employee who anchors the even-week D1 weekend slot
// and the even-week Wednesday D2 slot (the source's hard-coded "David").
type Config struct {
	AnchorName string
}

// rotation is a round-robin queue of candidate employees for one weekend
// role (day or night), cycling through the pool as slots are filled.
type rotation struct {
	ids []model.EmployeeID
}

func newRotation(ids []model.EmployeeID) *rotation {
	cp := make([]model.EmployeeID, len(ids))
	copy(cp, ids)
	return &rotation{ids: cp}
}

func (r *rotation) next() (model.EmployeeID, bool) {
	if len(r.ids) == 0 {
		return model.Unfilled, false
	}
	id := r.ids[0]
	r.ids = append(r.ids[1:], id)
	return id, true
}

func anchorID(roster *model.Roster, name string) model.EmployeeID {
	for id, emp := range roster.Employees {
		if emp.Name == name {
			return id
		}
	}
	return model.Unfilled
}

func excludingAnchor(ids []model.EmployeeID, anchor model.EmployeeID) []model.EmployeeID {
	out := make([]model.EmployeeID, 0, len(ids))
	for _, id := range ids {
		if id != anchor {
			out = append(out, id)
		}
	}
	return out
}

// BuildTemplate produces the starting grid: weekdays UNFILLED (with the
// anchor on D2 every even week's Wednesday), weekends filled by rotating
// day and night pools, Sunday mirroring Saturday's assignment.
func BuildTemplate(roster *model.Roster, weeks int, cfg Config) *model.Schedule {
	s := model.NewSchedule(weeks)
	anchor := anchorID(roster, cfg.AnchorName)

	dayCandidates := excludingAnchor(append(roster.Pools[model.PoolDay], roster.Pools[model.PoolFloat]...), anchor)
	nightCandidates := excludingAnchor(append(roster.Pools[model.PoolNight], roster.Pools[model.PoolFloat]...), anchor)
	dayRotation := newRotation(dayCandidates)
	nightRotation := newRotation(nightCandidates)

	for w := 0; w < weeks; w++ {
		if w%2 == 0 {
			s.Set(w, int(model.Wednesday), int(model.D2), anchor)
		}
		fillWeekend(s, w, anchor, dayRotation, nightRotation)
	}

	return s
}

func fillWeekend(s *model.Schedule, w int, anchor model.EmployeeID, dayRotation, nightRotation *rotation) {
	sat := int(model.Saturday)
	sun := int(model.Sunday)

	if emp, ok := nightRotation.next(); ok {
		s.Set(w, sat, int(model.N), emp)
	}
	s.Set(w, sat, int(model.D2), model.Unfilled)

	if w%2 == 0 {
		s.Set(w, sat, int(model.D1), anchor)
		if emp, ok := dayRotation.next(); ok {
			s.Set(w, sat, int(model.D2), emp)
		}
	} else if emp, ok := dayRotation.next(); ok {
		s.Set(w, sat, int(model.D1), emp)
	}

	// Sunday inherits Saturday's assignment for weekend-pair consistency.
	for _, slot := range []int{int(model.D1), int(model.D2), int(model.N)} {
		s.Set(w, sun, slot, s.Get(w, sat, slot))
	}
}
