package solver

import (
	"sort"

	"github.com/rotaworks/scheduler/pkg/model"
)

// Coord addresses one grid cell.
type Coord struct {
	Week, Day, Slot int
}

// slotOrder and dayPri implement the priority formula of §4.3:
// pri = SLOT_ORDER[s]*10 + DAY_PRI[d] — day-1 and night before day-2,
// midweek before the rest.
var slotOrder = map[model.Slot]int{model.D1: 0, model.N: 1, model.D2: 2}

var dayPri = map[model.Weekday]int{
	model.Thursday:  0,
	model.Wednesday: 1,
	model.Monday:    2,
}

func priority(d model.Weekday, slot model.Slot) int {
	p, ok := dayPri[d]
	if !ok {
		p = 3
	}
	return slotOrder[slot]*10 + p
}

// triagedSlot carries the three sort keys computed for one open cell.
type triagedSlot struct {
	coord   Coord
	hardOK  int
	pri     int
	minSoft int
}

// eligibleEmployees returns every employee in the pool(s) that may staff the
// given slot kind: day pools for D1/D2, night pool for N, float always
// eligible either way.
func eligibleEmployees(roster *model.Roster, slot model.Slot) []model.EmployeeID {
	var pools []model.Pool
	switch slot {
	case model.D1, model.D2:
		pools = []model.Pool{model.PoolDay, model.PoolFloat}
	case model.N:
		pools = []model.Pool{model.PoolNight, model.PoolFloat}
	}
	var out []model.EmployeeID
	for _, id := range roster.All() {
		for _, p := range pools {
			if roster.InPool(id, p) {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// hardOKCount tentatively assigns each eligible employee to (w,d,slot) and
// counts how many would satisfy every one of their ABSOLUTE per-employee
// predicates. The cell is restored to its prior value after each probe
// (§4.3, §5: trial mutations must leave the grid unchanged on return).
func hardOKCount(s *model.Schedule, roster *model.Roster, coord Coord, candidates []model.EmployeeID) int {
	prev := s.Get(coord.Week, coord.Day, coord.Slot)
	count := 0
	for _, emp := range candidates {
		s.Set(coord.Week, coord.Day, coord.Slot, emp)
		if allAbsoluteSatisfied(s, roster, emp, coord) {
			count++
		}
	}
	s.Set(coord.Week, coord.Day, coord.Slot, prev)
	return count
}

func allAbsoluteSatisfied(s *model.Schedule, roster *model.Roster, emp model.EmployeeID, coord Coord) bool {
	for _, r := range roster.RulesFor(emp) {
		if r.Severity() != model.Absolute {
			continue
		}
		if !r.Satisfied(s, emp, coord.Week, coord.Day, coord.Slot) {
			return false
		}
	}
	return true
}

// minSoftCount is the minimum, over eligible candidates, of how many of the
// employee's RELATIVE predicates a tentative placement would leave failing.
// Used only to rank slots, never to choose an employee (that is the
// candidate selector's job, §4.4).
func minSoftCount(s *model.Schedule, roster *model.Roster, coord Coord, candidates []model.EmployeeID) int {
	if len(candidates) == 0 {
		return 1 << 30
	}
	prev := s.Get(coord.Week, coord.Day, coord.Slot)
	best := 1 << 30
	for _, emp := range candidates {
		s.Set(coord.Week, coord.Day, coord.Slot, emp)
		soft := 0
		for _, r := range roster.RulesFor(emp) {
			if r.Severity() == model.Relative && !r.Satisfied(s, emp, coord.Week, coord.Day, coord.Slot) {
				soft++
			}
		}
		if soft < best {
			best = soft
		}
	}
	s.Set(coord.Week, coord.Day, coord.Slot, prev)
	return best
}

// Order produces the most-constrained-first fill order (§4.3): weekends are
// pre-seeded externally and skipped, as is D2 on Tuesday/Friday where no
// such slot exists. Ties break on priority, then on the best soft-cost any
// eligible candidate could achieve.
//
// Order probes candidates by writing them into s and restoring each cell
// afterwards, so s must not be read or written by another goroutine while
// it runs.
func Order(s *model.Schedule, roster *model.Roster) []Coord {
	var triaged []triagedSlot
	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			weekday := model.Weekday(d)
			if weekday.IsWeekend() {
				continue
			}
			for slot := 0; slot < model.Slots; slot++ {
				sl := model.Slot(slot)
				if sl == model.D2 && !model.D2Exists(w, weekday) {
					continue
				}
				coord := Coord{Week: w, Day: d, Slot: slot}
				candidates := eligibleEmployees(roster, sl)
				triaged = append(triaged, triagedSlot{
					coord:   coord,
					hardOK:  hardOKCount(s, roster, coord, candidates),
					pri:     priority(weekday, sl),
					minSoft: minSoftCount(s, roster, coord, candidates),
				})
			}
		}
	}

	sort.SliceStable(triaged, func(i, j int) bool {
		a, b := triaged[i], triaged[j]
		if a.hardOK != b.hardOK {
			return a.hardOK < b.hardOK
		}
		if a.pri != b.pri {
			return a.pri < b.pri
		}
		return a.minSoft < b.minSoft
	})

	out := make([]Coord, len(triaged))
	for i, t := range triaged {
		out[i] = t.coord
	}
	return out
}

// OnlyUnfilled filters a slot ordering down to the cells that currently
// hold no employee — the fill strategy's working set (§4.5).
func OnlyUnfilled(s *model.Schedule, order []Coord) []Coord {
	out := make([]Coord, 0, len(order))
	for _, c := range order {
		if s.Get(c.Week, c.Day, c.Slot).IsUnfilled() {
			out = append(out, c)
		}
	}
	return out
}
