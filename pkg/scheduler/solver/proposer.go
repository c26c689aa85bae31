package solver

import (
	"math/rand"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

// Proposer implements the two move strategies of §4.5: fill an open slot,
// or — failing that — swap two violating cells. It remembers the last
// slot it filled so the next call deprioritises it, preventing livelock on
// a single unfillable slot.
type Proposer struct {
	roster      *model.Roster
	eval        *evaluator.Evaluator
	rng         *rand.Rand
	shiftLength float64
	lastFilled  *Coord
}

// NewProposer builds a Proposer bound to one roster, evaluator and PRNG.
// The PRNG is shared with the rest of the solver instance (§5: "a single
// PRNG per solver instance").
func NewProposer(roster *model.Roster, eval *evaluator.Evaluator, rng *rand.Rand, shiftLength float64) *Proposer {
	return &Proposer{roster: roster, eval: eval, rng: rng, shiftLength: shiftLength}
}

// ResetDeprioritization clears the remembered last-filled slot. Called by
// the annealing driver on accept or restart, since a slot that just
// succeeded (or a fresh start from the best-known state) no longer needs
// deprioritising (§4.6 step 4: "clear last-rejected").
func (p *Proposer) ResetDeprioritization() {
	p.lastFilled = nil
}

// Propose returns a candidate next state, or false if no fill or swap move
// exists (signals the greedy driver to terminate, §4.6 step 2).
func (p *Proposer) Propose(s *model.Schedule) (*model.Schedule, bool) {
	if next, ok := p.proposeFill(s); ok {
		return next, true
	}
	return p.proposeSwap(s)
}

func (p *Proposer) proposeFill(s *model.Schedule) (*model.Schedule, bool) {
	order := Order(s, p.roster)
	unfilled := OnlyUnfilled(s, order)
	unfilled = deprioritize(unfilled, p.lastFilled)

	for _, coord := range unfilled {
		emp := Select(s, p.roster, p.eval, coord, p.shiftLength)
		if emp.IsUnfilled() {
			continue
		}
		next := s.Clone()
		next.Set(coord.Week, coord.Day, coord.Slot, emp)
		c := coord
		p.lastFilled = &c
		return next, true
	}
	return nil, false
}

// deprioritize moves last, if present in order, to the end of the slice —
// "remember the last slot returned so the next call deprioritises it" (§4.5).
func deprioritize(order []Coord, last *Coord) []Coord {
	if last == nil {
		return order
	}
	out := make([]Coord, 0, len(order))
	var deferred *Coord
	for _, c := range order {
		if c == *last {
			cc := c
			deferred = &cc
			continue
		}
		out = append(out, c)
	}
	if deferred != nil {
		out = append(out, *deferred)
	}
	return out
}

// violatingCoord is one non-UNFILLED cell where the assigned employee's own
// predicates fail (§4.5: "any of the employee's own constraints fails").
type violatingCoord struct {
	coord Coord
	emp   model.EmployeeID
}

func (p *Proposer) violatingCells(s *model.Schedule) []violatingCoord {
	res := p.eval.CountViolations(s)
	seen := make(map[Coord]bool)
	var out []violatingCoord
	for _, v := range res.Violations {
		if v.Employee.IsUnfilled() {
			continue
		}
		if model.Weekday(v.Day).IsWeekend() {
			continue
		}
		coord := Coord{Week: v.Week, Day: v.Day, Slot: v.Slot}
		if seen[coord] {
			continue
		}
		seen[coord] = true
		out = append(out, violatingCoord{coord: coord, emp: v.Employee})
	}
	return out
}

func (p *Proposer) proposeSwap(s *model.Schedule) (*model.Schedule, bool) {
	violations := p.violatingCells(s)
	if len(violations) == 0 {
		return nil, false
	}

	if len(violations) == 1 {
		coord := violations[0].coord
		emp := Select(s, p.roster, p.eval, coord, p.shiftLength)
		if !emp.IsUnfilled() {
			next := s.Clone()
			next.Set(coord.Week, coord.Day, coord.Slot, emp)
			return next, true
		}
		return nil, false
	}

	absBefore := absoluteCount(p.eval, s)
	attempts := len(violations) * len(violations)
	if attempts > 200 {
		attempts = 200
	}
	for i := 0; i < attempts; i++ {
		a := violations[p.rng.Intn(len(violations))]
		b := violations[p.rng.Intn(len(violations))]
		if a.coord == b.coord {
			continue
		}
		next := s.Clone()
		empA := next.Get(a.coord.Week, a.coord.Day, a.coord.Slot)
		empB := next.Get(b.coord.Week, b.coord.Day, b.coord.Slot)
		next.Set(a.coord.Week, a.coord.Day, a.coord.Slot, empB)
		next.Set(b.coord.Week, b.coord.Day, b.coord.Slot, empA)
		if absoluteCount(p.eval, next) <= absBefore {
			return next, true
		}
	}
	return nil, false
}

func absoluteCount(eval *evaluator.Evaluator, s *model.Schedule) int {
	res := eval.CountViolations(s)
	return res.GlobalAbsolute + res.StaffAbsolute
}
