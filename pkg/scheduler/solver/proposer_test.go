package solver

import (
	"math/rand"
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

func TestProposer_FillsEmptySchedule(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	eval := evaluator.New(roster, DefaultConfig())
	rng := rand.New(rand.NewSource(1))
	p := NewProposer(roster, eval, rng, DefaultConfig().ShiftLength)

	next, ok := p.Propose(s)
	if !ok {
		t.Fatal("expected a fill move on an empty schedule")
	}
	if next.Equal(s) {
		t.Error("expected the proposed state to differ from the input")
	}
}

func TestProposer_DeprioritizesLastFilled(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	eval := evaluator.New(roster, DefaultConfig())
	rng := rand.New(rand.NewSource(1))
	p := NewProposer(roster, eval, rng, DefaultConfig().ShiftLength)

	order := Order(s, roster)
	unfilled := OnlyUnfilled(s, order)
	if len(unfilled) == 0 {
		t.Fatal("expected open slots on an empty schedule")
	}
	p.lastFilled = &unfilled[0]

	deprioritized := deprioritize(unfilled, p.lastFilled)
	if deprioritized[len(deprioritized)-1] != unfilled[0] {
		t.Error("expected the last-filled coordinate to move to the end of the ordering")
	}
}
