package solver

import (
	"math/rand"
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

func TestRunGreedy_NeverWorsensBestScore(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	eval := evaluator.New(roster, DefaultConfig())
	rng := rand.New(rand.NewSource(7))
	cfg := DefaultConfig()
	cfg.EpochLimit = 50
	cfg.Patience = 20
	p := NewProposer(roster, eval, rng, cfg.ShiftLength)

	startScore := eval.Score(s)
	result := RunGreedy(s, roster, eval, p, cfg, rng, nil)

	if result.BestScore > startScore {
		t.Errorf("best score %v should never exceed the starting score %v", result.BestScore, startScore)
	}
	if len(result.EpochIndex) != len(result.ScoreHistory) {
		t.Error("epoch index and score history must be parallel arrays")
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		lo, hi   float64
		expected float64
	}{
		{"below range", -1, 0.9, 1.1, 0.9},
		{"above range", 5, 0.9, 1.1, 1.1},
		{"within range", 1.0, 0.9, 1.1, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clip(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("clip(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}
