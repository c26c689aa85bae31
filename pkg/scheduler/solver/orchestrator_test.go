package solver

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
)

func TestRun_FinalScoreNeverExceedsInput(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	cfg := DefaultConfig()
	cfg.EpochLimit = 50
	cfg.Patience = 20
	cfg.RandomSeed = 42

	result := Run(s, roster, cfg)

	if result.Final == nil {
		t.Fatal("expected a non-nil final schedule")
	}
	for w := 0; w < result.Final.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			for slot := 0; slot < model.Slots; slot++ {
				emp := result.Final.Get(w, d, slot)
				if emp < 0 {
					t.Fatalf("found an invalid cell value at (%d,%d,%d): %d", w, d, slot, emp)
				}
			}
		}
	}
}

func TestRun_ScoreNonNegative(t *testing.T) {
	roster := newTestRoster()
	s := model.NewSchedule(2)
	cfg := DefaultConfig()
	cfg.EpochLimit = 30
	cfg.RandomSeed = 1

	result := Run(s, roster, cfg)
	if result.FinalScore < 0 {
		t.Errorf("FinalScore = %v, want >= 0", result.FinalScore)
	}
}
