package stats

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
)

func testRosterTwo() *model.Roster {
	r := model.NewRoster()
	r.Add(&model.Employee{ID: 1, Name: "Alice", FTE: 1.0}, model.PoolDay, nil)
	r.Add(&model.Employee{ID: 2, Name: "Bob", FTE: 1.0}, model.PoolNight, nil)
	return r
}

func TestFairnessAnalyzer_Analyze(t *testing.T) {
	analyzer := NewFairnessAnalyzer()
	roster := testRosterTwo()

	s := model.NewSchedule(1)
	s.Set(0, 0, int(model.D1), 1)
	s.Set(0, 1, int(model.D1), 1)
	s.Set(0, 0, int(model.N), 2)

	metrics := analyzer.Analyze(s, roster)

	if metrics == nil {
		t.Fatal("metrics should not be nil")
	}
	if metrics.WorkloadGini < 0 || metrics.WorkloadGini > 1 {
		t.Errorf("Gini coefficient should be between 0 and 1, got %f", metrics.WorkloadGini)
	}
	if len(metrics.EmployeeStats) != 2 {
		t.Errorf("expected 2 employee stats, got %d", len(metrics.EmployeeStats))
	}
}

func TestFairnessAnalyzer_EmptySchedule(t *testing.T) {
	analyzer := NewFairnessAnalyzer()
	roster := testRosterTwo()

	metrics := analyzer.Analyze(model.NewSchedule(1), roster)

	if metrics == nil {
		t.Fatal("should return non-nil metrics for an empty schedule")
	}
	if metrics.OverallFairnessScore != 100 {
		t.Errorf("expected a perfect score when no one is assigned, got %v", metrics.OverallFairnessScore)
	}
}

func TestFairnessAnalyzer_PerfectFairness(t *testing.T) {
	analyzer := NewFairnessAnalyzer()
	roster := testRosterTwo()

	s := model.NewSchedule(1)
	s.Set(0, 0, int(model.D1), 1)
	s.Set(0, 0, int(model.N), 2)

	metrics := analyzer.Analyze(s, roster)

	if metrics.WorkloadGini > 0.01 {
		t.Errorf("equal workloads should have Gini near 0, got %f", metrics.WorkloadGini)
	}
}

func TestFairnessAnalyzer_OverallScoreInRange(t *testing.T) {
	analyzer := NewFairnessAnalyzer()
	roster := testRosterTwo()

	s := model.NewSchedule(1)
	s.Set(0, 0, int(model.D1), 1)

	metrics := analyzer.Analyze(s, roster)

	if metrics.OverallFairnessScore < 0 || metrics.OverallFairnessScore > 100 {
		t.Errorf("score should be 0-100, got %f", metrics.OverallFairnessScore)
	}
}
