package feasibility

import (
	"testing"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
	"github.com/rotaworks/scheduler/pkg/scheduler/solver"
)

func rosterWithFTE(n int, fte float64) *model.Roster {
	r := model.NewRoster()
	cfg := solver.DefaultConfig()
	for i := 1; i <= n; i++ {
		r.Add(&model.Employee{ID: model.EmployeeID(i), Name: "Employee", FTE: fte}, model.PoolFloat, constraint.DefaultRules(fte, cfg))
	}
	return r
}

func TestCheck_SufficientStaffing(t *testing.T) {
	roster := rosterWithFTE(8, 1.0)
	report := Check(roster, 4)

	if !report.Feasible {
		t.Errorf("expected 8 full-time employees to cover 4 weeks, got report=%+v", report)
	}
}

func TestCheck_InsufficientStaffing(t *testing.T) {
	roster := rosterWithFTE(1, 0.1)
	report := Check(roster, 4)

	if report.Feasible {
		t.Errorf("expected a single low-FTE employee to fail the feasibility check, got report=%+v", report)
	}
}

func TestCheckOrError_ReturnsInfeasibleError(t *testing.T) {
	roster := rosterWithFTE(1, 0.1)
	_, err := CheckOrError(roster, 4)

	if err == nil {
		t.Fatal("expected an error for an infeasible roster")
	}
}
