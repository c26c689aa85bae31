package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotaworks/scheduler/pkg/scheduler/solver"
)

func testConfig() solver.Config {
	cfg := solver.DefaultConfig()
	cfg.EpochLimit = 30
	cfg.Patience = 15
	cfg.RandomSeed = 7
	return cfg
}

func smallRequest() GenerateRequest {
	return GenerateRequest{
		Weeks: 2,
		Employees: []EmployeeInput{
			{ID: 1, Name: "David", FTE: 1.0, Pool: "day"},
			{ID: 2, Name: "Kati", FTE: 1.0, Pool: "day"},
			{ID: 3, Name: "Britt", FTE: 1.0, Pool: "night"},
			{ID: 4, Name: "Liz", FTE: 1.0, Pool: "night"},
			{ID: 5, Name: "Ashley", FTE: 1.0, Pool: "float"},
		},
	}
}

func TestScheduleHandler_Generate(t *testing.T) {
	h := NewScheduleHandler(nil, testConfig(), "David")

	body, err := json.Marshal(smallRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Grid) != 2 {
		t.Errorf("expected a 2-week grid, got %d weeks", len(resp.Grid))
	}
	if resp.Fairness == nil {
		t.Error("expected fairness metrics to be populated")
	}
}

func TestScheduleHandler_Generate_RejectsEmptyRoster(t *testing.T) {
	h := NewScheduleHandler(nil, testConfig(), "David")

	body, _ := json.Marshal(GenerateRequest{Weeks: 2})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty roster, got %d", rec.Code)
	}
}

func TestScheduleHandler_Validate(t *testing.T) {
	h := NewScheduleHandler(nil, testConfig(), "David")

	req3 := smallRequest()
	valReq := ValidateRequest{Weeks: req3.Weeks, Employees: req3.Employees, Grid: make([][][]int, 2)}
	for w := range valReq.Grid {
		valReq.Grid[w] = make([][]int, 7)
		for d := range valReq.Grid[w] {
			valReq.Grid[w][d] = make([]int, 3)
		}
	}

	body, _ := json.Marshal(valReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Validate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ValidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Score < 0 {
		t.Errorf("expected a non-negative score, got %f", resp.Score)
	}
}
