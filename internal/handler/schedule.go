// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rotaworks/scheduler/internal/store"
	"github.com/rotaworks/scheduler/pkg/errors"
	"github.com/rotaworks/scheduler/pkg/feasibility"
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/constraint"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
	"github.com/rotaworks/scheduler/pkg/scheduler/solver"
	"github.com/rotaworks/scheduler/pkg/seed"
	"github.com/rotaworks/scheduler/pkg/stats"
)

// ScheduleHandler 排班处理器
type ScheduleHandler struct {
	runs   *store.RunStore
	cfg    solver.Config
	anchor string
}

// NewScheduleHandler 创建排班处理器
func NewScheduleHandler(runs *store.RunStore, cfg solver.Config, anchorName string) *ScheduleHandler {
	return &ScheduleHandler{runs: runs, cfg: cfg, anchor: anchorName}
}

// EmployeeInput 员工输入
type EmployeeInput struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	FTE  float64 `json:"fte"`
	Pool string  `json:"pool"` // day/night/float
}

// GenerateRequest 排班生成请求
type GenerateRequest struct {
	Weeks     int             `json:"weeks"`
	Employees []EmployeeInput `json:"employees"`
	// Grid, if present, seeds the solver directly instead of building a
	// fresh weekend-rotation template (§6: input schedule supplied by an
	// external templater, or here, a caller-provided partial grid).
	Grid [][][]int `json:"grid,omitempty"`
}

// ViolationOutput 违规输出
type ViolationOutput struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Employee    int    `json:"employee_id"`
	Week        int    `json:"week"`
	Day         int    `json:"day"`
	Slot        int    `json:"slot"`
	Description string `json:"description"`
}

// GenerateResponse 排班生成响应
type GenerateResponse struct {
	RunID               string                 `json:"run_id"`
	Grid                [][][]int              `json:"grid"`
	FinalScore          float64                `json:"final_score"`
	UnresolvedAbsolutes int                    `json:"unresolved_absolute_violations"`
	ScoreHistory        []float64              `json:"score_history"`
	Violations          []ViolationOutput      `json:"violations,omitempty"`
	Fairness            *stats.FairnessMetrics `json:"fairness"`
}

// buildRoster 把请求中的员工列表转换为 Roster，并按池附加默认规则集
func buildRoster(employees []EmployeeInput, cfg solver.Config) (*model.Roster, *errors.AppError) {
	roster := model.NewRoster()
	for _, e := range employees {
		var pool model.Pool
		switch e.Pool {
		case "day":
			pool = model.PoolDay
		case "night":
			pool = model.PoolNight
		case "float":
			pool = model.PoolFloat
		default:
			return nil, errors.New(errors.CodeInvalidInput, "unknown pool for employee: "+e.Name)
		}
		emp := &model.Employee{ID: model.EmployeeID(e.ID), Name: e.Name, FTE: e.FTE}
		roster.Add(emp, pool, constraint.DefaultRules(e.FTE, cfg))
	}
	return roster, nil
}

func gridFromInts(weeks int, raw [][][]int) *model.Schedule {
	s := model.NewSchedule(weeks)
	for w := range raw {
		for d := range raw[w] {
			for slot, id := range raw[w][d] {
				s.Set(w, d, slot, model.EmployeeID(id))
			}
		}
	}
	return s
}

func gridToInts(s *model.Schedule) [][][]int {
	out := make([][][]int, s.Weeks)
	for w := range out {
		out[w] = make([][]int, model.Days)
		for d := range out[w] {
			out[w][d] = make([]int, model.Slots)
			for slot := range out[w][d] {
				out[w][d][slot] = int(s.Get(w, d, slot))
			}
		}
	}
	return out
}

func violationOutputs(vs []evaluator.Violation) []ViolationOutput {
	out := make([]ViolationOutput, len(vs))
	for i, v := range vs {
		severity := "relative"
		if v.Severity == model.Absolute {
			severity = "absolute"
		}
		out[i] = ViolationOutput{
			Kind:        string(v.Kind),
			Severity:    severity,
			Employee:    int(v.Employee),
			Week:        v.Week,
			Day:         v.Day,
			Slot:        v.Slot,
			Description: v.Description,
		}
	}
	return out
}

// Generate 生成排班：可行性预检 -> (可选)周末种子模板 -> 四阶段求解流水线
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "only POST is supported"))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse request"))
		return
	}
	if req.Weeks <= 0 {
		respondError(w, errors.New(errors.CodeInvalidInput, "weeks must be positive"))
		return
	}
	if len(req.Employees) == 0 {
		respondError(w, errors.New(errors.CodeInvalidInput, "employees must not be empty"))
		return
	}

	roster, verr := buildRoster(req.Employees, h.cfg)
	if verr != nil {
		respondError(w, verr)
		return
	}

	if _, err := feasibility.CheckOrError(roster, req.Weeks); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInfeasible, "roster cannot cover the required shift hours"))
		return
	}

	var initial *model.Schedule
	if req.Grid != nil {
		initial = gridFromInts(req.Weeks, req.Grid)
	} else {
		initial = seed.BuildTemplate(roster, req.Weeks, seed.Config{AnchorName: h.anchor})
	}

	result := solver.Run(initial, roster, h.cfg)
	if result.Err != nil {
		// UNFIXABLE_ABSOLUTE is a warning, not a hard failure (§7): the
		// best-achieved schedule is still returned to the caller below.
		_ = result.Err
	}

	eval := evaluator.New(roster, h.cfg)
	violations := eval.CountViolations(result.Final).Violations
	fairness := stats.NewFairnessAnalyzer().Analyze(result.Final, roster)

	run := store.FromResult(req.Weeks, result)
	run.Violations = violations
	if h.runs != nil {
		if err := h.runs.Create(r.Context(), run); err != nil {
			respondError(w, errors.Wrap(err, errors.CodeInternal, "failed to persist run"))
			return
		}
	}

	resp := GenerateResponse{
		RunID:               run.ID.String(),
		Grid:                gridToInts(result.Final),
		FinalScore:          result.FinalScore,
		UnresolvedAbsolutes: result.UnresolvedAbsolutes,
		ScoreHistory:        result.ScoreHistory,
		Violations:          violationOutputs(violations),
		Fairness:            fairness,
	}
	respondJSON(w, http.StatusOK, resp)
}

// ValidateRequest 排班验证请求
type ValidateRequest struct {
	Weeks     int             `json:"weeks"`
	Employees []EmployeeInput `json:"employees"`
	Grid      [][][]int       `json:"grid"`
}

// ValidateResponse 验证响应
type ValidateResponse struct {
	Score      float64           `json:"score"`
	Violations []ViolationOutput `json:"violations"`
}

// Validate 对一个已有的排班网格评分并报告违规，不做任何修改
func (h *ScheduleHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "only POST is supported"))
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "failed to parse request"))
		return
	}

	roster, verr := buildRoster(req.Employees, h.cfg)
	if verr != nil {
		respondError(w, verr)
		return
	}

	grid := gridFromInts(req.Weeks, req.Grid)
	eval := evaluator.New(roster, h.cfg)
	result := eval.CountViolations(grid)

	respondJSON(w, http.StatusOK, ValidateResponse{
		Score:      eval.Score(grid),
		Violations: violationOutputs(result.Violations),
	})
}

// GetRun 按ID查询已持久化的求解运行
func (h *ScheduleHandler) GetRun(w http.ResponseWriter, r *http.Request, id string) {
	if h.runs == nil {
		respondError(w, errors.New(errors.CodeInternal, "run storage is not configured"))
		return
	}
	runID, err := uuid.Parse(id)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "invalid run id"))
		return
	}
	run, err := h.runs.GetByID(r.Context(), runID)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInternal, "failed to load run"))
		return
	}
	if run == nil {
		respondError(w, errors.New(errors.CodeNotFound, "run not found"))
		return
	}
	respondJSON(w, http.StatusOK, run)
}

// respondJSON 返回JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError 返回错误响应
func respondError(w http.ResponseWriter, err *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.HTTPStatus)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"code":    err.Code,
		"message": err.Message,
	})
}
