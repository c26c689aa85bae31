package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
	"github.com/rotaworks/scheduler/pkg/scheduler/solver"
)

// Run 一次求解流水线运行的持久化记录：最终网格、分数轨迹与违规报告
type Run struct {
	ID                  uuid.UUID            `json:"id"`
	Weeks               int                  `json:"weeks"`
	Grid                [][][]model.EmployeeID `json:"grid"`
	FinalScore          float64              `json:"final_score"`
	UnresolvedAbsolutes int                  `json:"unresolved_absolutes"`
	EpochIndex          []int                `json:"epoch_index"`
	ScoreHistory        []float64            `json:"score_history"`
	Violations          []evaluator.Violation `json:"violations,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
}

// RunStore 排班运行结果仓储
type RunStore struct {
	db DB
}

// NewRunStore 创建排班运行结果仓储
func NewRunStore(db DB) *RunStore {
	return &RunStore{db: db}
}

// Create 持久化一次求解运行
func (s *RunStore) Create(ctx context.Context, run *Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	run.CreatedAt = time.Now()

	gridJSON, err := json.Marshal(run.Grid)
	if err != nil {
		return fmt.Errorf("序列化排班网格失败: %w", err)
	}
	epochJSON, err := json.Marshal(run.EpochIndex)
	if err != nil {
		return fmt.Errorf("序列化epoch索引失败: %w", err)
	}
	scoreJSON, err := json.Marshal(run.ScoreHistory)
	if err != nil {
		return fmt.Errorf("序列化分数轨迹失败: %w", err)
	}
	violationsJSON, err := json.Marshal(run.Violations)
	if err != nil {
		return fmt.Errorf("序列化违规报告失败: %w", err)
	}

	query := `
		INSERT INTO solver_runs (
			id, weeks, grid, final_score, unresolved_absolutes,
			epoch_index, score_history, violations, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = s.db.ExecContext(ctx, query,
		run.ID, run.Weeks, gridJSON, run.FinalScore, run.UnresolvedAbsolutes,
		epochJSON, scoreJSON, violationsJSON, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("写入求解运行记录失败: %w", err)
	}

	return nil
}

// GetByID 按ID获取求解运行记录
func (s *RunStore) GetByID(ctx context.Context, id uuid.UUID) (*Run, error) {
	query := `
		SELECT id, weeks, grid, final_score, unresolved_absolutes,
			epoch_index, score_history, violations, created_at
		FROM solver_runs
		WHERE id = $1
	`
	return s.scan(s.db.QueryRowContext(ctx, query, id))
}

// List 按时间倒序列出求解运行记录
func (s *RunStore) List(ctx context.Context, filter ListFilter) ([]*Run, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM solver_runs").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("统计求解运行数量失败: %w", err)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	orderDir := filter.OrderDir
	if orderDir == "" {
		orderDir = "desc"
	}

	query := fmt.Sprintf(`
		SELECT id, weeks, grid, final_score, unresolved_absolutes,
			epoch_index, score_history, violations, created_at
		FROM solver_runs
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, orderBy, orderDir)

	rows, err := s.db.QueryContext(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("查询求解运行列表失败: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := s.scanRows(rows)
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, run)
	}

	return runs, total, nil
}

// Delete 删除一条求解运行记录
func (s *RunStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM solver_runs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("删除求解运行记录失败: %w", err)
	}
	return nil
}

func (s *RunStore) scan(row *sql.Row) (*Run, error) {
	run := &Run{}
	var gridJSON, epochJSON, scoreJSON, violationsJSON []byte

	err := row.Scan(
		&run.ID, &run.Weeks, &gridJSON, &run.FinalScore, &run.UnresolvedAbsolutes,
		&epochJSON, &scoreJSON, &violationsJSON, &run.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("扫描求解运行记录失败: %w", err)
	}
	return run, decodeRun(run, gridJSON, epochJSON, scoreJSON, violationsJSON)
}

func (s *RunStore) scanRows(rows *sql.Rows) (*Run, error) {
	run := &Run{}
	var gridJSON, epochJSON, scoreJSON, violationsJSON []byte

	err := rows.Scan(
		&run.ID, &run.Weeks, &gridJSON, &run.FinalScore, &run.UnresolvedAbsolutes,
		&epochJSON, &scoreJSON, &violationsJSON, &run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("扫描求解运行记录失败: %w", err)
	}
	return run, decodeRun(run, gridJSON, epochJSON, scoreJSON, violationsJSON)
}

func decodeRun(run *Run, gridJSON, epochJSON, scoreJSON, violationsJSON []byte) error {
	if len(gridJSON) > 0 {
		if err := json.Unmarshal(gridJSON, &run.Grid); err != nil {
			return fmt.Errorf("解析排班网格失败: %w", err)
		}
	}
	if len(epochJSON) > 0 {
		if err := json.Unmarshal(epochJSON, &run.EpochIndex); err != nil {
			return fmt.Errorf("解析epoch索引失败: %w", err)
		}
	}
	if len(scoreJSON) > 0 {
		if err := json.Unmarshal(scoreJSON, &run.ScoreHistory); err != nil {
			return fmt.Errorf("解析分数轨迹失败: %w", err)
		}
	}
	if len(violationsJSON) > 0 {
		if err := json.Unmarshal(violationsJSON, &run.Violations); err != nil {
			return fmt.Errorf("解析违规报告失败: %w", err)
		}
	}
	return nil
}

// FromResult 将求解编排器的结果转换为可持久化的运行记录
func FromResult(weeks int, result solver.Result) *Run {
	return &Run{
		Weeks:               weeks,
		Grid:                result.Final.Cells,
		FinalScore:          result.FinalScore,
		UnresolvedAbsolutes: result.UnresolvedAbsolutes,
		EpochIndex:          result.EpochIndex,
		ScoreHistory:        result.ScoreHistory,
	}
}
