package solver

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rotaworks/scheduler/pkg/errors"
	"github.com/rotaworks/scheduler/pkg/logger"
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

// Result is the orchestrator's output (§6): the final grid, its scalar
// score, the epoch/score history for downstream plotting, and — if the
// final sweep could not clear every absolute violation — a warning-grade
// error carrying the remaining count. Err is never returned for anything
// but CodeUnfixableAbsolute; every other failure mode is checked before
// Run is invoked (§7).
type Result struct {
	Final                *model.Schedule
	FinalScore           float64
	EpochIndex           []int
	ScoreHistory         []float64
	UnresolvedAbsolutes  int
	Err                  error
}

// applyPhase compares a phase's output against the previous phase's
// snapshot score and rolls back to the snapshot if the phase regressed
// (§4.10: "If the next phase's final score is worse than the previous
// phase's snapshot, restore").
func applyPhase(name string, eval *evaluator.Evaluator, prevState *model.Schedule, prevScore float64, next *model.Schedule, log *logger.SolverLogger) (*model.Schedule, float64) {
	nextScore := eval.Score(next)
	if nextScore > prevScore {
		if log != nil {
			log.Phase(name, prevScore, true)
		}
		return prevState, prevScore
	}
	if log != nil {
		log.Phase(name, nextScore, false)
	}
	return next, nextScore
}

// Run executes the full four-phase pipeline (§4.10): greedy simulated
// annealing, repair, minimum-hours fill, and a final absolute-violation
// sweep, with a snapshot taken before each phase and restored if that
// phase's result scored worse. Each snapshot is a deep copy (Schedule.Clone)
// sufficient to survive the next phase's in-place mutation.
func Run(initial *model.Schedule, roster *model.Roster, cfg Config) Result {
	start := time.Now()
	eval := evaluator.New(roster, cfg)
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	proposer := NewProposer(roster, eval, rng, cfg.ShiftLength)
	log := logger.NewSolverLogger(uuid.New().String())

	log.StartRun(initial.Weeks, len(roster.All()))

	current := initial.Clone()
	currentScore := eval.Score(current)

	greedy := RunGreedy(current, roster, eval, proposer, cfg, rng, log)
	current, currentScore = applyPhase("greedy", eval, current, currentScore, greedy.Best, log)

	repaired := Repair(current, roster, eval, cfg.ShiftLength)
	current, currentScore = applyPhase("repair", eval, current, currentScore, repaired, log)

	filled := MinimumHoursFill(current, roster, eval, cfg.ShiftLength)
	current, currentScore = applyPhase("minimum-hours-fill", eval, current, currentScore, filled, log)

	swept, _ := AbsoluteSweep(current, roster, eval, cfg.ShiftLength)
	current, currentScore = applyPhase("absolute-sweep", eval, current, currentScore, swept, log)

	final := eval.CountViolations(current)
	remaining := final.StaffAbsolute

	var err error
	if remaining > 0 {
		err = errors.UnfixableAbsolute(remaining)
		for _, v := range final.Violations {
			if v.Severity == model.Absolute && !v.Employee.IsUnfilled() {
				log.ConstraintViolation(string(v.Kind), v.Description)
			}
		}
	}

	log.RunComplete(time.Since(start), currentScore, remaining)

	return Result{
		Final:               current,
		FinalScore:          currentScore,
		EpochIndex:          greedy.EpochIndex,
		ScoreHistory:        greedy.ScoreHistory,
		UnresolvedAbsolutes: remaining,
		Err:                 err,
	}
}
