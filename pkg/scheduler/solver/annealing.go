package solver

import (
	"math"
	"math/rand"

	"github.com/rotaworks/scheduler/pkg/logger"
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/evaluator"
)

// GreedyResult carries the best schedule the annealing driver observed
// (not necessarily the last, §4.6) plus the epoch/score history the
// orchestrator's output exposes for downstream plotting (§6).
type GreedyResult struct {
	Best        *model.Schedule
	BestScore   float64
	EpochIndex  []int
	ScoreHistory []float64
	Accepted    int
	Epochs      int
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunGreedy runs the simulated-annealing search phase (§4.6): propose a
// move, accept by the Metropolis criterion, cool the temperature, restart
// from the best-known state after `patience` epochs without improvement,
// and stop at EpochLimit or when the proposer signals no move.
func RunGreedy(start *model.Schedule, roster *model.Roster, eval *evaluator.Evaluator, proposer *Proposer, cfg Config, rng *rand.Rand, log *logger.SolverLogger) GreedyResult {
	current := start.Clone()
	currentScore := eval.Score(current)
	best := current.Clone()
	bestScore := currentScore

	temperature := cfg.InitialTemperature
	patienceCount := 0
	accepted := 0

	var epochIdx []int
	var scores []float64

	epoch := 0
	for ; epoch < cfg.EpochLimit; epoch++ {
		if patienceCount >= cfg.Patience {
			current = best.Clone()
			currentScore = bestScore
			temperature = cfg.InitialTemperature
			patienceCount = 0
			proposer.ResetDeprioritization()
		}

		next, ok := proposer.Propose(current)
		if !ok {
			break
		}

		newScore := eval.Score(next)
		delta := newScore - currentScore
		prob := 1.0
		if delta >= 0 {
			prob = math.Exp(-delta / temperature)
		}

		accept := rng.Float64() < prob
		if accept {
			current = next
			currentScore = newScore
			proposer.ResetDeprioritization()
			accepted++
			patienceCount = 0
		} else {
			patienceCount++
		}

		if currentScore < bestScore {
			best = current.Clone()
			bestScore = currentScore
		}

		rate := float64(accepted) / float64(epoch+1)
		alpha := clip(1-(rate-0.5)/2, 0.9, 1.1) * cfg.CoolingBase
		temperature *= alpha

		epochIdx = append(epochIdx, epoch)
		scores = append(scores, currentScore)

		if log != nil && epoch%100 == 0 {
			log.Epoch(epoch, currentScore, temperature, accept)
		}
	}

	if log != nil {
		log.Phase("greedy", bestScore, false)
	}

	return GreedyResult{
		Best:         best,
		BestScore:    bestScore,
		EpochIndex:   epochIdx,
		ScoreHistory: scores,
		Accepted:     accepted,
		Epochs:       epoch,
	}
}
