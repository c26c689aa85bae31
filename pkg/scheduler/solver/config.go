// Package solver implements the four-phase constraint-satisfaction search
// pipeline: greedy simulated annealing, repair, minimum-hours fill, and a
// final absolute-violation sweep, orchestrated with a snapshot/rollback
// discipline between phases (§4, §4.10).
package solver

import "github.com/rotaworks/scheduler/pkg/scheduler/config"

// Config is an alias for pkg/scheduler/config.Config. It lives in its own
// leaf package because evaluator and constraint need the parameter set too,
// and both sit below solver in the import graph.
type Config = config.Config

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return config.Default()
}
