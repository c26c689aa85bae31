// Package config carries the solver pipeline's tunable parameters. It is a
// leaf package with no dependencies on solver, evaluator, or constraint —
// those three packages each need the parameter set (solver to run the
// pipeline, evaluator to score a grid, constraint to gate the optional
// MIN_REST rule) without needing each other, so the struct lives below all three.
package config

// Config carries the solver's recognised configuration options (§6):
//
//	ABS_PENALTY          default 10000
//	EPOCH_LIMIT          default 1000
//	INITIAL_TEMPERATURE  default 1000
//	COOLING_BASE         default 0.9995
//	PATIENCE             default 300
//	SHIFT_LENGTH         default 12
//
// plus three fields the core spec leaves to the implementation: the
// per-required-empty-slot scoring weight, the gate for the optional
// MIN_REST rule (§9 Open Questions), and the PRNG seed.
type Config struct {
	ABSPenalty         int
	EpochLimit         int
	InitialTemperature float64
	CoolingBase        float64
	Patience           int
	ShiftLength        float64
	UnfilledPenalty    int
	EnableMinRest      bool
	RandomSeed         int64
}

// Default returns the spec's documented defaults.
func Default() Config {
	return Config{
		ABSPenalty:         10000,
		EpochLimit:         1000,
		InitialTemperature: 1000,
		CoolingBase:        0.9995,
		Patience:           300,
		ShiftLength:        12,
		UnfilledPenalty:    50,
		EnableMinRest:      false,
		RandomSeed:         1,
	}
}
