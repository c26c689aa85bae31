package model

// Kind enumerates a constraint rule's identity. Replacing the source's
// conditional-on-name predicate, each Kind corresponds to exactly one
// concrete Go type in pkg/scheduler/constraint implementing Rule or
// GlobalRule — the evaluator dispatches through the interface, never
// through a string switch (§9 Design Notes: "Constraint dispatch").
type Kind string

const (
	KindD1Filled Kind = "D1_FILLED"
	KindD2Filled Kind = "D2_FILLED"
	KindNFilled  Kind = "N_FILLED"

	KindHoursPerPayPeriod  Kind = "HOURS_PER_PAY_PERIOD"
	KindMinimumHours       Kind = "MINIMUM_HOURS"
	KindOnePerDay          Kind = "ONE_PER_DAY"
	KindDayshiftsPerWeek   Kind = "DAYSHIFTS_PER_WEEK"
	KindNightshiftsPerWeek Kind = "NIGHTSHIFTS_PER_WEEK"
	KindWeekendRotation    Kind = "WEEKEND_ROTATION"
	KindConsecutiveDays    Kind = "CONSECUTIVE_DAYS"
	KindNoDayAfterNight    Kind = "NO_DAY_AFTER_NIGHT"
	KindCanWork            Kind = "CAN_WORK"
	KindOverloaded         Kind = "OVERLOADED"
	KindMinRest            Kind = "MIN_REST"

	// KindUnknown is never attached to a real employee; it exists so a
	// rule constructed from an unrecognised name (e.g. during CSV/config
	// loading) still satisfies the Rule interface and the "unknown kinds
	// return true and log" contract of §4.1, instead of crashing.
	KindUnknown Kind = "UNKNOWN"
)

// Severity controls only scoring, never predicate semantics (§3).
type Severity int

const (
	Relative Severity = iota
	Absolute
)

func (sv Severity) String() string {
	if sv == Absolute {
		return "absolute"
	}
	return "relative"
}

// Rule is a per-employee constraint predicate: "is this rule currently
// satisfied for this employee at this cell?" Implementations never mutate
// the schedule (§4.1). When the referenced cell is Unfilled, Satisfied
// must return true — the rule doesn't apply when no one is assigned.
type Rule interface {
	Kind() Kind
	Severity() Severity
	Satisfied(s *Schedule, emp EmployeeID, w, d, slot int) bool
}

// GlobalRule is a constraint predicate evaluated over the whole schedule
// rather than scoped to one employee (the D1_FILLED/D2_FILLED/N_FILLED
// coverage rules).
type GlobalRule interface {
	Kind() Kind
	Severity() Severity
	Satisfied(s *Schedule, w, d, slot int) bool
}
