package constraint

import (
	"github.com/rotaworks/scheduler/pkg/logger"
	"github.com/rotaworks/scheduler/pkg/model"
	"github.com/rotaworks/scheduler/pkg/scheduler/config"
)

// DefaultRules builds the standard per-employee rule set for an employee
// with the given FTE, grounded on the source's setDefaultConstraints.
// cfg.EnableMinRest gates the optional MIN_REST rule (§9 Open Questions).
func DefaultRules(fte float64, cfg config.Config) []model.Rule {
	rules := []model.Rule{
		HoursPerPayPeriod{Cap: 80 * fte},
		DayshiftsPerWeek{Max: 3},
		NightshiftsPerWeek{Max: 3},
		WeekendRotation{MaxConsecutiveWeeks: 1},
		NoDayAfterNight{},
		ConsecutiveDays{Max: 3},
		MinimumHours{Min: 80 * fte * 0.8},
		CanWork{Day: model.Monday, Allowed: true},
		CanWork{Day: model.Tuesday, Allowed: true},
		CanWork{Day: model.Wednesday, Allowed: true},
		CanWork{Day: model.Thursday, Allowed: true},
		CanWork{Day: model.Friday, Allowed: true},
		CanWork{Day: model.Saturday, Allowed: true},
		CanWork{Day: model.Sunday, Allowed: true},
	}
	if cfg.EnableMinRest {
		rules = append(rules, MinRest{})
	}
	return rules
}

// replaceKind drops every rule of the given kind and appends replacement,
// mirroring the source's changeConstraint (remove-then-append).
func replaceKind(rules []model.Rule, kind model.Kind, replacement model.Rule) []model.Rule {
	out := make([]model.Rule, 0, len(rules)+1)
	for _, r := range rules {
		if r.Kind() != kind {
			out = append(out, r)
		}
	}
	return append(out, replacement)
}

// WithOverrides applies the named per-employee overrides recorded in the
// source's setActualConstraints. Names not listed here keep the default
// rule set unchanged.
func WithOverrides(name string, rules []model.Rule) []model.Rule {
	switch name {
	case "David":
		rules = replaceKind(rules, model.KindNightshiftsPerWeek, NightshiftsPerWeek{Max: 0, Absolute: true})
		rules = replaceKind(rules, model.KindCanWork, CanWork{Day: model.Monday, Allowed: false, Absolute: true})
		rules = append(rules,
			CanWork{Day: model.Tuesday, Allowed: false, Absolute: true},
			CanWork{Day: model.Friday, Allowed: false, Absolute: true},
		)
	case "Kati":
		rules = replaceKind(rules, model.KindNightshiftsPerWeek, NightshiftsPerWeek{Max: 0, Absolute: true})
	case "Britt":
		rules = replaceKind(rules, model.KindNightshiftsPerWeek, NightshiftsPerWeek{Max: 0, Absolute: true})
		rules = append(rules, CanWork{Day: model.Wednesday, Allowed: false, Absolute: true})
		rules = replaceKind(rules, model.KindConsecutiveDays, ConsecutiveDays{Max: 5, Absolute: true})
	case "Liz":
		rules = replaceKind(rules, model.KindDayshiftsPerWeek, DayshiftsPerWeek{Max: 0, Absolute: true})
	case "Ashley":
		rules = replaceKind(rules, model.KindDayshiftsPerWeek, DayshiftsPerWeek{Max: 0, Absolute: true})
	}
	return rules
}

// CanWork entries share one Kind across all seven weekdays. David's
// replaceKind call therefore drops all seven default CanWork entries before
// his three denied days are added, while Britt's Wednesday override is a
// plain append, so she ends up with two CanWork rules for Wednesday
// (default RELATIVE-allowed plus the ABSOLUTE-denied override). Both are
// harmless: the dropped and duplicated defaults are allowed-day rules that
// never fail, and the ABSOLUTE denial still blocks the day. FromName below
// is the one place a CSV/config override is turned into a single concrete
// rule without this caveat.

// FromName builds a single rule from an external name and numeric
// parameter — used when loading per-employee overrides from a CSV
// template or config file rather than the built-in roster. Unrecognised
// names fall back to Unknown and log a diagnostic rather than failing the
// load (§4.1, §7: "Unknown constraint kind... never aborts").
func FromName(name string, param float64, absolute bool) model.Rule {
	switch model.Kind(name) {
	case model.KindHoursPerPayPeriod:
		return HoursPerPayPeriod{Cap: param}
	case model.KindMinimumHours:
		return MinimumHours{Min: param}
	case model.KindOnePerDay:
		return OnePerDay{}
	case model.KindDayshiftsPerWeek:
		return DayshiftsPerWeek{Max: int(param), Absolute: absolute || param == 0}
	case model.KindNightshiftsPerWeek:
		return NightshiftsPerWeek{Max: int(param), Absolute: absolute || param == 0}
	case model.KindWeekendRotation:
		return WeekendRotation{MaxConsecutiveWeeks: int(param)}
	case model.KindConsecutiveDays:
		return ConsecutiveDays{Max: int(param), Absolute: absolute}
	case model.KindNoDayAfterNight:
		return NoDayAfterNight{}
	case model.KindOverloaded:
		return Overloaded{MaxShifts: int(param)}
	case model.KindMinRest:
		return MinRest{}
	default:
		logger.Get().Warn().Str("kind", name).Msg("unknown constraint kind, treated as satisfied")
		return Unknown{OriginalName: name}
	}
}
