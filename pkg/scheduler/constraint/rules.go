package constraint

import "github.com/rotaworks/scheduler/pkg/model"

// payPeriodHours sums an employee's hours over the 2-week pay period
// containing odd week w — weeks [w-1, w] inclusive. The source computes
// this window two different ways (one off by a week); per the resolved
// Open Question we use the literal two-week window here, checked only at
// the pay period's closing (odd) week to avoid double-counting (§4.1).
func payPeriodHours(s *model.Schedule, emp model.EmployeeID, w int) float64 {
	return s.HoursInWeeks(emp, w-1, w)
}

// HoursPerPayPeriod caps an employee's total hours over their 2-week pay
// period (ABSOLUTE). Evaluated only at odd w.
type HoursPerPayPeriod struct {
	Cap float64
}

func (HoursPerPayPeriod) Kind() model.Kind         { return model.KindHoursPerPayPeriod }
func (HoursPerPayPeriod) Severity() model.Severity { return model.Absolute }

func (r HoursPerPayPeriod) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() || w%2 == 0 {
		return true
	}
	return payPeriodHours(s, emp, w) <= r.Cap
}

// MinimumHours is the symmetric lower bound on pay-period hours (RELATIVE).
// Evaluated only at odd w.
type MinimumHours struct {
	Min float64
}

func (MinimumHours) Kind() model.Kind         { return model.KindMinimumHours }
func (MinimumHours) Severity() model.Severity { return model.Relative }

func (r MinimumHours) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() || w%2 == 0 {
		return true
	}
	return payPeriodHours(s, emp, w) >= r.Min
}

// OnePerDay forbids an employee from appearing twice in the same
// (week, day) — invariant 3 of §3, expressed as a rule so the evaluator
// and repair/sweep treat it uniformly with every other predicate.
type OnePerDay struct{}

func (OnePerDay) Kind() model.Kind         { return model.KindOnePerDay }
func (OnePerDay) Severity() model.Severity { return model.Absolute }

func (OnePerDay) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	count := 0
	for _, got := range s.CellsOn(w, d) {
		if got == emp {
			count++
		}
	}
	return count <= 1
}

// DayshiftsPerWeek bounds how many D1/D2 slots an employee may hold in one
// week. RELATIVE by default; a zero cap is ABSOLUTE (forbids the category
// entirely).
type DayshiftsPerWeek struct {
	Max      int
	Absolute bool
}

func (DayshiftsPerWeek) Kind() model.Kind { return model.KindDayshiftsPerWeek }
func (r DayshiftsPerWeek) Severity() model.Severity {
	if r.Absolute || r.Max == 0 {
		return model.Absolute
	}
	return model.Relative
}

func (r DayshiftsPerWeek) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	count := 0
	for day := 0; day < model.Days; day++ {
		if s.Get(w, day, int(model.D1)) == emp {
			count++
		}
		if s.Get(w, day, int(model.D2)) == emp {
			count++
		}
	}
	return count <= r.Max
}

// NightshiftsPerWeek bounds how many N slots an employee may hold in one
// week. RELATIVE by default; a zero cap is ABSOLUTE.
type NightshiftsPerWeek struct {
	Max      int
	Absolute bool
}

func (NightshiftsPerWeek) Kind() model.Kind { return model.KindNightshiftsPerWeek }
func (r NightshiftsPerWeek) Severity() model.Severity {
	if r.Absolute || r.Max == 0 {
		return model.Absolute
	}
	return model.Relative
}

func (r NightshiftsPerWeek) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	count := 0
	for day := 0; day < model.Days; day++ {
		if s.Get(w, day, int(model.N)) == emp {
			count++
		}
	}
	return count <= r.Max
}

// WeekendRotation caps the longest run of consecutive weeks in which the
// employee works any weekend cell. ABSOLUTE. The check re-derives the
// whole run history from the grid on every call, exactly as the source
// does — it only depends on emp, not on the (w,d,slot) the caller passes.
type WeekendRotation struct {
	MaxConsecutiveWeeks int
}

func (WeekendRotation) Kind() model.Kind         { return model.KindWeekendRotation }
func (WeekendRotation) Severity() model.Severity { return model.Absolute }

func (r WeekendRotation) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	var workedWeeks []int
	for week := 0; week < s.Weeks; week++ {
		worked := false
		for _, day := range [...]int{int(model.Saturday), int(model.Sunday)} {
			for sl := 0; sl < model.Slots; sl++ {
				if s.Get(week, day, sl) == emp {
					worked = true
				}
			}
		}
		if worked {
			workedWeeks = append(workedWeeks, week)
		}
	}
	if len(workedWeeks) == 0 {
		return true
	}
	maxRun, run := 1, 1
	for i := 1; i < len(workedWeeks); i++ {
		if workedWeeks[i] == workedWeeks[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > maxRun {
			maxRun = run
		}
	}
	return maxRun <= r.MaxConsecutiveWeeks
}

// ConsecutiveDays caps the longest run of contiguous worked days within
// one week. RELATIVE by default; ABSOLUTE for specific employees.
type ConsecutiveDays struct {
	Max      int
	Absolute bool
}

func (ConsecutiveDays) Kind() model.Kind { return model.KindConsecutiveDays }
func (r ConsecutiveDays) Severity() model.Severity {
	if r.Absolute {
		return model.Absolute
	}
	return model.Relative
}

func (r ConsecutiveDays) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	maxRun, run := 0, 0
	for day := 0; day < model.Days; day++ {
		worked := false
		for _, got := range s.CellsOn(w, day) {
			if got == emp {
				worked = true
				break
			}
		}
		if worked {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	return maxRun <= r.Max
}

// NoDayAfterNight forbids the same employee from working a day slot the
// day after a night shift, and a night shift from being followed the next
// day by a day slot (ABSOLUTE). Cross-week boundaries wrap to the
// previous/next week's Sunday/Monday; out-of-range indices (before week 0
// or past the last week) are never wrapped — they simply read Unfilled.
type NoDayAfterNight struct{}

func (NoDayAfterNight) Kind() model.Kind         { return model.KindNoDayAfterNight }
func (NoDayAfterNight) Severity() model.Severity { return model.Absolute }

func (NoDayAfterNight) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	switch model.Slot(slot) {
	case model.D1, model.D2:
		if d > 0 {
			return s.Get(w, d-1, int(model.N)) != emp
		}
		if w == 0 {
			return true // no wraparound before week 0
		}
		return s.Get(w-1, int(model.Sunday), int(model.N)) != emp
	case model.N:
		if d < model.Days-1 {
			return s.Get(w, d+1, int(model.D1)) != emp && s.Get(w, d+1, int(model.D2)) != emp
		}
		if w == s.Weeks-1 {
			return true
		}
		return s.Get(w+1, int(model.Monday), int(model.D1)) != emp && s.Get(w+1, int(model.Monday), int(model.D2)) != emp
	default:
		return true
	}
}

// CanWork forbids assignment on one named weekday. RELATIVE by default;
// ABSOLUTE when the employee is denied that day outright (Allowed=false
// combined with Absolute=true, matching the source's per-employee
// overrides for David/Britt).
type CanWork struct {
	Day      model.Weekday
	Allowed  bool
	Absolute bool
}

func (CanWork) Kind() model.Kind { return model.KindCanWork }
func (r CanWork) Severity() model.Severity {
	if r.Absolute {
		return model.Absolute
	}
	return model.Relative
}

func (r CanWork) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	if model.Weekday(d) == r.Day && !r.Allowed {
		return false
	}
	return true
}

// Overloaded caps total shifts (any slot) an employee may hold in one
// week. ABSOLUTE.
type Overloaded struct {
	MaxShifts int
}

func (Overloaded) Kind() model.Kind         { return model.KindOverloaded }
func (Overloaded) Severity() model.Severity { return model.Absolute }

func (r Overloaded) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	count := 0
	for day := 0; day < model.Days; day++ {
		for _, got := range s.CellsOn(w, day) {
			if got == emp {
				count++
			}
		}
	}
	return count <= r.MaxShifts
}

// MinRest is the optional rule gated behind config.Config.EnableMinRest
// (§9 Open Questions: "appears in one variant only; treat as optional").
// It forbids working more than one slot the same day (redundant with
// OnePerDay when enabled) and requires at least a 2-day gap after a
// worked stretch before working again.
type MinRest struct{}

func (MinRest) Kind() model.Kind         { return model.KindMinRest }
func (MinRest) Severity() model.Severity { return model.Relative }

func (MinRest) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	if emp.IsUnfilled() {
		return true
	}
	switch model.Slot(slot) {
	case model.D1:
		if s.Get(w, d, int(model.D2)) == emp || s.Get(w, d, int(model.N)) == emp {
			return false
		}
	case model.D2:
		if s.Get(w, d, int(model.D1)) == emp || s.Get(w, d, int(model.N)) == emp {
			return false
		}
	case model.N:
		if s.Get(w, d, int(model.D1)) == emp || s.Get(w, d, int(model.D2)) == emp {
			return false
		}
	}
	if w == 0 && d == 0 {
		return true
	}
	workedYesterday := false
	workedDayBefore := false
	if d > 1 {
		workedYesterday = dayHasEmployee(s, w, d-1, emp)
		workedDayBefore = dayHasEmployee(s, w, d-2, emp)
	} else if d == 1 {
		workedYesterday = dayHasEmployee(s, w, int(model.Monday), emp)
		workedDayBefore = dayHasEmployee(s, w-1, int(model.Sunday), emp)
	} else {
		workedYesterday = dayHasEmployee(s, w-1, int(model.Sunday), emp)
		workedDayBefore = dayHasEmployee(s, w-1, int(model.Saturday), emp)
	}
	if !workedYesterday && workedDayBefore {
		return false
	}
	return true
}

func dayHasEmployee(s *model.Schedule, w, d int, emp model.EmployeeID) bool {
	for _, got := range s.CellsOn(w, d) {
		if got == emp {
			return true
		}
	}
	return false
}

// Unknown is the fallback rule for a constraint kind the catalogue loader
// doesn't recognise (e.g. from a malformed config or CSV override). It
// always reports satisfied and relies on the caller to have logged the
// diagnostic (§4.1: "Unknown kinds return true and log a diagnostic —
// never crash").
type Unknown struct {
	OriginalName string
}

func (Unknown) Kind() model.Kind         { return model.KindUnknown }
func (Unknown) Severity() model.Severity { return model.Relative }

func (Unknown) Satisfied(s *model.Schedule, emp model.EmployeeID, w, d, slot int) bool {
	return true
}
