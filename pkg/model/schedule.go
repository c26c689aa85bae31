package model

// Schedule is the 3-dimensional assignment grid indexed by
// (week, day-of-week, shift-slot): Cells[w][d][s] holds an EmployeeID, or
// Unfilled. W is even in practice since pay periods are 2 weeks (§3).
type Schedule struct {
	Weeks int
	Cells [][][]EmployeeID
}

// NewSchedule allocates a fully-unfilled grid of the given week count.
func NewSchedule(weeks int) *Schedule {
	cells := make([][][]EmployeeID, weeks)
	for w := range cells {
		cells[w] = make([][]EmployeeID, Days)
		for d := range cells[w] {
			cells[w][d] = make([]EmployeeID, Slots)
		}
	}
	return &Schedule{Weeks: weeks, Cells: cells}
}

// InRange reports whether (w,d,s) addresses a real cell.
func (s *Schedule) InRange(w, d, slot int) bool {
	return w >= 0 && w < s.Weeks && d >= 0 && d < Days && slot >= 0 && slot < Slots
}

// Get returns the employee id at (w,d,s). Out-of-range coordinates return
// Unfilled rather than panicking, since several rules probe across week
// boundaries and must handle "before week 0" without wraparound (§4.1).
func (s *Schedule) Get(w, d, slot int) EmployeeID {
	if !s.InRange(w, d, slot) {
		return Unfilled
	}
	return s.Cells[w][d][slot]
}

// Set writes id into (w,d,s). The caller must ensure the coordinate is
// in range; Set is the only mutator, so every trial-mutation call site
// funnels through here and can be undone by a single matching Set back to
// the prior value.
func (s *Schedule) Set(w, d, slot int, id EmployeeID) {
	s.Cells[w][d][slot] = id
}

// D2Exists reports whether a D2 slot exists at all on day d of week w:
// false on Tuesday and Friday (no D2 exists there), and false on a
// weekend day (Saturday/Sunday) of an odd-indexed week, per the biweekly
// weekend-off pattern (§3 D2_FILLED).
func D2Exists(w int, d Weekday) bool {
	if d == Tuesday || d == Friday {
		return false
	}
	if d.IsWeekend() && w%2 == 1 {
		return false
	}
	return true
}

// Clone deep-copies the grid. Used at phase boundaries for the
// snapshot/restore discipline (§4.10); the hot path inside a single phase
// should prefer a single-cell undo log instead (§9 Design Notes).
func (s *Schedule) Clone() *Schedule {
	out := NewSchedule(s.Weeks)
	for w := range s.Cells {
		for d := range s.Cells[w] {
			copy(out.Cells[w][d], s.Cells[w][d])
		}
	}
	return out
}

// Equal reports whether two schedules hold identical assignments. Used by
// the trial-mutation property test (§8 invariant 5: clone + equality
// oracle).
func (s *Schedule) Equal(other *Schedule) bool {
	if s.Weeks != other.Weeks {
		return false
	}
	for w := range s.Cells {
		for d := range s.Cells[w] {
			for slot := range s.Cells[w][d] {
				if s.Cells[w][d][slot] != other.Cells[w][d][slot] {
					return false
				}
			}
		}
	}
	return true
}

// HoursUsed computes, for every employee, total hours worked across the
// whole schedule, derived solely from ShiftLength (§3 invariant 4: "never
// from wall clock").
func (s *Schedule) HoursUsed() map[EmployeeID]float64 {
	hours := make(map[EmployeeID]float64)
	for w := range s.Cells {
		for d := range s.Cells[w] {
			for _, id := range s.Cells[w][d] {
				if !id.IsUnfilled() {
					hours[id] += ShiftLength
				}
			}
		}
	}
	return hours
}

// HoursInWeeks sums one employee's hours across an inclusive week range
// [from,to], clamped to the grid.
func (s *Schedule) HoursInWeeks(id EmployeeID, from, to int) float64 {
	if from < 0 {
		from = 0
	}
	if to >= s.Weeks {
		to = s.Weeks - 1
	}
	var hours float64
	for w := from; w <= to; w++ {
		for d := range s.Cells[w] {
			for _, got := range s.Cells[w][d] {
				if got == id {
					hours += ShiftLength
				}
			}
		}
	}
	return hours
}

// CellsOn returns the (slot, employee) pairs assigned on day (w,d).
func (s *Schedule) CellsOn(w, d int) [Slots]EmployeeID {
	var out [Slots]EmployeeID
	if w < 0 || w >= s.Weeks || d < 0 || d >= Days {
		return out
	}
	copy(out[:], s.Cells[w][d])
	return out
}
