package model

// EmployeeID is a stable small integer identity for an employee, replacing
// the source's reference-identity comparison (§9 Design Notes: "a rewrite
// should use a stable small integer id per employee; UNFILLED is id 0").
// The grid stores ids, not pointers.
type EmployeeID int

// Unfilled is the sentinel employee id standing in for an empty cell.
const Unfilled EmployeeID = 0

// IsUnfilled reports whether id is the Unfilled sentinel.
func (id EmployeeID) IsUnfilled() bool {
	return id == Unfilled
}

// Employee carries identity and the attributes the solver's rules consult
// directly. The rule set attached to an employee (HOURS_PER_PAY_PERIOD cap,
// CONSECUTIVE_DAYS limit, and so on) is not embedded here — it lives
// alongside the employee in the Roster — so this package has no dependency
// on the concrete rule implementations in pkg/scheduler/constraint.
type Employee struct {
	ID   EmployeeID
	Name string
	FTE  float64 // full-time-equivalent, in [0,1]
}

// Pool names the three disjoint employee pools the catalogue is built
// from (§6: "three disjoint pools: day-capable, night-capable, and float").
type Pool int

const (
	PoolDay Pool = iota
	PoolNight
	PoolFloat
)

func (p Pool) String() string {
	switch p {
	case PoolDay:
		return "day"
	case PoolNight:
		return "night"
	case PoolFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Roster is the employee catalogue handed to the solver at construction:
// every employee that may appear in the grid, partitioned into pools, plus
// the rule set attached to each.
type Roster struct {
	Employees map[EmployeeID]*Employee
	Pools     map[Pool][]EmployeeID
	Rules     map[EmployeeID][]Rule
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		Employees: make(map[EmployeeID]*Employee),
		Pools:     make(map[Pool][]EmployeeID),
		Rules:     make(map[EmployeeID][]Rule),
	}
}

// Add registers an employee in the given pool with the given rule set.
// An employee may be added to more than one pool (e.g. a float worker).
func (r *Roster) Add(emp *Employee, pool Pool, rules []Rule) {
	r.Employees[emp.ID] = emp
	r.Pools[pool] = append(r.Pools[pool], emp.ID)
	r.Rules[emp.ID] = append(r.Rules[emp.ID], rules...)
}

// All returns every non-sentinel employee id known to the roster, sorted
// ascending so iteration order is deterministic.
func (r *Roster) All() []EmployeeID {
	ids := make([]EmployeeID, 0, len(r.Employees))
	for id := range r.Employees {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

// Get returns the employee for id, or nil if unknown.
func (r *Roster) Get(id EmployeeID) *Employee {
	return r.Employees[id]
}

// RulesFor returns the rule set attached to id, or nil.
func (r *Roster) RulesFor(id EmployeeID) []Rule {
	return r.Rules[id]
}

// InPool reports whether id belongs to pool.
func (r *Roster) InPool(id EmployeeID, pool Pool) bool {
	for _, p := range r.Pools[pool] {
		if p == id {
			return true
		}
	}
	return false
}
