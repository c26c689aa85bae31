// Package stats computes post-run fairness metrics and exports the
// annealing score history for external reporting (§12: "per-employee
// detail sheets, score-history plotting" — out of the solver's core, but
// still part of the complete system).
package stats

import (
	"math"
	"sort"

	"github.com/rotaworks/scheduler/pkg/model"
)

// EmployeeStat is one employee's workload summary over a completed run.
type EmployeeStat struct {
	EmployeeID    model.EmployeeID `json:"employee_id"`
	EmployeeName  string           `json:"employee_name"`
	TotalHours    float64          `json:"total_hours"`
	ShiftCount    int              `json:"shift_count"`
	NightShifts   int              `json:"night_shifts"`
	WeekendShifts int              `json:"weekend_shifts"`
	Deviation     float64          `json:"deviation"` // % deviation from the roster average
}

// FairnessMetrics summarises how evenly a schedule distributes hours,
// night shifts, and weekend shifts across the roster.
type FairnessMetrics struct {
	WorkloadGini         float64        `json:"workload_gini"` // 0 = perfectly fair, 1 = maximally unfair
	WorkloadVariance     float64        `json:"workload_variance"`
	WorkloadStdDev       float64        `json:"workload_std_dev"`
	AvgHoursPerEmployee  float64        `json:"avg_hours_per_employee"`
	MaxHours             float64        `json:"max_hours"`
	MinHours             float64        `json:"min_hours"`
	HoursRange           float64        `json:"hours_range"`
	NightShiftGini       float64        `json:"night_shift_gini"`
	WeekendShiftGini     float64        `json:"weekend_shift_gini"`
	EmployeeStats        []EmployeeStat `json:"employee_stats"`
	OverallFairnessScore float64        `json:"overall_fairness_score"` // 0-100
}

// FairnessAnalyzer computes fairness metrics directly off the schedule
// grid and roster — no intermediate assignment records, since the grid
// already carries every fact a shift-level record would (week, day,
// slot kind, employee).
type FairnessAnalyzer struct{}

// NewFairnessAnalyzer creates a fairness analyzer.
func NewFairnessAnalyzer() *FairnessAnalyzer {
	return &FairnessAnalyzer{}
}

// Analyze computes the full fairness breakdown for one completed schedule.
func (f *FairnessAnalyzer) Analyze(s *model.Schedule, roster *model.Roster) *FairnessMetrics {
	employeeStats := f.calculateEmployeeStats(s, roster)
	if len(employeeStats) == 0 {
		return &FairnessMetrics{OverallFairnessScore: 100}
	}

	hours := make([]float64, len(employeeStats))
	nightShifts := make([]float64, len(employeeStats))
	weekendShifts := make([]float64, len(employeeStats))
	for i, stat := range employeeStats {
		hours[i] = stat.TotalHours
		nightShifts[i] = float64(stat.NightShifts)
		weekendShifts[i] = float64(stat.WeekendShifts)
	}

	avgHours := mean(hours)
	variance := varianceOf(hours, avgHours)
	stdDev := math.Sqrt(variance)
	maxHours, minHours := rangeOf(hours)

	for i := range employeeStats {
		if avgHours > 0 {
			employeeStats[i].Deviation = (employeeStats[i].TotalHours - avgHours) / avgHours * 100
		}
	}

	workloadGini := gini(hours)
	nightGini := gini(nightShifts)
	weekendGini := gini(weekendShifts)
	overallScore := f.calculateOverallScore(workloadGini, nightGini, weekendGini, stdDev, avgHours)

	return &FairnessMetrics{
		WorkloadGini:         workloadGini,
		WorkloadVariance:     variance,
		WorkloadStdDev:       stdDev,
		AvgHoursPerEmployee:  avgHours,
		MaxHours:             maxHours,
		MinHours:             minHours,
		HoursRange:           maxHours - minHours,
		NightShiftGini:       nightGini,
		WeekendShiftGini:     weekendGini,
		EmployeeStats:        employeeStats,
		OverallFairnessScore: overallScore,
	}
}

func (f *FairnessAnalyzer) calculateEmployeeStats(s *model.Schedule, roster *model.Roster) []EmployeeStat {
	statMap := make(map[model.EmployeeID]*EmployeeStat)

	for w := 0; w < s.Weeks; w++ {
		for d := 0; d < model.Days; d++ {
			for slot := 0; slot < model.Slots; slot++ {
				emp := s.Get(w, d, slot)
				if emp.IsUnfilled() {
					continue
				}
				stat, ok := statMap[emp]
				if !ok {
					name := ""
					if e := roster.Get(emp); e != nil {
						name = e.Name
					}
					stat = &EmployeeStat{EmployeeID: emp, EmployeeName: name}
					statMap[emp] = stat
				}
				stat.TotalHours += model.ShiftLength
				stat.ShiftCount++
				if model.Slot(slot) == model.N {
					stat.NightShifts++
				}
				if model.Weekday(d).IsWeekend() {
					stat.WeekendShifts++
				}
			}
		}
	}

	result := make([]EmployeeStat, 0, len(statMap))
	for _, stat := range statMap {
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalHours > result[j].TotalHours
	})
	return result
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func varianceOf(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

func rangeOf(values []float64) (max, min float64) {
	if len(values) == 0 {
		return 0, 0
	}
	max, min = values[0], values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return
}

// gini computes the Gini coefficient of a set of values (0 = perfectly
// equal distribution, 1 = maximally unequal).
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	g := 0.0
	for i, v := range sorted {
		g += (2*float64(i+1) - float64(n) - 1) * v
	}
	g /= float64(n) * sum
	return math.Max(0, math.Min(1, g))
}

func (f *FairnessAnalyzer) calculateOverallScore(workloadGini, nightGini, weekendGini, stdDev, avgHours float64) float64 {
	const (
		workloadWeight = 0.4
		nightWeight    = 0.25
		weekendWeight  = 0.25
		stdDevWeight   = 0.1
	)

	workloadScore := (1 - workloadGini) * 100
	nightScore := (1 - nightGini) * 100
	weekendScore := (1 - weekendGini) * 100

	cvScore := 100.0
	if avgHours > 0 {
		cv := stdDev / avgHours
		cvScore = math.Max(0, 100-cv*200)
	}

	score := workloadWeight*workloadScore +
		nightWeight*nightScore +
		weekendWeight*weekendScore +
		stdDevWeight*cvScore

	return math.Max(0, math.Min(100, score))
}

// CompareSchedules diffs the fairness metrics of two candidate schedules
// for the same roster — useful when deciding between repair outcomes.
func (f *FairnessAnalyzer) CompareSchedules(s1, s2 *model.Schedule, roster *model.Roster) map[string]float64 {
	m1 := f.Analyze(s1, roster)
	m2 := f.Analyze(s2, roster)

	return map[string]float64{
		"workload_gini_diff":      m2.WorkloadGini - m1.WorkloadGini,
		"night_gini_diff":         m2.NightShiftGini - m1.NightShiftGini,
		"weekend_gini_diff":       m2.WeekendShiftGini - m1.WeekendShiftGini,
		"overall_score_diff":      m2.OverallFairnessScore - m1.OverallFairnessScore,
		"schedule1_overall_score": m1.OverallFairnessScore,
		"schedule2_overall_score": m2.OverallFairnessScore,
	}
}
