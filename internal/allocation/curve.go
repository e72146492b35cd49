package allocation

import "sort"

const DefaultCurveSteps = 50

// CoverageCurve answers "if only base amounts were funded, cheapest first, how
// many students would a given spend cover". It ignores the actual allocation
// outcome. The first point is always the origin, followed by one point per
// award.
func CoverageCurve(awards []Award) []CurvePoint {
	bases := make([]int64, len(awards))
	for i, award := range awards {
		bases[i] = award.Base
	}
	sort.SliceStable(bases, func(i, j int) bool { return bases[i] < bases[j] })

	curve := make([]CurvePoint, 0, len(bases)+1)
	curve = append(curve, CurvePoint{})
	var spend int64
	for i, base := range bases {
		spend += base
		curve = append(curve, CurvePoint{CumulativeBaseSpend: spend, StudentsFunded: i + 1})
	}
	return curve
}

// StudentsAt evaluates the step function: the number of students whose
// cumulative base spend fits within budget.
func StudentsAt(curve []CurvePoint, budget int64) int {
	idx := sort.Search(len(curve), func(i int) bool {
		return curve[i].CumulativeBaseSpend > budget
	})
	if idx == 0 {
		return 0
	}
	return curve[idx-1].StudentsFunded
}

// Resample projects the step function onto steps+1 evenly spaced budget levels
// from 0 to maxBudget inclusive. maxBudget is raised to the curve's total spend
// so the last point always reports every student.
func Resample(curve []CurvePoint, maxBudget int64, steps int) []CurvePoint {
	if steps <= 0 {
		steps = DefaultCurveSteps
	}
	if n := len(curve); n > 0 && curve[n-1].CumulativeBaseSpend > maxBudget {
		maxBudget = curve[n-1].CumulativeBaseSpend
	}
	out := make([]CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		level := maxBudget * int64(i) / int64(steps)
		out = append(out, CurvePoint{CumulativeBaseSpend: level, StudentsFunded: StudentsAt(curve, level)})
	}
	return out
}
