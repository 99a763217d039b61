// Package grading implements the classification core: grade boundaries,
// the mark→grade classifier and the dataset validation rules. Everything
// here is a pure function of its inputs so it can be driven by any session
// or UI layer.
package grading

import "fmt"

// Grade is one of the nine ordered symbols. F is the fallback and has no
// threshold of its own.
type Grade string

const (
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeD      Grade = "D"
	GradeE      Grade = "E"
	GradeF      Grade = "F"
)

// Grades lists every symbol best-first. Tallies zero-fill over this set.
var Grades = []Grade{
	GradeA, GradeAMinus, GradeB, GradeBMinus,
	GradeC, GradeCMinus, GradeD, GradeE, GradeF,
}

// Rank orders grades best-first: A is 0, F is 8. Unknown symbols rank
// below F.
func (g Grade) Rank() int {
	for i, x := range Grades {
		if x == g {
			return i
		}
	}
	return len(Grades)
}

// Boundaries holds the eight thresholds. Each is the minimum mark that
// earns the grade. Correctness wants A > A- > ... > E, but that is checked
// by Validate, never enforced by construction: classification stays defined
// for any values.
type Boundaries struct {
	A      float64 `json:"A"`
	AMinus float64 `json:"A-"`
	B      float64 `json:"B"`
	BMinus float64 `json:"B-"`
	C      float64 `json:"C"`
	CMinus float64 `json:"C-"`
	D      float64 `json:"D"`
	E      float64 `json:"E"`
}

// Default boundaries: 90/80/70/60/50/40/30/20.
func DefaultBoundaries() Boundaries {
	return Boundaries{A: 90, AMinus: 80, B: 70, BMinus: 60, C: 50, CMinus: 40, D: 30, E: 20}
}

// BoundariesFrom builds Boundaries from eight values ordered A..E. Short or
// long slices fall back to the defaults.
func BoundariesFrom(vals []float64) Boundaries {
	if len(vals) != 8 {
		return DefaultBoundaries()
	}
	return Boundaries{
		A: vals[0], AMinus: vals[1], B: vals[2], BMinus: vals[3],
		C: vals[4], CMinus: vals[5], D: vals[6], E: vals[7],
	}
}

// Step is one rung of the classification ladder.
type Step struct {
	Grade     Grade
	Threshold float64
}

// Ladder returns the thresholds as ordered (grade, threshold) pairs,
// highest grade first. The classifier and the validator both walk this
// table so the evaluation order lives in exactly one place.
func (b Boundaries) Ladder() []Step {
	return []Step{
		{GradeA, b.A},
		{GradeAMinus, b.AMinus},
		{GradeB, b.B},
		{GradeBMinus, b.BMinus},
		{GradeC, b.C},
		{GradeCMinus, b.CMinus},
		{GradeD, b.D},
		{GradeE, b.E},
	}
}

// Validate checks that the thresholds are strictly descending. It walks
// every adjacent pair and reports one message per pair whose later value is
// not strictly below the earlier one, ties included. It never stops at the
// first violation. An empty result means the ladder is well ordered.
func (b Boundaries) Validate() []string {
	ladder := b.Ladder()
	var errs []string
	for i := 1; i < len(ladder); i++ {
		hi, lo := ladder[i-1], ladder[i]
		if !(hi.Threshold > lo.Threshold) {
			errs = append(errs, fmt.Sprintf(
				"boundary %s (%.2f) must be above %s (%.2f)",
				hi.Grade, hi.Threshold, lo.Grade, lo.Threshold))
		}
	}
	return errs
}
