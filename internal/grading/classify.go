package grading

// Classify maps one mark to a grade: walk the ladder highest grade first
// and return the first grade whose threshold the mark meets or exceeds,
// F if none do. A mark exactly on a threshold earns that grade.
//
// The function is total over all real inputs, including marks outside
// [0,100], and it applies the same rule even when Validate reports ordering
// violations — a misordered ladder gives surprising but well-defined
// answers, and whether to block on that is the caller's call.
func Classify(mark float64, b Boundaries) Grade {
	for _, step := range b.Ladder() {
		if mark >= step.Threshold {
			return step.Grade
		}
	}
	return GradeF
}
