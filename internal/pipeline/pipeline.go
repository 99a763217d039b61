// Package pipeline ties the core together: validate, classify every row,
// aggregate. The HTTP layer calls Recompute with fresh inputs on every
// state change; there is no incremental state here.
package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/shubham050802/Auto-Grading-Tool/internal/dataset"
	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
	"github.com/shubham050802/Auto-Grading-Tool/internal/stats"
)

// GradeColumn is the name appended to the classified table.
const GradeColumn = "Grade"

// Result of one recompute pass. When the validation report blocks,
// Classified, Summary, Distribution and Histogram stay nil/zero.
type Result struct {
	Report           grading.Report
	BoundaryWarnings []string

	Classified   *dataset.Dataset
	Grades       []grading.Grade // one entry per graded (non-missing) row
	Ungraded     int             // rows whose mark was missing
	Summary      stats.Summary
	Distribution stats.Distribution
	Histogram    stats.Histogram
}

// Recompute runs the full pass over one dataset/column/boundaries triple.
//
// Rows with a missing mark are kept in the classified table with an empty
// Grade cell and counted as ungraded; they never reach the classifier.
// Boundary ordering violations are reported as warnings and do not block —
// classification stays defined for any ladder.
func Recompute(ds *dataset.Dataset, column string, b grading.Boundaries) Result {
	res := Result{
		Report:           grading.ValidateMarks(ds, column),
		BoundaryWarnings: b.Validate(),
	}
	for _, w := range res.BoundaryWarnings {
		log.Printf("grading: %s", w)
	}
	if !res.Report.OK() {
		return res
	}

	col, err := ds.NumericColumn(column)
	if err != nil {
		// Unreachable after a passing report; keep the failure visible.
		res.Report.Errors = append(res.Report.Errors, err.Error())
		return res
	}

	cells := make([]string, len(col.Values))
	marks := make([]float64, 0, col.Valid)
	for i, v := range col.Values {
		if math.IsNaN(v) {
			res.Ungraded++
			continue
		}
		g := grading.Classify(v, b)
		cells[i] = string(g)
		res.Grades = append(res.Grades, g)
		marks = append(marks, v)
	}

	res.Classified = ds.WithColumn(GradeColumn, cells)
	res.Summary = stats.Summarize(marks)
	res.Distribution = stats.Distribute(res.Grades)
	res.Histogram = stats.BinMarks(marks, 10)
	return res
}

// ExportCSV writes the classified table as UTF-8 CSV: every original column
// plus the Grade column, no index column.
func ExportCSV(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
