package grading

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/shubham050802/Auto-Grading-Tool/internal/dataset"
)

// Report carries the outcome of validating a dataset/column pair.
// Errors block classification; warnings are advisory and grading proceeds.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether classification may proceed.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// Err folds the blocking errors into a single error value, nil when OK.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	var merr *multierror.Error
	for _, e := range r.Errors {
		merr = multierror.Append(merr, fmt.Errorf("%s", e))
	}
	return merr.ErrorOrNil()
}

// ValidateMarks checks the chosen marks column. The blocking checks run in
// a fixed order and short-circuit: an empty dataset or a missing column
// makes the later checks meaningless. Range checks only warn — marks
// outside [0,100] are suspicious, not fatal.
//
// All comparisons use the raw float values; rounding happens only when
// formatting the message.
func ValidateMarks(ds *dataset.Dataset, column string) Report {
	var rep Report

	if ds == nil || ds.NumRows() == 0 {
		rep.Errors = append(rep.Errors, "dataset is empty")
		return rep
	}
	if !ds.HasColumn(column) {
		rep.Errors = append(rep.Errors, fmt.Sprintf("column %q not found; available: %s",
			column, strings.Join(ds.Columns, ", ")))
		return rep
	}
	col, err := ds.NumericColumn(column)
	if err != nil {
		rep.Errors = append(rep.Errors, "marks column is not numeric: "+err.Error())
		return rep
	}
	if col.Valid == 0 {
		rep.Errors = append(rep.Errors, fmt.Sprintf("column %q has no valid marks", column))
		return rep
	}

	if min := col.Min(); min < 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("negative marks found (minimum %.2f)", min))
	}
	if max := col.Max(); max > 100 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("marks above 100 found (maximum %.2f)", max))
	}
	return rep
}
