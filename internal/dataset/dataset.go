// Package dataset holds the tabular model shared by the loaders, the
// validators and the grading pipeline. A Dataset is immutable once parsed;
// re-loading produces a fresh one.
package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dataset is an ordered table of string cells. Empty cells (and the usual
// NA spellings) are treated as missing by the numeric views.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Record is one row keyed by column name.
type Record map[string]string

func (d *Dataset) NumRows() int { return len(d.Rows) }

func (d *Dataset) HasColumn(name string) bool {
	return d.columnIndex(name) >= 0
}

func (d *Dataset) columnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Record returns row i as a name→value map.
func (d *Dataset) Record(i int) Record {
	rec := make(Record, len(d.Columns))
	for j, c := range d.Columns {
		rec[c] = d.Rows[i][j]
	}
	return rec
}

// NumericColumn is a typed view of one column: Values has one entry per row,
// NaN where the cell is missing. Valid counts the non-missing entries.
type NumericColumn struct {
	Values []float64
	Valid  int
}

// Min and Max range over non-missing values only. Both return NaN when the
// column has no valid entries.
func (c NumericColumn) Min() float64 { return c.extreme(func(a, b float64) bool { return a < b }) }
func (c NumericColumn) Max() float64 { return c.extreme(func(a, b float64) bool { return a > b }) }

func (c NumericColumn) extreme(better func(a, b float64) bool) float64 {
	out := math.NaN()
	for _, v := range c.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(out) || better(v, out) {
			out = v
		}
	}
	return out
}

// ValidValues returns the non-missing entries in row order.
func (c NumericColumn) ValidValues() []float64 {
	out := make([]float64, 0, c.Valid)
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// NumericColumn parses the named column. Missing cells are skipped; any
// non-missing cell that fails to parse makes the whole column non-numeric.
func (d *Dataset) NumericColumn(name string) (NumericColumn, error) {
	idx := d.columnIndex(name)
	if idx < 0 {
		return NumericColumn{}, fmt.Errorf("column %q not found", name)
	}
	col := NumericColumn{Values: make([]float64, len(d.Rows))}
	for i, row := range d.Rows {
		cell := ""
		if idx < len(row) {
			cell = row[idx]
		}
		if isMissing(cell) {
			col.Values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return NumericColumn{}, fmt.Errorf("column %q has non-numeric value %q at row %d", name, cell, i+1)
		}
		col.Values[i] = v
		col.Valid++
	}
	return col, nil
}

// FirstNumericColumn guesses the marks column: the first column that parses
// numerically and has at least one valid value.
func (d *Dataset) FirstNumericColumn() (string, bool) {
	for _, name := range d.Columns {
		if col, err := d.NumericColumn(name); err == nil && col.Valid > 0 {
			return name, true
		}
	}
	return "", false
}

// WithColumn returns a copy of the dataset with one more column appended.
// values must have one entry per row.
func (d *Dataset) WithColumn(name string, values []string) *Dataset {
	out := &Dataset{
		Columns: append(append([]string{}, d.Columns...), name),
		Rows:    make([][]string, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append(append([]string{}, row...), values[i])
	}
	return out
}

func isMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "n/a", "nan", "null", "none":
		return true
	}
	return false
}
