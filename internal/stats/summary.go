// Package stats computes the descriptive summary, grade tallies and
// histogram shown on the dashboard.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
)

// Summary describes the non-missing marks of one column. Values keep full
// precision; rounding is a display concern (see Round2).
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"` // sample std, N-1 denominator
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// GradeCount is one row of the distribution table. Percent is over all
// graded rows, 0 when nothing was graded.
type GradeCount struct {
	Grade   grading.Grade `json:"grade"`
	Count   int           `json:"count"`
	Percent float64       `json:"percent"`
}

// Distribution tallies grades over the fixed nine-symbol set, zero-filling
// grades with no members, plus pass/fail counts where only F fails.
type Distribution struct {
	Tally []GradeCount `json:"tally"`
	Pass  int          `json:"pass"`
	Fail  int          `json:"fail"`
}

// Summarize computes mean, median, sample std, min, max and count over vals.
// An empty input yields a zero Count and NaN-free zeros elsewhere.
func Summarize(vals []float64) Summary {
	if len(vals) == 0 {
		return Summary{}
	}
	sorted := append([]float64{}, vals...)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(vals),
		Mean:   stat.Mean(vals, nil),
		Median: median(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(vals) > 1 {
		s.Std = stat.StdDev(vals, nil)
	}
	return s
}

// median of pre-sorted data: midpoint of the two central values for even
// lengths, matching the usual spreadsheet definition.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Distribute tallies the given grades. Every symbol appears in the result
// even at count zero.
func Distribute(grades []grading.Grade) Distribution {
	counts := make(map[grading.Grade]int, len(grading.Grades))
	for _, g := range grades {
		counts[g]++
	}
	d := Distribution{Tally: make([]GradeCount, 0, len(grading.Grades))}
	total := len(grades)
	for _, g := range grading.Grades {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[g]) / float64(total) * 100
		}
		d.Tally = append(d.Tally, GradeCount{Grade: g, Count: counts[g], Percent: pct})
		if g == grading.GradeF {
			d.Fail += counts[g]
		} else {
			d.Pass += counts[g]
		}
	}
	return d
}

// Histogram bins marks for the chart. Edges has len(Counts)+1 entries.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// BinMarks builds a histogram with the given number of bins. The range
// defaults to [0,100] and widens to cover out-of-range marks so no value is
// dropped.
func BinMarks(vals []float64, bins int) Histogram {
	if bins <= 0 {
		bins = 10
	}
	h := Histogram{Edges: make([]float64, bins+1), Counts: make([]int, bins)}
	lo, hi := 0.0, 100.0
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	floats.Span(h.Edges, lo, hi)

	if len(vals) == 0 {
		return h
	}
	sorted := append([]float64{}, vals...)
	sort.Float64s(sorted)
	// Nudge the top edge so stat.Histogram keeps the maximum in-range.
	dividers := append([]float64{}, h.Edges...)
	dividers[len(dividers)-1] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)
	for i, c := range counts {
		h.Counts[i] = int(c)
	}
	return h
}

// Round2 rounds for display: 2 decimal places.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*100) / 100
}
