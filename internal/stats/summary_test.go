package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
	"github.com/shubham050802/Auto-Grading-Tool/internal/stats"
)

func TestSummarize(t *testing.T) {
	s := stats.Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	// Sample std with N-1 denominator.
	assert.InDelta(t, 2.13809, s.Std, 1e-4)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestSummarizeOddMedian(t *testing.T) {
	s := stats.Summarize([]float64{9, 1, 5})
	assert.Equal(t, 5.0, s.Median)
}

func TestSummarizeEmptyAndSingle(t *testing.T) {
	assert.Equal(t, stats.Summary{}, stats.Summarize(nil))

	s := stats.Summarize([]float64{42})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 0.0, s.Std)
}

func TestDistributeZeroFills(t *testing.T) {
	d := stats.Distribute([]grading.Grade{
		grading.GradeA, grading.GradeA, grading.GradeB, grading.GradeF,
	})
	require.Len(t, d.Tally, 9)

	byGrade := map[grading.Grade]stats.GradeCount{}
	for _, gc := range d.Tally {
		byGrade[gc.Grade] = gc
	}
	assert.Equal(t, 2, byGrade[grading.GradeA].Count)
	assert.InDelta(t, 50.0, byGrade[grading.GradeA].Percent, 1e-9)
	// Grade D has no members but still gets a row.
	assert.Equal(t, 0, byGrade[grading.GradeD].Count)
	assert.Equal(t, 0.0, byGrade[grading.GradeD].Percent)

	assert.Equal(t, 3, d.Pass)
	assert.Equal(t, 1, d.Fail)
}

func TestDistributeEmpty(t *testing.T) {
	d := stats.Distribute(nil)
	require.Len(t, d.Tally, 9)
	for _, gc := range d.Tally {
		assert.Equal(t, 0, gc.Count)
		assert.Equal(t, 0.0, gc.Percent)
	}
}

func TestBinMarks(t *testing.T) {
	h := stats.BinMarks([]float64{5, 15, 15, 95, 100}, 10)
	require.Len(t, h.Counts, 10)
	require.Len(t, h.Edges, 11)
	assert.Equal(t, 0.0, h.Edges[0])
	assert.Equal(t, 100.0, h.Edges[10])
	assert.Equal(t, 1, h.Counts[0])
	assert.Equal(t, 2, h.Counts[1])
	// The maximum lands in the last bin, not off the end.
	assert.Equal(t, 2, h.Counts[9])

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 5, total)
}

func TestBinMarksWidensForOutOfRange(t *testing.T) {
	h := stats.BinMarks([]float64{-10, 50, 120}, 10)
	assert.LessOrEqual(t, h.Edges[0], -10.0)
	assert.GreaterOrEqual(t, h.Edges[len(h.Edges)-1], 120.0)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 3, total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, stats.Round2(3.14159))
	assert.Equal(t, -5.0, stats.Round2(-5.004))
}
