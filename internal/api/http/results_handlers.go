package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/shubham050802/Auto-Grading-Tool/internal/pipeline"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
	"github.com/shubham050802/Auto-Grading-Tool/internal/stats"
)

// recompute runs the full pipeline over the session's current state.
func recompute(s *session.Session) pipeline.Result {
	st := s.Snapshot()
	return pipeline.Recompute(st.Dataset, st.Column, st.Boundaries)
}

// GET /report — validation report plus boundary warnings.
func ReportHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		res := recompute(s)
		writeJSON(w, http.StatusOK, map[string]any{
			"report":            res.Report,
			"boundary_warnings": res.BoundaryWarnings,
		})
	}
}

type summaryResponse struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Ungraded int     `json:"ungraded"`

	Tally []tallyRow `json:"tally"`
	Pass  int        `json:"pass"`
	Fail  int        `json:"fail"`
}

type tallyRow struct {
	Grade   string  `json:"grade"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// GET /summary — descriptive statistics and the grade distribution,
// rounded to 2 dp for display.
func SummaryHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		res := recompute(s)
		if !res.Report.OK() {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"report": res.Report})
			return
		}
		out := summaryResponse{
			Count:    res.Summary.Count,
			Mean:     stats.Round2(res.Summary.Mean),
			Median:   stats.Round2(res.Summary.Median),
			Std:      stats.Round2(res.Summary.Std),
			Min:      stats.Round2(res.Summary.Min),
			Max:      stats.Round2(res.Summary.Max),
			Ungraded: res.Ungraded,
			Pass:     res.Distribution.Pass,
			Fail:     res.Distribution.Fail,
		}
		for _, t := range res.Distribution.Tally {
			out.Tally = append(out.Tally, tallyRow{
				Grade:   string(t.Grade),
				Count:   t.Count,
				Percent: stats.Round2(t.Percent),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /table — classified rows as JSON records.
func TableHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		res := recompute(s)
		if !res.Report.OK() {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"report": res.Report})
			return
		}
		records := make([]map[string]string, 0, res.Classified.NumRows())
		for i := 0; i < res.Classified.NumRows(); i++ {
			records = append(records, res.Classified.Record(i))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"columns": res.Classified.Columns,
			"records": records,
		})
	}
}

// GET /histogram — marks histogram bins.
func HistogramHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		res := recompute(s)
		if !res.Report.OK() {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"report": res.Report})
			return
		}
		writeJSON(w, http.StatusOK, res.Histogram)
	}
}

// GET /export — the classified table as a CSV download.
func ExportHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		res := recompute(s)
		if !res.Report.OK() {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"report": res.Report})
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportName(s.Snapshot().SourceName)+`"`)
		_ = pipeline.ExportCSV(w, res.Classified)
	}
}

// exportName derives the download file name from the load source, keeping
// only characters safe inside a Content-Disposition header.
func exportName(source string) string {
	base := path.Base(source)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if base == "" || base == "_" {
		base = "marks"
	}
	return base + "_graded.csv"
}
