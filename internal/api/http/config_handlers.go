package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
	"github.com/shubham050802/Auto-Grading-Tool/internal/pipeline"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
)

// GET /boundaries
func GetBoundariesHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		st := s.Snapshot()
		writeJSON(w, http.StatusOK, map[string]any{
			"boundaries": st.Boundaries,
			"warnings":   st.Boundaries.Validate(),
		})
	}
}

// PUT /boundaries — set all eight thresholds. Values must sit in [0,100];
// ordering violations are allowed through and come back as warnings, the
// permissive behavior the dashboard relies on.
func PutBoundariesHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		var b grading.Boundaries
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		for _, step := range b.Ladder() {
			if step.Threshold < 0 || step.Threshold > 100 {
				writeError(w, http.StatusBadRequest,
					fmt.Sprintf("boundary %s (%.2f) outside [0,100]", step.Grade, step.Threshold))
				return
			}
		}
		s.SetBoundaries(b)
		st := s.Snapshot()
		res := pipeline.Recompute(st.Dataset, st.Column, st.Boundaries)
		writeJSON(w, http.StatusOK, map[string]any{
			"boundaries":        b,
			"boundary_warnings": res.BoundaryWarnings,
			"report":            res.Report,
		})
	}
}

// PUT /column { "column": "..." } — select the marks column. The fresh
// validation report comes back immediately so the client can surface
// blocking errors without a second round trip.
func PutColumnHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		var req struct {
			Column string `json:"column"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Column) == "" {
			writeError(w, http.StatusBadRequest, "column required")
			return
		}
		s.SetColumn(strings.TrimSpace(req.Column))
		st := s.Snapshot()
		res := pipeline.Recompute(st.Dataset, st.Column, st.Boundaries)
		writeJSON(w, http.StatusOK, map[string]any{
			"column": st.Column,
			"report": res.Report,
		})
	}
}
