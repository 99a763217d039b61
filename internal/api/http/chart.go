package http

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
	"github.com/shubham050802/Auto-Grading-Tool/internal/stats"
)

// GET /chart — the marks histogram and grade distribution as a standalone
// HTML page.
func ChartHandler(reg *session.Registry) http.HandlerFunc {
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

		page := components.NewPage()
		page.PageTitle = "Marks Dashboard"
		page.AddCharts(histogramChart(res.Histogram), distributionChart(res.Distribution))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = page.Render(w)
	}
}

func histogramChart(h stats.Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Marks distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	labels := make([]string, len(h.Counts))
	data := make([]opts.BarData, len(h.Counts))
	for i, c := range h.Counts {
		labels[i] = fmt.Sprintf("%.0f-%.0f", h.Edges[i], h.Edges[i+1])
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(labels).AddSeries("marks", data)
	return bar
}

func distributionChart(d stats.Distribution) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Grades"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	labels := make([]string, len(d.Tally))
	data := make([]opts.BarData, len(d.Tally))
	for i, t := range d.Tally {
		labels[i] = string(t.Grade)
		data[i] = opts.BarData{Value: t.Count}
	}
	bar.SetXAxis(labels).AddSeries("students", data)
	return bar
}
