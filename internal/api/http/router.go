// Package http wires the dashboard API onto a chi router. Handlers follow
// a constructor-per-endpoint shape so tests can mount any subset with
// in-memory dependencies.
package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/shubham050802/Auto-Grading-Tool/internal/db"
	"github.com/shubham050802/Auto-Grading-Tool/internal/fetch"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
	"github.com/shubham050802/Auto-Grading-Tool/internal/storage"
)

type Deps struct {
	Registry *session.Registry
	Catalog  *db.Catalog
	Blobs    storage.BlobStore
	Loader   *fetch.Loader
}

// Mount attaches the session-scoped API. The caller is expected to guard
// the router with the auth middleware first.
func Mount(r chi.Router, d Deps) {
	r.Post("/datasets/upload", UploadDatasetHandler(d.Registry, d.Catalog, d.Blobs))
	r.Post("/datasets/url", LoadURLHandler(d.Registry, d.Loader))
	r.Post("/datasets/sample", LoadSampleHandler(d.Registry))
	r.Get("/datasets", ListDatasetsHandler(d.Catalog))
	r.Post("/datasets/{datasetID}/load", LoadCatalogDatasetHandler(d.Registry, d.Catalog, d.Blobs))

	r.Get("/boundaries", GetBoundariesHandler(d.Registry))
	r.Put("/boundaries", PutBoundariesHandler(d.Registry))
	r.Put("/column", PutColumnHandler(d.Registry))

	r.Get("/report", ReportHandler(d.Registry))
	r.Get("/summary", SummaryHandler(d.Registry))
	r.Get("/table", TableHandler(d.Registry))
	r.Get("/histogram", HistogramHandler(d.Registry))
	r.Get("/chart", ChartHandler(d.Registry))
	r.Get("/export", ExportHandler(d.Registry))
}
