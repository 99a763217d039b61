package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shubham050802/Auto-Grading-Tool/internal/auth"
	"github.com/shubham050802/Auto-Grading-Tool/internal/dataset"
	"github.com/shubham050802/Auto-Grading-Tool/internal/db"
	"github.com/shubham050802/Auto-Grading-Tool/internal/fetch"
	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
	"github.com/shubham050802/Auto-Grading-Tool/internal/pipeline"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
	"github.com/shubham050802/Auto-Grading-Tool/internal/storage"
)

type loadResponse struct {
	Source           string         `json:"source"`
	DatasetID        string         `json:"dataset_id,omitempty"` // catalog entry for uploads
	Columns          []string       `json:"columns"`
	NumRows          int            `json:"num_rows"`
	Column           string         `json:"column"`
	Report           grading.Report `json:"report"`
	BoundaryWarnings []string       `json:"boundary_warnings,omitempty"`
}

// loadInto replaces the session dataset and answers with a fresh report,
// the reactive contract: every load recomputes from scratch.
func loadInto(w http.ResponseWriter, s *session.Session, ds *dataset.Dataset, source, datasetID string) {
	s.SetDataset(ds, source)
	st := s.Snapshot()
	res := pipeline.Recompute(st.Dataset, st.Column, st.Boundaries)
	writeJSON(w, http.StatusOK, loadResponse{
		Source:           source,
		DatasetID:        datasetID,
		Columns:          ds.Columns,
		NumRows:          ds.NumRows(),
		Column:           st.Column,
		Report:           res.Report,
		BoundaryWarnings: res.BoundaryWarnings,
	})
}

// POST /datasets/upload — multipart file upload (csv/tsv/txt/xlsx). The raw
// bytes are kept in the blob store and registered in the catalog so the
// file can be re-loaded later.
func UploadDatasetHandler(reg *session.Registry, catalog *db.Catalog, blobs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, fetch.DefaultMaxBytes)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large or malformed: "+err.Error())
			return
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
			return
		}
		ds, err := dataset.Parse(hdr.Filename, bytes.NewReader(data))
		if err != nil {
			code := http.StatusBadRequest
			if errors.Is(err, dataset.ErrUnsupportedFormat) {
				code = http.StatusUnsupportedMediaType
			}
			writeError(w, code, err.Error())
			return
		}

		key := "uploads/" + uuid.NewString() + strings.ToLower(filepath.Ext(hdr.Filename))
		if _, err := blobs.Put(key, bytes.NewReader(data)); err != nil {
			writeError(w, http.StatusInternalServerError, "store upload: "+err.Error())
			return
		}
		saved, err := catalog.Save(r.Context(), db.DatasetInfo{
			Name:      hdr.Filename,
			BlobKey:   key,
			SizeBytes: int64(len(data)),
			NumRows:   ds.NumRows(),
			Columns:   ds.Columns,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "register upload: "+err.Error())
			return
		}
		loadInto(w, s, ds, hdr.Filename, saved.ID)
	}
}

// POST /datasets/url { "url": "..." } — fetch a remote file. Share links
// for Drive/Dropbox/GitHub are rewritten to direct downloads first.
func LoadURLHandler(reg *session.Registry, loader *fetch.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		var req struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
			writeError(w, http.StatusBadRequest, "url required")
			return
		}
		data, name, err := loader.Fetch(r.Context(), req.URL)
		if err != nil {
			code := http.StatusBadGateway
			switch {
			case errors.Is(err, fetch.ErrTooLarge):
				code = http.StatusRequestEntityTooLarge
			case errors.Is(err, fetch.ErrHTMLPage):
				code = http.StatusBadRequest
			}
			writeError(w, code, err.Error())
			return
		}
		ds, err := dataset.Parse(name, bytes.NewReader(data))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		loadInto(w, s, ds, req.URL, "")
	}
}

// POST /datasets/sample — load the bundled demo table.
func LoadSampleHandler(reg *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		ds, err := dataset.Sample()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "sample: "+err.Error())
			return
		}
		loadInto(w, s, ds, "sample", "")
	}
}

// GET /datasets — list previously uploaded files. The catalog spans every
// session, so listing it is admin-only; plain sessions re-load their own
// uploads with the dataset_id the upload response handed back.
func ListDatasetsHandler(catalog *db.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAdmin(r.Context()) {
			writeError(w, http.StatusForbidden, "admin only")
			return
		}
		infos, err := catalog.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"datasets": infos})
	}
}

// POST /datasets/{datasetID}/load — re-load a catalog entry into the session.
func LoadCatalogDatasetHandler(reg *session.Registry, catalog *db.Catalog, blobs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(w, r, reg)
		if s == nil {
			return
		}
		info, err := catalog.Get(r.Context(), chi.URLParam(r, "datasetID"))
		if err != nil {
			code := http.StatusInternalServerError
			if errors.Is(err, db.ErrNotFound) {
				code = http.StatusNotFound
			}
			writeError(w, code, err.Error())
			return
		}
		blob, err := blobs.Get(info.BlobKey)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "read blob: "+err.Error())
			return
		}
		defer blob.Close()
		ds, err := dataset.Parse(info.Name, blob)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		loadInto(w, s, ds, info.Name, info.ID)
	}
}
