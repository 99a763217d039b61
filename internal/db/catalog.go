package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("dataset not found")

// DatasetInfo is one catalog entry: an uploaded file kept in the blob store
// so it can be re-loaded later. Only the raw bytes and shape metadata are
// recorded; grades and boundaries are never persisted.
type DatasetInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BlobKey   string    `json:"-"`
	SizeBytes int64     `json:"size_bytes"`
	NumRows   int       `json:"num_rows"`
	Columns   []string  `json:"columns"`
	CreatedAt time.Time `json:"created_at"`
}

// Catalog stores dataset metadata in SQL.
type Catalog struct{ db *sql.DB }

func NewCatalog(db *sql.DB) *Catalog { return &Catalog{db: db} }

// Save registers an upload and returns its generated ID.
func (c *Catalog) Save(ctx context.Context, info DatasetInfo) (DatasetInfo, error) {
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now()
	}
	cols, err := json.Marshal(info.Columns)
	if err != nil {
		return DatasetInfo{}, err
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO datasets (id, name, blob_key, size_bytes, num_rows, columns_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		info.ID, info.Name, info.BlobKey, info.SizeBytes, info.NumRows, string(cols), info.CreatedAt.Unix())
	if err != nil {
		return DatasetInfo{}, fmt.Errorf("save dataset: %w", err)
	}
	return info, nil
}

// Get looks one entry up by ID.
func (c *Catalog) Get(ctx context.Context, id string) (DatasetInfo, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, blob_key, size_bytes, num_rows, columns_json, created_at
		FROM datasets WHERE id = $1`, id)
	info, err := scanInfo(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return DatasetInfo{}, ErrNotFound
	}
	return info, err
}

// List returns all entries, newest first.
func (c *Catalog) List(ctx context.Context) ([]DatasetInfo, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, blob_key, size_bytes, num_rows, columns_json, created_at
		FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DatasetInfo
	for rows.Next() {
		info, err := scanInfo(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func scanInfo(scan func(dest ...any) error) (DatasetInfo, error) {
	var (
		info     DatasetInfo
		colsJSON string
		created  int64
	)
	if err := scan(&info.ID, &info.Name, &info.BlobKey, &info.SizeBytes,
		&info.NumRows, &colsJSON, &created); err != nil {
		return DatasetInfo{}, err
	}
	if err := json.Unmarshal([]byte(colsJSON), &info.Columns); err != nil {
		return DatasetInfo{}, fmt.Errorf("decode columns: %w", err)
	}
	info.CreatedAt = time.Unix(created, 0)
	return info, nil
}
