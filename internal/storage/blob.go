package storage

import "io"

// BlobStore keeps the raw bytes of uploaded data files so catalog entries
// can be re-loaded.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
}
