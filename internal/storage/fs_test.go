package storage_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham050802/Auto-Grading-Tool/internal/storage"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)

	key, err := s.Put("uploads/a.csv", strings.NewReader("Student,Marks\n"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/a.csv", key)

	rc, err := s.Get(key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Student,Marks\n", string(data))

	require.NoError(t, s.Delete(key))
	_, err = s.Get(key)
	assert.Error(t, err)
}

func TestFSStoreRejectsEmptyKey(t *testing.T) {
	s, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	_, err = s.Put("", strings.NewReader("x"))
	assert.Error(t, err)
}
