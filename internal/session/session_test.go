package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham050802/Auto-Grading-Tool/internal/dataset"
	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
)

func TestRegistryCreateGet(t *testing.T) {
	reg := session.NewRegistry(grading.DefaultBoundaries())
	s := reg.Create()
	require.NotEmpty(t, s.ID)

	got, ok := reg.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, grading.DefaultBoundaries(), got.Snapshot().Boundaries)

	_, ok = reg.Get("nope")
	assert.False(t, ok)

	reg.Delete(s.ID)
	_, ok = reg.Get(s.ID)
	assert.False(t, ok)
}

func TestIdleSessionsExpire(t *testing.T) {
	reg := session.NewRegistry(grading.DefaultBoundaries())
	s := reg.Create()

	// Fresh sessions resolve.
	_, ok := reg.Get(s.ID)
	require.True(t, ok)

	// Once past the idle timeout the session is gone.
	reg.SetTTL(-1)
	_, ok = reg.Get(s.ID)
	assert.False(t, ok)

	// Expired entries are also swept when new sessions are created: the
	// old session stays gone even after the timeout is raised again.
	a := reg.Create()
	b := reg.Create() // sweeps a (still at the immediate-expiry TTL)
	reg.SetTTL(session.DefaultTTL)
	_, ok = reg.Get(a.ID)
	assert.False(t, ok, "swept session must not come back")
	_, ok = reg.Get(b.ID)
	assert.True(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	reg := session.NewRegistry(grading.DefaultBoundaries())
	a, b := reg.Create(), reg.Create()

	custom := grading.DefaultBoundaries()
	custom.A = 95
	a.SetBoundaries(custom)

	assert.Equal(t, 95.0, a.Snapshot().Boundaries.A)
	assert.Equal(t, 90.0, b.Snapshot().Boundaries.A)
}

func TestSetDatasetGuessesColumn(t *testing.T) {
	reg := session.NewRegistry(grading.DefaultBoundaries())
	s := reg.Create()

	ds := &dataset.Dataset{
		Columns: []string{"Student", "Marks"},
		Rows:    [][]string{{"alice", "85"}},
	}
	s.SetDataset(ds, "marks.csv")

	st := s.Snapshot()
	assert.Equal(t, "Marks", st.Column)
	assert.Equal(t, "marks.csv", st.SourceName)
}

func TestSetDatasetKeepsValidSelection(t *testing.T) {
	reg := session.NewRegistry(grading.DefaultBoundaries())
	s := reg.Create()
	s.SetColumn("Score")

	ds := &dataset.Dataset{
		Columns: []string{"Score", "Marks"},
		Rows:    [][]string{{"85", "40"}},
	}
	s.SetDataset(ds, "x.csv")
	assert.Equal(t, "Score", s.Snapshot().Column)

	// Replacing with a table that lacks the selection re-guesses.
	ds2 := &dataset.Dataset{
		Columns: []string{"Student", "Total"},
		Rows:    [][]string{{"alice", "61"}},
	}
	s.SetDataset(ds2, "y.csv")
	assert.Equal(t, "Total", s.Snapshot().Column)
}
