// Package session holds per-client dashboard state. Each session owns its
// dataset, marks-column selection and grade boundaries; sessions never see
// each other's state. Nothing here is persisted.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shubham050802/Auto-Grading-Tool/internal/dataset"
	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
)

// State is a consistent snapshot of one session, taken under the session
// lock and safe to use for a full recompute pass.
type State struct {
	Dataset    *dataset.Dataset
	Column     string
	Boundaries grading.Boundaries
	SourceName string
}

type Session struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	state    State
	lastUsed time.Time
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetDataset replaces the dataset wholesale and re-guesses the marks column
// unless the previous selection still exists in the new table.
func (s *Session) SetDataset(ds *dataset.Dataset, sourceName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Dataset = ds
	s.state.SourceName = sourceName
	if ds == nil {
		return
	}
	if !ds.HasColumn(s.state.Column) {
		if col, ok := ds.FirstNumericColumn(); ok {
			s.state.Column = col
		} else {
			s.state.Column = ""
		}
	}
}

func (s *Session) SetColumn(column string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Column = column
}

func (s *Session) SetBoundaries(b grading.Boundaries) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Boundaries = b
}

// DefaultTTL matches the session-token lifetime: a token that can no
// longer be used has no session worth keeping.
const DefaultTTL = 12 * time.Hour

// Registry is the in-memory session store. Idle sessions are pruned
// lazily: expired entries vanish on lookup and stale ones are swept on
// every Create, so the map cannot grow without bound under churn.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	defaults grading.Boundaries
	ttl      time.Duration
}

func NewRegistry(defaults grading.Boundaries) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		defaults: defaults,
		ttl:      DefaultTTL,
	}
}

// SetTTL overrides the idle timeout. Non-positive values expire
// everything immediately.
func (r *Registry) SetTTL(d time.Duration) {
	r.mu.Lock()
	r.ttl = d
	r.mu.Unlock()
}

// Create opens a session with the default boundaries and no dataset.
func (r *Registry) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:       uuid.NewString(),
		Created:  now,
		state:    State{Boundaries: r.defaults},
		lastUsed: now,
	}
	r.mu.Lock()
	for id, old := range r.sessions {
		if now.Sub(old.idleSince()) > r.ttl {
			delete(r.sessions, id)
		}
	}
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	ttl := r.ttl
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(s.idleSince()) > ttl {
		r.Delete(id)
		return nil, false
	}
	s.touch()
	return s, true
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
