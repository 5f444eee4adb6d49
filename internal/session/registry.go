// Package session provides the process-wide registry of live prospects.
//
// The registry is a keyed map with no cross-session shared state: different
// sessions may be processed concurrently, while access to a single session's
// prospect is serialized through a per-entry lock. Eviction is time-based and
// safe to run alongside live turn processing.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// DefaultTTL is the inactivity window after which a session is evictable.
const DefaultTTL = 24 * time.Hour

// entry pairs a prospect with its single-writer lock.
type entry struct {
	mu       sync.Mutex
	prospect *model.Prospect
}

// Registry maps session ids to live prospect records.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	clock   common.Clock
}

// NewRegistry creates a registry. A nil clock defaults to the wall clock.
func NewRegistry(clock common.Clock) *Registry {
	if clock == nil {
		clock = common.RealClock{}
	}
	return &Registry{
		entries: make(map[string]*entry),
		clock:   clock,
	}
}

// NewSessionID mints a sortable session identifier.
func NewSessionID() string {
	return ulid.Make().String()
}

// GetOrCreate returns the prospect for the session, creating a fresh one in
// the awareness stage if none exists. Idempotent.
func (r *Registry) GetOrCreate(sessionID string) *model.Prospect {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{prospect: model.NewProspect(sessionID, r.clock.Now())}
		r.entries[sessionID] = e
		slog.Debug("session created", "session_id", sessionID)
	}
	return e.prospect
}

// Get returns the prospect for the session, or ErrSessionNotFound.
func (r *Registry) Get(sessionID string) (*model.Prospect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return nil, common.ErrSessionNotFound
	}
	return e.prospect, nil
}

// Do runs fn with exclusive access to the session's prospect, creating the
// session if needed. The per-entry lock enforces single-writer-per-key; the
// registry lock is not held while fn runs, so sessions proceed in parallel.
func (r *Registry) Do(sessionID string, fn func(*model.Prospect) error) error {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{prospect: model.NewProspect(sessionID, r.clock.Now())}
		r.entries[sessionID] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.prospect.Engagement.LastActivity = r.clock.Now()
	return fn(e.prospect)
}

// List returns the ids of all live sessions.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// EvictStale removes sessions whose last activity is older than ttl and
// returns how many were evicted. The cutoff is re-checked under the entry
// lock at deletion time, so a session that becomes active mid-scan survives.
func (r *Registry) EvictStale(ttl time.Duration) int {
	cutoff := r.clock.Now().Add(-ttl)

	// LastActivity is written by Do under the entry lock, so the scan takes
	// the same lock per entry. Lock order is registry then entry, matching
	// the delete phase below.
	r.mu.RLock()
	candidates := make([]string, 0)
	for id, e := range r.entries {
		e.mu.Lock()
		stale := e.prospect.Engagement.LastActivity.Before(cutoff)
		e.mu.Unlock()
		if stale {
			candidates = append(candidates, id)
		}
	}
	r.mu.RUnlock()

	evicted := 0
	for _, id := range candidates {
		r.mu.Lock()
		e, ok := r.entries[id]
		if !ok {
			r.mu.Unlock()
			continue
		}
		e.mu.Lock()
		stillStale := e.prospect.Engagement.LastActivity.Before(cutoff)
		if stillStale {
			delete(r.entries, id)
		}
		e.mu.Unlock()
		r.mu.Unlock()
		if stillStale {
			evicted++
		}
	}

	if evicted > 0 {
		slog.Info("evicted stale sessions", "count", evicted, "ttl", ttl)
	}
	return evicted
}
