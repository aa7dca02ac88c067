// Package sessions tracks connected players (e.g., SSH connections).
package sessions

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrFull is returned by Add when the registry is at capacity.
var ErrFull = errors.New("sessions: server is full")

// ID uniquely identifies a player's session.
// Results saved during the session carry it.
type ID string

// NewID returns a fresh session id prefixed with the user name.
func NewID(user string) ID {
	if user == "" {
		user = "anon"
	}
	return ID(fmt.Sprintf("%s-%s", user, uuid.NewString()))
}

// Info describes one connected session.
type Info struct {
	ID      ID
	User    string
	Remote  string
	Started time.Time
}

// Registry tracks active sessions.
// Thread-safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	limit    int // 0 means unlimited
	sessions map[ID]Info
}

// NewRegistry creates a registry holding at most limit sessions.
func NewRegistry(limit int) *Registry {
	return &Registry{
		limit:    max(limit, 0),
		sessions: make(map[ID]Info),
	}
}

// Add registers a session. It fails with ErrFull when the limit is reached.
func (r *Registry) Add(info Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[info.ID]; !exists && r.limit > 0 && len(r.sessions) >= r.limit {
		return fmt.Errorf("%w (%d sessions)", ErrFull, r.limit)
	}
	r.sessions[info.ID] = info
	return nil
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns all sessions, oldest first.
func (r *Registry) List() []Info {
	r.mu.RLock()
	list := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Started.Before(list[j].Started)
	})
	return list
}
