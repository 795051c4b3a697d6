// pkg/memcache/upload_sessions.go
package mem

import (
	"sync"
	"time"
)

// PhotoPart is one uploaded photo accumulated in a chunked-upload
// session. Data keeps the compressed bytes so finalize can attach a
// subset without re-downloading from storage.
type PhotoPart struct {
	URL      string
	Filename string
	Data     []byte
	TakenAt  time.Time
}

type SessionState struct {
	Before    []PhotoPart
	After     []PhotoPart
	CreatedAt time.Time
}

// SessionStore keys accumulated upload state by a client-supplied
// session id. Sessions live in process memory only: a multi-instance
// deployment needs an external store behind this interface.
type SessionStore interface {
	// Append adds parts to the named group, creating the session on
	// first use.
	Append(sessionID string, group string, parts []PhotoPart) SessionState

	// Get returns a snapshot of the session, reporting whether it exists.
	Get(sessionID string) (SessionState, bool)

	Delete(sessionID string)

	// Sweep drops sessions older than maxAge and reports how many were
	// removed.
	Sweep(maxAge time.Duration) int
}

type UploadSessions struct {
	mu   sync.RWMutex
	data map[string]*SessionState
}

func NewUploadSessions() *UploadSessions {
	return &UploadSessions{
		data: make(map[string]*SessionState),
	}
}

func (s *UploadSessions) Append(sessionID string, group string, parts []PhotoPart) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.data[sessionID]
	if !ok {
		state = &SessionState{CreatedAt: time.Now()}
		s.data[sessionID] = state
	}
	if group == "after" {
		state.After = append(state.After, parts...)
	} else {
		state.Before = append(state.Before, parts...)
	}
	return snapshot(state)
}

func (s *UploadSessions) Get(sessionID string) (SessionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[sessionID]
	if !ok {
		return SessionState{}, false
	}
	return snapshot(state), true
}

func (s *UploadSessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

func (s *UploadSessions) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, state := range s.data {
		if state.CreatedAt.Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// snapshot copies the slices so callers never share backing arrays
// with concurrent appends.
func snapshot(state *SessionState) SessionState {
	out := SessionState{CreatedAt: state.CreatedAt}
	out.Before = append(out.Before, state.Before...)
	out.After = append(out.After, state.After...)
	return out
}
