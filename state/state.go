package state

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"
	"time"

	"showcase/gallery"
)

// AppState tracks live gallery view sessions. A session is created when a
// browser mounts the gallery page and dropped on teardown or after sitting
// idle past the configured age.
type AppState struct {
	Sessions map[string]*gallery.View
	sync.RWMutex
}

// Global is the shared application state instance
var Global = NewAppState()

// NewAppState builds an empty session registry.
func NewAppState() *AppState {
	return &AppState{
		Sessions: make(map[string]*gallery.View),
	}
}

// CreateSession mounts a new gallery view and returns its session ID.
func (s *AppState) CreateSession() (string, *gallery.View) {
	id := newSessionID()
	view := gallery.NewView()

	s.Lock()
	defer s.Unlock()
	s.Sessions[id] = view
	return id, view
}

// GetSession safely fetches a session
func (s *AppState) GetSession(id string) (*gallery.View, bool) {
	s.RLock()
	defer s.RUnlock()
	view, exists := s.Sessions[id]
	return view, exists
}

// RemoveSession tears a session down; it reports whether the session existed.
func (s *AppState) RemoveSession(id string) bool {
	s.Lock()
	defer s.Unlock()
	_, exists := s.Sessions[id]
	if exists {
		delete(s.Sessions, id)
	}
	return exists
}

// SessionCount returns the number of live sessions.
func (s *AppState) SessionCount() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.Sessions)
}

// SweepIdle drops sessions whose last interaction is older than maxAge and
// returns how many were removed.
func (s *AppState) SweepIdle(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.Lock()
	defer s.Unlock()

	removed := 0
	for id, view := range s.Sessions {
		if view.LastActive().Before(cutoff) {
			delete(s.Sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanup runs the idle sweeper until the returned stop function is called.
func (s *AppState) StartCleanup(interval, maxAge time.Duration) (stop func()) {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := s.SweepIdle(maxAge); removed > 0 {
					log.Printf("Swept %d idle gallery session(s)", removed)
				}
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for ID generation
		panic(err)
	}
	return hex.EncodeToString(buf)
}
