package realtime

import (
	"context"
	"sync"
	"time"
)

// Session holds state and a broadcaster for one live session.
type Session[T any] struct {
	ID         string
	State      T
	hub        *Broadcaster
	lastAccess time.Time
}

// SessionStore manages sessions, their broadcasters, and their tick loops.
type SessionStore[T any] struct {
	mu       sync.RWMutex
	sessions map[string]*Session[T]
	loops    map[string]context.CancelFunc
}

// NewSessionStore creates an empty session store.
func NewSessionStore[T any]() *SessionStore[T] {
	return &SessionStore[T]{
		sessions: make(map[string]*Session[T]),
		loops:    make(map[string]context.CancelFunc),
	}
}

// Create adds a session with the given id and state, and a new Broadcaster.
func (s *SessionStore[T]) Create(id string, state T) *Session[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &Session[T]{ID: id, State: state, hub: NewBroadcaster(), lastAccess: time.Now()}
	s.sessions[id] = sess
	return sess
}

// Get returns the session by ID if it exists and marks it as accessed.
func (s *SessionStore[T]) Get(id string) (*Session[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastAccess = time.Now()
	}
	return sess, ok
}

// Touch marks the session as accessed without returning it. Callers that
// hold state from an earlier Get (long-lived stream handlers) use it to keep
// the session out of Sweep's reach while input keeps arriving.
func (s *SessionStore[T]) Touch(id string) {
	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		sess.lastAccess = time.Now()
	}
	s.mu.Unlock()
}

// Peek returns the session by ID without marking it as accessed. Tick loops
// use it so that only outside callers keep a session alive for Sweep.
func (s *SessionStore[T]) Peek(id string) (*Session[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session, stops its loop if one is running, and closes
// its broadcaster so stream writers unblock.
func (s *SessionStore[T]) Delete(id string) {
	s.mu.Lock()
	sess, existed := s.sessions[id]
	delete(s.sessions, id)
	cancel, ok := s.loops[id]
	delete(s.loops, id)
	s.mu.Unlock()
	if ok {
		cancel()
	}
	if existed {
		sess.hub.Close()
	}
}

// Broadcaster returns the broadcaster for the session, or nil if the
// session does not exist.
func (s *SessionStore[T]) Broadcaster(id string) *Broadcaster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	return sess.hub
}

// Publish notifies subscribers of the session's broadcaster, if any.
func (s *SessionStore[T]) Publish(id string, event string) {
	hub := s.Broadcaster(id)
	if hub != nil {
		hub.Publish(event)
	}
}

// TickFunc is called once per loop tick with the session state. It returns
// event names to publish and stop=true to end the loop.
type TickFunc[T any] func(state T) (events []string, stop bool)

// RunLoop starts a fixed-rate tick loop for the session. One logical tick
// fires per interval; events returned by tick are published immediately so
// stream subscribers see state changes as they happen. If a loop already
// exists for id, it is not started again.
func (s *SessionStore[T]) RunLoop(id string, interval time.Duration, getState func() (T, bool), tick TickFunc[T]) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	s.mu.Lock()
	if _, ok := s.loops[id]; ok {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.loops[id] = cancel
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			if c, ok := s.loops[id]; ok {
				delete(s.loops, id)
				defer c()
			}
			s.mu.Unlock()
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				state, ok := getState()
				if !ok {
					return
				}
				events, stop := tick(state)
				for _, e := range events {
					s.Publish(id, e)
				}
				if stop {
					return
				}
			}
		}
	}()
}

// LoopRunning reports whether a tick loop is active for the session.
func (s *SessionStore[T]) LoopRunning(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.loops[id]
	return ok
}

// Sweep removes sessions that have not been accessed within maxIdle and
// returns the removed IDs. Their loops are stopped.
func (s *SessionStore[T]) Sweep(maxIdle time.Duration) []string {
	cutoff := time.Now().Add(-maxIdle)
	s.mu.Lock()
	var stale []string
	for id, sess := range s.sessions {
		if sess.lastAccess.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	s.mu.Unlock()
	for _, id := range stale {
		s.Delete(id)
	}
	return stale
}
