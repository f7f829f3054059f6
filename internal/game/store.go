package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"wordarena/pkg/realtime"
)

// DefaultTickRate is the logical frame rate of a session.
const DefaultTickRate = 60

// Store owns the live machines, one per browser session, and drives each on
// a fixed-rate tick loop that publishes render events to stream subscribers.
type Store struct {
	r    *realtime.SessionStore[*Machine]
	bank *WordBank
	tick time.Duration
}

// NewStore creates an in-memory store ticking machines at tickRate frames
// per second.
func NewStore(bank *WordBank, tickRate int) *Store {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Store{
		r:    realtime.NewSessionStore[*Machine](),
		bank: bank,
		tick: time.Second / time.Duration(tickRate),
	}
}

// CreateSession builds a machine on the menu screen, registers it under a
// fresh ID, and starts its tick loop.
func (s *Store) CreateSession() (string, *Machine) {
	id := uuid.NewString()
	m := NewMachine(s.bank)
	s.r.Create(id, m)
	s.ensureLoop(id)
	log.Info().Str("session", id).Msg("session created")
	return id, m
}

// Get returns a machine by session ID if it exists.
func (s *Store) Get(id string) (*Machine, bool) {
	sess, ok := s.r.Get(id)
	if !ok {
		return nil, false
	}
	return sess.State, true
}

// Broadcaster returns the event broadcaster for a session, or nil.
func (s *Store) Broadcaster(id string) *realtime.Broadcaster {
	return s.r.Broadcaster(id)
}

// Publish notifies a session's subscribers of the given topics.
func (s *Store) Publish(id string, topics ...string) {
	for _, topic := range topics {
		s.r.Publish(id, topic)
	}
}

// Touch marks a session as active so the idle sweeper leaves it alone.
func (s *Store) Touch(id string) {
	s.r.Touch(id)
}

// Delete removes a session and stops its loop.
func (s *Store) Delete(id string) {
	s.r.Delete(id)
}

// SweepIdle removes sessions idle for longer than maxIdle and returns the
// removed IDs.
func (s *Store) SweepIdle(maxIdle time.Duration) []string {
	return s.r.Sweep(maxIdle)
}

// ensureLoop starts the fixed-rate tick loop for a session if not running.
// The loop ends, and the session is removed, when the machine reports done.
func (s *Store) ensureLoop(id string) {
	getState := func() (*Machine, bool) {
		sess, ok := s.r.Peek(id)
		if !ok {
			return nil, false
		}
		return sess.State, true
	}
	s.r.RunLoop(id, s.tick, getState, func(m *Machine) ([]string, bool) {
		topics, done := m.Tick()
		if done {
			log.Info().Str("session", id).Msg("session ended")
			s.r.Publish(id, TopicEnded)
			s.r.Delete(id)
			return nil, true
		}
		return topics, false
	})
}

// StartSweeper removes idle sessions periodically until ctx is cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.SweepIdle(maxIdle); len(removed) > 0 {
					log.Info().Int("count", len(removed)).Msg("swept idle sessions")
				}
			}
		}
	}()
}
