package docbook

import (
	"sync"

	"github.com/google/uuid"

	"github.com/platinummonkey/spoke-docbook/pkg/sink"
)

// Session carries the state shared by the render passes of one run: the
// output sink and whether the template document has been written.
type Session struct {
	id   string
	sink sink.Sink

	mu           sync.Mutex
	templateMade bool
}

// NewSession creates a session writing to s
func NewSession(s sink.Sink) *Session {
	return &Session{
		id:   uuid.New().String(),
		sink: s,
	}
}

// ID returns the run identifier of the session
func (s *Session) ID() string {
	return s.id
}

// Sink returns the output sink of the session
func (s *Session) Sink() sink.Sink {
	return s.sink
}

// TemplateMade reports whether the template document has been claimed
func (s *Session) TemplateMade() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templateMade
}

// claimTemplate marks the template as made and reports whether the caller is
// the one that must write it. It returns true at most once per session.
func (s *Session) claimTemplate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.templateMade {
		return false
	}
	s.templateMade = true
	return true
}
