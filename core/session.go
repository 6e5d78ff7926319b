package core

import (
	"fmt"

	"pkt.systems/coinflip/schema"
)

// Allocator obtains storage for count flips.
type Allocator func(count int) ([]schema.Outcome, error)

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithAllocator replaces the flip buffer allocator.
func WithAllocator(alloc Allocator) SessionOption {
	return func(s *Session) {
		if alloc != nil {
			s.alloc = alloc
		}
	}
}

// Session owns the flip buffer of one menu session. It is not safe for
// concurrent use; each transport connection gets its own Session.
type Session struct {
	id     schema.SessionID
	source Source
	alloc  Allocator
	flips  []schema.Outcome
}

// NewSession returns an empty session drawing outcomes from source.
func NewSession(source Source, opts ...SessionOption) *Session {
	if source == nil {
		source = NewTimeSeededCoin()
	}
	s := &Session{
		id:     newSessionID(),
		source: source,
		alloc:  makeFlips,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() schema.SessionID {
	return s.id
}

// Generate replaces the flip buffer with count fresh outcomes. When storage
// cannot be obtained the error wraps schema.ErrAllocation and the session is
// left without flips.
func (s *Session) Generate(count int) error {
	if err := schema.ValidateFlipCount(count); err != nil {
		return err
	}
	s.Release()
	flips, err := s.alloc(count)
	if err != nil {
		return fmt.Errorf("%w: %d flips: %w", schema.ErrAllocation, count, err)
	}
	if len(flips) != count {
		return fmt.Errorf("%w: %d flips: got %d slots", schema.ErrAllocation, count, len(flips))
	}
	for i := range flips {
		flips[i] = s.source.Next()
	}
	s.flips = flips
	return nil
}

// Len returns the number of stored flips.
func (s *Session) Len() int {
	return len(s.flips)
}

// Empty reports whether no flips have been generated.
func (s *Session) Empty() bool {
	return len(s.flips) == 0
}

// Flips returns the stored flips. The slice must not be modified.
func (s *Session) Flips() []schema.Outcome {
	return s.flips
}

// Analyze computes the report for the stored flips.
func (s *Session) Analyze() (schema.Report, bool) {
	return Analyze(s.flips)
}

// Release drops the flip buffer.
func (s *Session) Release() {
	s.flips = nil
}

// makeFlips is the default Allocator. A runtime allocation panic is
// reported as an error.
func makeFlips(count int) (flips []schema.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			flips = nil
			err = fmt.Errorf("make: %v", r)
		}
	}()
	return make([]schema.Outcome, count), nil
}
