// Package opponent implements the pluggable random-move opponent and
// the mutex-guarded single-cell mailbox the surrounding application
// uses to collect its answer asynchronously.
package opponent

import (
	"sync"

	"github.com/lawbel/zig-shogi-sub000/internal/shogi"
)

// Slot is a single mutex-guarded optional cell: exactly one writer
// (the opponent worker) and one reader (the main thread), with the
// reader tolerating "no message yet". A generalized channel is
// deliberately not used here — there is nothing to buffer or multiplex,
// only a single outstanding answer at a time.
type Slot struct {
	mu      sync.Mutex
	pending *shogi.Move
}

// Set publishes m, replacing whatever was previously pending.
func (s *Slot) Set(m shogi.Move) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mv := m
	s.pending = &mv
}

// Get returns the pending move without consuming it.
func (s *Slot) Get() (shogi.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return shogi.Move{}, false
	}
	return *s.pending, true
}

// Take returns the pending move and resets the cell to empty.
func (s *Slot) Take() (shogi.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return shogi.Move{}, false
	}
	m := *s.pending
	s.pending = nil
	return m, true
}
