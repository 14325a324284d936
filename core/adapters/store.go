// core/adapters/store.go
package adapters

import "sync"

// Store is an ordered collection of bars that may be appended to and read
// from several goroutines at once. The zero value is ready to use.
type Store struct {
	mu   sync.RWMutex
	bars []Bar
}

// NewStore returns a store seeded with a copy of bars.
func NewStore(bars ...Bar) *Store {
	s := &Store{}
	s.Set(bars)
	return s
}

func (s *Store) Append(bars ...Bar) {
	if len(bars) == 0 {
		return
	}
	s.mu.Lock()
	s.bars = append(s.bars, bars...)
	s.mu.Unlock()
}

// All returns a snapshot; later appends are not visible through it.
func (s *Store) All() []Bar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Bar(nil), s.bars...)
}

// Set replaces the contents wholesale.
func (s *Store) Set(bars []Bar) {
	cp := append([]Bar(nil), bars...)
	s.mu.Lock()
	s.bars = cp
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bars)
}
