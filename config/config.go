package config

import (
	"errors"
	"sync"
)

// DefaultTabStop is the tab stop width used when none is configured.
const DefaultTabStop = 8

// ErrBadTabStop indicates a tab stop value below 1.
var ErrBadTabStop = errors.New("tabstop must be at least 1")

// Store is the read-only option source the selectors consume. It is safe
// for concurrent reads while a watcher reloads it.
type Store struct {
	mu             sync.RWMutex
	tabStop        int
	extraWordChars []rune
}

// NewStore creates a store with default option values.
func NewStore() *Store {
	return &Store{tabStop: DefaultTabStop}
}

// TabStop returns the configured tab stop width.
func (s *Store) TabStop() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tabStop
}

// ExtraWordChars returns the configured extra word characters.
func (s *Store) ExtraWordChars() []rune {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]rune, len(s.extraWordChars))
	copy(out, s.extraWordChars)
	return out
}

// SetTabStop sets the tab stop width.
func (s *Store) SetTabStop(n int) error {
	if n < 1 {
		return ErrBadTabStop
	}
	s.mu.Lock()
	s.tabStop = n
	s.mu.Unlock()
	return nil
}

// SetExtraWordChars sets the extra word character set.
func (s *Store) SetExtraWordChars(chars string) {
	s.mu.Lock()
	s.extraWordChars = []rune(chars)
	s.mu.Unlock()
}
