package spell

import (
	"strings"
	"sync"
)

// Seen is the set of word forms already reported in a run. It is owned by
// the caller and passed to every Reporter that should share it.
type Seen struct {
	mu    sync.Mutex
	words map[string]struct{}
}

// NewSeen creates an empty set
func NewSeen() *Seen {
	return &Seen{words: make(map[string]struct{})}
}

// Mark records the lowercase form of word and reports whether it was new
func (s *Seen) Mark(word string) bool {
	key := strings.ToLower(word)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[key]; ok {
		return false
	}
	s.words[key] = struct{}{}
	return true
}

// Len returns the number of distinct forms recorded
func (s *Seen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}
