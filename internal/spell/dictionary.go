package spell

import "errors"

// ErrNoDictionary indicates no word list could be loaded
var ErrNoDictionary = errors.New("no dictionary available")

// Dictionary is the spelling capability. Implementations are built once for
// a fixed locale and must be safe for concurrent use.
type Dictionary interface {
	// Check reports whether word is a recognized word
	Check(word string) bool

	// Suggest returns replacement candidates, best first
	Suggest(word string) []string
}
