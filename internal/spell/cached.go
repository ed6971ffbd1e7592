package spell

import (
	"encoding/json"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ppiankov/commentspell/internal/cache"
)

// Cached wraps a Dictionary, memoising Check results in an LRU and storing
// Suggest results in a cache.Cache so they can outlive the process.
type Cached struct {
	dict        Dictionary
	locale      string
	checks      *lru.Cache[string, bool]
	suggestions cache.Cache
}

// NewCached decorates dict. checkSize bounds the number of memoised Check
// results; store holds suggestion lists keyed by locale and word.
func NewCached(dict Dictionary, locale string, checkSize int, store cache.Cache) (*Cached, error) {
	if checkSize <= 0 {
		checkSize = 4096
	}

	checks, err := lru.New[string, bool](checkSize)
	if err != nil {
		return nil, fmt.Errorf("create check cache: %w", err)
	}

	return &Cached{
		dict:        dict,
		locale:      locale,
		checks:      checks,
		suggestions: store,
	}, nil
}

// Check implements Dictionary
func (c *Cached) Check(word string) bool {
	if ok, found := c.checks.Get(word); found {
		return ok
	}

	ok := c.dict.Check(word)
	c.checks.Add(word, ok)
	return ok
}

// Suggest implements Dictionary
func (c *Cached) Suggest(word string) []string {
	key := cache.Key(c.locale, word)

	if data, found := c.suggestions.Get(key); found {
		var suggestions []string
		if err := json.Unmarshal(data, &suggestions); err == nil {
			return suggestions
		}
		slog.Debug("dropping unreadable cached suggestions", slog.String("word", word))
		_ = c.suggestions.Delete(key)
	}

	suggestions := c.dict.Suggest(word)

	data, err := json.Marshal(suggestions)
	if err == nil {
		err = c.suggestions.Set(key, data, 0)
	}
	if err != nil {
		slog.Warn("failed to cache suggestions", slog.String("word", word), slog.String("error", err.Error()))
	}

	return suggestions
}
