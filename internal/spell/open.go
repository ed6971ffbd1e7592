package spell

import (
	"fmt"

	"github.com/ppiankov/commentspell/internal/cache"
	"github.com/ppiankov/commentspell/internal/model"
)

// Open builds the dictionary described by cfg: the configured word lists,
// wrapped in a Cached decorator unless caching is disabled.
func Open(cfg *model.Config) (Dictionary, error) {
	list, err := LoadWordList(cfg.Dictionary.Locale, cfg.Dictionary.WordLists,
		WithMaxSuggestions(cfg.Dictionary.MaxSuggestions),
		WithMaxDistance(cfg.Dictionary.MaxDistance))
	if err != nil {
		return nil, err
	}

	if !cfg.Cache.Enabled {
		return list, nil
	}

	var store cache.Cache
	if cfg.Cache.Dir != "" {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	} else {
		store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
	}

	cached, err := NewCached(list, cfg.Dictionary.Locale, cfg.Cache.CheckSize, store)
	if err != nil {
		return nil, fmt.Errorf("wrap dictionary: %w", err)
	}

	return cached, nil
}
