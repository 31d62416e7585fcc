package advice

import (
	"context"
	"encoding/json"
	"fmt"

	"fitcoach/internal/coachservice"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache memoises engine results. Generation is a pure function of the
// input and the date, so a hit is always byte-identical to a fresh run.
// Identical requests that arrive together share one generation.
type Cache struct {
	engine  *coachservice.Engine
	entries *lru.Cache[string, coachservice.Result] // nil when disabled
	group   singleflight.Group
}

// NewCache wraps engine with an LRU of the given size. A size <= 0 disables
// memoisation but keeps in-flight coalescing.
func NewCache(engine *coachservice.Engine, size int) (*Cache, error) {
	c := &Cache{engine: engine}
	if size <= 0 {
		return c, nil
	}

	entries, err := lru.New[string, coachservice.Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create advice cache: %w", err)
	}
	c.entries = entries
	return c, nil
}

// Len reports how many results are cached.
func (c *Cache) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

// Generate returns the advice for in, from the cache when possible.
// The returned Result is shared; callers must not modify its slices.
func (c *Cache) Generate(ctx context.Context, in coachservice.Input) (coachservice.Result, bool, error) {
	date := c.engine.Date()
	key, err := cacheKey(in, date)
	if err != nil {
		return coachservice.Result{}, false, err
	}

	if c.entries != nil {
		if res, ok := c.entries.Get(key); ok {
			return res, true, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		res, err := c.engine.GenerateOn(ctx, in, date)
		if err != nil {
			return nil, err
		}
		if c.entries != nil {
			c.entries.Add(key, res)
		}
		return res, nil
	})
	if err != nil {
		return coachservice.Result{}, false, err
	}
	return v.(coachservice.Result), false, nil
}

func cacheKey(in coachservice.Input, date string) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("failed to build cache key: %w", err)
	}
	return date + "|" + string(b), nil
}
