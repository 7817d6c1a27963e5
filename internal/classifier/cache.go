package classifier

import (
	"encoding/binary"
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoizes predictions of an immutable Classifier by exact row bits.
type Cached struct {
	next    Classifier
	cache   *lru.Cache[string, int]
	observe func(hit bool)
}

// CacheOption configures Cached.
type CacheOption func(*Cached)

// WithCacheObserver installs a callback invoked once per row lookup.
func WithCacheObserver(fn func(hit bool)) CacheOption {
	return func(c *Cached) { c.observe = fn }
}

// NewCached wraps next with an LRU of the given size. A size <= 0 returns next unchanged.
func NewCached(next Classifier, size int, opts ...CacheOption) (Classifier, error) {
	if size <= 0 {
		return next, nil
	}
	cache, err := lru.New[string, int](size)
	if err != nil {
		return nil, fmt.Errorf("prediction cache: %w", err)
	}
	c := &Cached{next: next, cache: cache}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func rowKey(row []float64) string {
	b := make([]byte, 8*len(row))
	for i, v := range row {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return string(b)
}

// Predict serves cached rows and forwards the remaining ones in a single batch.
func (c *Cached) Predict(batch [][]float64) ([]int, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}
	out := make([]int, len(batch))
	keys := make([]string, len(batch))
	var missRows [][]float64
	var missIdx []int
	for i, row := range batch {
		keys[i] = rowKey(row)
		label, ok := c.cache.Get(keys[i])
		if c.observe != nil {
			c.observe(ok)
		}
		if ok {
			out[i] = label
			continue
		}
		missRows = append(missRows, row)
		missIdx = append(missIdx, i)
	}
	if len(missRows) == 0 {
		return out, nil
	}
	labels, err := c.next.Predict(missRows)
	if err != nil {
		return nil, err
	}
	if len(labels) != len(missRows) {
		return nil, fmt.Errorf("classifier returned %d labels for %d rows", len(labels), len(missRows))
	}
	for j, i := range missIdx {
		out[i] = labels[j]
		c.cache.Add(keys[i], labels[j])
	}
	return out, nil
}

// Len reports the number of cached rows.
func (c *Cached) Len() int { return c.cache.Len() }
