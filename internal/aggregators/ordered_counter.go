package aggregators

import (
	"math"
	"sort"

	"nginx-monitor/internal/models"
)

// orderedCounter is a frequency table that remembers first-seen order, so rankings are
// deterministic: equal counts keep the order in which their keys first appeared.
type orderedCounter[K comparable] struct {
	index  map[K]int
	keys   []K
	counts []int64
}

func newOrderedCounter[K comparable]() *orderedCounter[K] {
	return &orderedCounter[K]{index: make(map[K]int)}
}

// Add increases the count of key by n, saturating at math.MaxInt64. n must not be negative.
func (c *orderedCounter[K]) Add(key K, n int64) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.keys)
		c.index[key] = i
		c.keys = append(c.keys, key)
		c.counts = append(c.counts, 0)
	}
	c.counts[i] = saturatingAdd(c.counts[i], n)
}

// saturatingAdd returns a+b for non-negative operands, clamped to math.MaxInt64.
func saturatingAdd(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

// Inc increases the count of key by one.
func (c *orderedCounter[K]) Inc(key K) {
	c.Add(key, 1)
}

// Get returns the count of key, or 0.
func (c *orderedCounter[K]) Get(key K) int64 {
	if i, ok := c.index[key]; ok {
		return c.counts[i]
	}
	return 0
}

// Len returns the number of distinct keys.
func (c *orderedCounter[K]) Len() int {
	return len(c.keys)
}

// Each visits keys in first-seen order.
func (c *orderedCounter[K]) Each(fn func(key K, count int64)) {
	for i, key := range c.keys {
		fn(key, c.counts[i])
	}
}

// TopK returns up to k entries by descending count, ties in first-seen order.
func (c *orderedCounter[K]) TopK(k int) []models.RankedEntry[K] {
	order := c.rankedIndexes(k)
	entries := make([]models.RankedEntry[K], len(order))
	for i, idx := range order {
		entries[i] = models.RankedEntry[K]{Key: c.keys[idx], Count: c.counts[idx]}
	}
	return entries
}

// rankedIndexes returns the slot indexes of the k highest counts.
func (c *orderedCounter[K]) rankedIndexes(k int) []int {
	if k <= 0 {
		return []int{}
	}
	order := make([]int, len(c.keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.counts[order[a]] > c.counts[order[b]]
	})
	if len(order) > k {
		order = order[:k]
	}
	return order
}
