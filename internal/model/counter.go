package model

import "sort"

// MessageCount is one entry of a frequency ranking.
type MessageCount struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// MessageCounter counts occurrences of message keys while remembering the
// order in which each key was first inserted. Ranking ties are broken by
// that first-seen order, not lexically.
type MessageCounter struct {
	counts map[string]int64
	order  []string
}

// NewMessageCounter returns an empty counter.
func NewMessageCounter() *MessageCounter {
	return &MessageCounter{counts: make(map[string]int64)}
}

// Add increments the count for key by one.
func (c *MessageCounter) Add(key string) {
	c.AddN(key, 1)
}

// AddN increments the count for key by n, registering the key on first use.
func (c *MessageCounter) AddN(key string, n int64) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// Len returns the number of distinct keys seen.
func (c *MessageCounter) Len() int {
	return len(c.order)
}

// All returns every (key, count) pair in first-seen order.
func (c *MessageCounter) All() []MessageCount {
	out := make([]MessageCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, MessageCount{Message: key, Count: c.counts[key]})
	}
	return out
}

// Top returns the n highest-count entries, count descending. The stable
// sort over first-seen order gives ties the insertion-order semantics.
func (c *MessageCounter) Top(n int) []MessageCount {
	all := c.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Count > all[j].Count
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}
