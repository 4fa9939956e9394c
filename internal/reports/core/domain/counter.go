package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// KeyCount is one entry of a frequency table.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counter is a frequency counter that remembers first-seen key order, so
// top-N views break count ties deterministically for a fixed input order.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// Keys returns the distinct keys in first-seen order.
func (c *Counter) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Entries returns all key/count pairs in first-seen order.
func (c *Counter) Entries() []KeyCount {
	out := make([]KeyCount, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, KeyCount{Key: k, Count: c.counts[k]})
	}
	return out
}

// Top returns up to n entries by descending count. The sort is stable, so
// equal counts keep first-seen order. n < 0 returns all entries.
func (c *Counter) Top(n int) []KeyCount {
	all := c.Entries()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Count > all[j].Count
	})
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// MarshalJSON writes the counter as an object in first-seen key order.
func (c *Counter) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(c.counts[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
