// Package catalog holds the immutable, ordered set of supplications loaded at
// startup and answers the read-only questions the browser asks of it.
package catalog

import (
	"strings"

	"tableflip.dev/xisnul/pkg/dua"
)

// Catalog is an ordered, read-only sequence of entries.
type Catalog struct {
	entries []*dua.Entry
	byID    map[int]*dua.Entry
}

// New builds a Catalog over a copy of entries. Order is preserved. When ids
// repeat, the first occurrence wins for lookups.
func New(entries []*dua.Entry) *Catalog {
	c := &Catalog{
		entries: make([]*dua.Entry, 0, len(entries)),
		byID:    make(map[int]*dua.Entry, len(entries)),
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		c.entries = append(c.entries, e)
		if _, ok := c.byID[e.ID]; !ok {
			c.byID[e.ID] = e
		}
	}
	return c
}

// All returns every entry in catalog order. The slice is a copy.
func (c *Catalog) All() []*dua.Entry {
	out := make([]*dua.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id int) (*dua.Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Filter returns the entries whose title, Somali text or Arabic text contains
// query, ignoring case. Internal whitespace is significant and the query is
// not trimmed. A query that is empty or only whitespace yields the full
// catalog.
func (c *Catalog) Filter(query string) []*dua.Entry {
	if strings.TrimSpace(query) == "" {
		return c.All()
	}
	lower := strings.ToLower(query)
	out := make([]*dua.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Matches(lower) {
			out = append(out, e)
		}
	}
	return out
}

// Neighbor looks up the entry whose id is id+delta. Navigation follows id
// order across the whole catalog, not any filtered view.
func (c *Catalog) Neighbor(id, delta int) (*dua.Entry, bool) {
	if delta == 0 {
		return nil, false
	}
	return c.Get(id + delta)
}
