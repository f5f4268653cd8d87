// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import (
	"fmt"
	"sort"
	"time"
)

// Cache is a persistent JSON-backed store of call results. Size and age
// limits are enforced when a session closes; the live store may exceed them
// while it is open.
//
// A Cache is not safe for concurrent use. At most one live session per
// backing file path is supported; a later flush silently overwrites an
// earlier one.
type Cache struct {
	path        string
	entries     map[string]Entry
	maxSize     int
	maxAge      time.Duration
	forceUpdate bool
	onCorrupt   CorruptPolicy
	dir         string

	// now is swapped out in tests to simulate the passage of time.
	now func() float64
}

// New creates a cache over the JSON file at path. The file is not touched
// until Open or With.
func New(path string, opts ...Option) *Cache {
	c := &Cache{
		path:    path,
		entries: map[string]Entry{},
		now:     timestamp,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store records response under call, overwriting any previous entry. It
// always succeeds; a value JSON cannot represent fails later, at flush.
func (c *Cache) Store(call string, response any) {
	c.entries[call] = Entry{Value: response, CreatedAt: c.now()}
}

// Retrieve returns the response cached under call.
func (c *Cache) Retrieve(call string) (any, error) {
	e, ok := c.entries[call]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, call)
	}
	return e.Value, nil
}

// ContainsCurrent reports whether call is cached and still current. An entry
// is current unless force-update is set or it is older than the max age.
func (c *Cache) ContainsCurrent(call string) bool {
	e, ok := c.entries[call]
	if !ok {
		return false
	}
	if c.forceUpdate {
		return false
	}
	if c.maxAge == 0 {
		return true
	}
	return c.now()-e.CreatedAt < c.maxAge.Seconds()
}

// Len returns the number of entries currently held in memory.
func (c *Cache) Len() int {
	return len(c.entries)
}

// PurgeExpired removes every entry older than the max age. A single time
// snapshot is used for the whole pass so entries are compared consistently.
func (c *Cache) PurgeExpired() {
	if c.maxAge == 0 {
		return
	}
	now := c.now()
	limit := c.maxAge.Seconds()
	for call, e := range c.entries {
		if now-e.CreatedAt > limit {
			delete(c.entries, call)
		}
	}
}

// CullToSize removes the oldest entries in one pass until the store is
// within the max size. Timestamp ties break on the call string, so the
// survivors are deterministic.
func (c *Cache) CullToSize() {
	if c.maxSize == 0 || len(c.entries) <= c.maxSize {
		return
	}
	calls := make([]string, 0, len(c.entries))
	for call := range c.entries {
		calls = append(calls, call)
	}
	sort.Slice(calls, func(i, j int) bool {
		a, b := c.entries[calls[i]], c.entries[calls[j]]
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		return calls[i] < calls[j]
	})
	for _, call := range calls[:len(calls)-c.maxSize] {
		delete(c.entries, call)
	}
}
