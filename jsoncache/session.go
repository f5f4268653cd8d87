// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import "errors"

// Open loads the backing file into memory, beginning a session. The caller
// has exclusive access to the store until Close.
func (c *Cache) Open() error {
	return c.load()
}

// Close ends a session. Expired entries are purged, the store is culled to
// its max size, and what remains is flushed to the backing file.
func (c *Cache) Close() error {
	c.PurgeExpired()
	c.CullToSize()
	return c.flush()
}

// With runs fn against the cache at path as a single session. The close
// sequence (purge, cull, flush) runs whether or not fn fails; a flush
// failure does not mask fn's error, both are reported together.
func With(path string, fn func(*Cache) error, opts ...Option) (err error) {
	c := New(path, opts...)
	if err := c.Open(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()
	return fn(c)
}
