// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import "time"

// CorruptPolicy controls what a session does when the backing file exists,
// is non-empty, and cannot be parsed.
type CorruptPolicy int

const (
	// CorruptFail propagates ErrCorruptCache to the caller.
	CorruptFail CorruptPolicy = iota
	// CorruptReset logs a warning, discards the unreadable contents, and
	// starts from an empty store. The bad file is overwritten at flush.
	CorruptReset
)

// Option configures a Cache or a Cached wrapper.
type Option func(*Cache)

// MaxSize bounds the number of entries kept once a session closes. The live
// store may exceed the bound between open and close. 0 disables size
// checking.
func MaxSize(n int) Option {
	return func(c *Cache) { c.maxSize = n }
}

// MaxAge is the age after which a cached value must be replaced. 0 disables
// age checking.
func MaxAge(d time.Duration) Option {
	return func(c *Cache) { c.maxAge = d }
}

// ForceUpdate makes fresh calls regardless of cached status. Stale entries
// are overwritten before the session flushes, so they never persist.
func ForceUpdate() Option {
	return func(c *Cache) { c.forceUpdate = true }
}

// OnCorrupt selects the recovery policy for unreadable backing files.
// The default is CorruptFail.
func OnCorrupt(p CorruptPolicy) Option {
	return func(c *Cache) { c.onCorrupt = p }
}

// CacheDir overrides the directory Cached derives per-function cache files
// in. It has no effect on a Cache built directly with New, which already
// names its backing file.
func CacheDir(dir string) Option {
	return func(c *Cache) { c.dir = dir }
}
