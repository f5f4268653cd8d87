// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import "errors"

var (
	// ErrKeyNotFound is returned by Retrieve for a call that is not in the
	// cache. Check ContainsCurrent before retrieving, or handle it.
	ErrKeyNotFound = errors.New("call not found in cache")

	// ErrCorruptCache is returned when a backing file exists, is non-empty,
	// and cannot be parsed. See OnCorrupt for the recovery policy.
	ErrCorruptCache = errors.New("cache file is corrupt")

	// ErrSerialization is returned at flush time when a stored value cannot
	// be represented as JSON. A Store that appeared to succeed can still
	// fail this way when the session closes.
	ErrSerialization = errors.New("cached value is not serializable")
)
