// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

const appName = "weatherpls"

// Func is the shape of a call that Cached can memoize.
type Func[V any] func(args ...any) (V, error)

// Cached wraps fn with a persistent JSON cache, one file per wrapped
// function. name identifies the cache file; pass the function's name. The
// cache directory resolves from the CacheDir option, then the
// WEATHERPLS_CACHE_DIR environment variable, then the user cache dir.
//
// V must round-trip through JSON: a value cached by a prior run is
// re-decoded on retrieval, so unexported fields and non-JSON types will not
// survive.
func Cached[V any](name string, fn Func[V], opts ...Option) Func[V] {
	return func(args ...any) (V, error) {
		var out V
		path, err := cacheFilePath(name, opts)
		if err != nil {
			return out, err
		}
		call := CallKey(args...)
		err = With(path, func(c *Cache) error {
			if !c.ContainsCurrent(call) {
				v, err := fn(args...)
				if err != nil {
					return err
				}
				c.Store(call, v)
				log.Infof("%s cached", call)
			}
			var err error
			out, err = RetrieveAs[V](c, call)
			return err
		}, opts...)
		return out, err
	}
}

// RetrieveAs returns the value cached under call decoded as V. A value
// stored during the current session is returned as-is; one loaded from disk
// is re-decoded through JSON.
func RetrieveAs[V any](c *Cache, call string) (V, error) {
	var out V
	raw, err := c.Retrieve(call)
	if err != nil {
		return out, err
	}
	if v, ok := raw.(V); ok {
		return v, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode cached value for %s: %w", call, err)
	}
	return out, nil
}

// cacheFilePath derives the backing file for a named cache. The name, not
// the call site, picks the file, so the mapping is stable across builds.
func cacheFilePath(name string, opts []Option) (string, error) {
	probe := New("", opts...)
	dir := probe.dir
	if dir == "" {
		dir = os.Getenv("WEATHERPLS_CACHE_DIR")
	}
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
		}
		dir = filepath.Join(base, appName)
	}
	return filepath.Join(dir, name+"_cache.json"), nil
}
