// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

// load reads the backing file into memory. A missing or empty file is an
// empty store, not an error.
func (c *Cache) load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		c.entries = map[string]Entry{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache file %s: %w", c.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		c.entries = map[string]Entry{}
		return nil
	}
	if !gjson.ValidBytes(data) {
		return c.corrupt(fmt.Errorf("%w: %s is not valid JSON", ErrCorruptCache, c.path))
	}
	entries := map[string]Entry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return c.corrupt(fmt.Errorf("%w: %s: %v", ErrCorruptCache, c.path, err))
	}
	c.entries = entries
	return nil
}

// corrupt applies the OnCorrupt policy to an unreadable backing file.
func (c *Cache) corrupt(err error) error {
	if c.onCorrupt == CorruptReset {
		log.WithError(err).Warnf("resetting corrupt cache %s", c.path)
		c.entries = map[string]Entry{}
		return nil
	}
	return err
}

// flush serializes the store to the backing file, creating parent
// directories as needed. encoding/json writes map keys in sorted order, so
// flushing the same state twice produces identical bytes.
func (c *Cache) flush() error {
	data, err := json.Marshal(c.entries)
	if err != nil {
		var typeErr *json.UnsupportedTypeError
		var valueErr *json.UnsupportedValueError
		if errors.As(err, &typeErr) || errors.As(err, &valueErr) {
			return fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		return fmt.Errorf("failed to encode cache %s: %w", c.path, err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", c.path, err)
	}
	log.Debugf("flushed %d entries (%s) to %s", len(c.entries), humanize.Bytes(uint64(len(data))), c.path)
	return nil
}
