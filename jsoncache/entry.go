// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is a single cached call result. On disk it is the 2-element array
// [value, timestamp], where timestamp is POSIX UTC seconds.
type Entry struct {
	Value     any
	CreatedAt float64
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Value, e.CreatedAt})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("entry must be a [value, timestamp] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Value); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.CreatedAt)
}

// timestamp returns the current POSIX UTC time in float seconds.
func timestamp() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
