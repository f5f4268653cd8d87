// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

// Package jsoncache provides light-duty persistent memoization, intended for
// use with slow APIs. Each cache is a single JSON file mapping call strings
// to [value, timestamp] pairs. It aims to be performant relative to a network
// round trip, not relative to an in-memory memoizer.
package jsoncache
