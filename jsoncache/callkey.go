// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package jsoncache

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/apex/log"
)

// CallKey renders an argument list as the canonical key for a call, e.g.
// (40.8363, -73.9358, "imperial"). Strings are quoted so "1" and 1 key
// differently.
func CallKey(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		warnIfUnkeyable(arg)
		switch v := arg.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// warnIfUnkeyable logs a warning for arguments that format as an identity
// (an address) rather than a value. Such an argument will not match itself
// across runs, so the cache may not behave as expected.
func warnIfUnkeyable(arg any) {
	if arg == nil {
		return
	}
	switch reflect.TypeOf(arg).Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Uintptr:
		log.Warnf("%T does not have a good string representation, cache may not behave as expected", arg)
	}
}
