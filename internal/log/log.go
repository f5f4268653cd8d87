// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up apex with a custom handler and a log level from the
// WEATHERPLS_LOG env variable.
func Init() {
	level := strings.ToUpper(os.Getenv("WEATHERPLS_LOG"))
	if level == "" {
		level = "WARN"
	}
	log.SetHandler(&CustomHandler{})
	log.SetLevelFromString(level)
}

// CustomHandler formats log messages and writes to stderr
type CustomHandler struct{}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	message := e.Message
	fmt.Fprintf(os.Stderr, "%s %.1s %s\n", timestamp, level, message)
	return nil
}
