// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pion/logging"
)

// ParseLevel maps a level name (error, warn, info, debug, trace, disabled)
// to a pion log level.
func ParseLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning", "":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// NewFactory builds a logger factory writing to w at level. Unlike
// logging.NewDefaultLoggerFactory it never consults the environment.
func NewFactory(w io.Writer, level logging.LogLevel) logging.LoggerFactory {
	return &logging.DefaultLoggerFactory{
		Writer:          w,
		DefaultLogLevel: level,
		ScopeLevels:     make(map[string]logging.LogLevel),
	}
}

// NewLogger is a shortcut for NewFactory(w, level).NewLogger(scope).
func NewLogger(w io.Writer, level logging.LogLevel, scope string) logging.LeveledLogger {
	return NewFactory(w, level).NewLogger(scope)
}

// Discard returns a logger that drops everything.
func Discard() logging.LeveledLogger {
	return NewLogger(io.Discard, logging.LogLevelDisabled, "discard")
}
