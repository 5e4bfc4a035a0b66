package hostlog

import (
	"fmt"
	"strings"
)

// Level mirrors slog numeric semantics and extends with Trace (-8).
// Higher values are more severe.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// DefaultThreshold is the floor installed by Register and reported while
// nothing is registered. Trace is below it.
const DefaultThreshold = LevelDebug

// String returns the lowercase level name. Values between named levels
// print as an offset from the nearest lower one, e.g. "debug+2".
func (l Level) String() string {
	str := func(base string, delta Level) string {
		if delta == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, delta)
	}
	switch {
	case l < LevelDebug:
		return str("trace", l-LevelTrace)
	case l < LevelInfo:
		return str("debug", l-LevelDebug)
	case l < LevelWarn:
		return str("info", l-LevelInfo)
	case l < LevelError:
		return str("warn", l-LevelWarn)
	default:
		return str("error", l-LevelError)
	}
}

// ParseLevel converts a level name (case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("hostlog: unknown level %q", s)
}
