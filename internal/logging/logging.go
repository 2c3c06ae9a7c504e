// Package logging defines the named slog levels used across this module's
// command-line tooling, along with helpers for converting between the
// named levels and slog's underlying integer scale.
package logging

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// The eight named verbosity levels, spaced to match slog's own spacing
// between Debug/Info/Warn/Error (4 apart) while leaving room for the
// in-between Verbose and Notice levels generator output tends to want.
const (
	LevelTrace   = slog.LevelDebug - 4 // -8
	LevelDebug   = slog.LevelDebug     // -4
	LevelVerbose = slog.LevelDebug + 2 // -2
	LevelInfo    = slog.LevelInfo      // 0
	LevelNotice  = slog.LevelInfo + 2  // 2
	LevelWarn    = slog.LevelWarn      // 4
	LevelError   = slog.LevelError     // 8
	LevelFatal   = slog.LevelError + 4 // 12
)

var namedLevels = []string{"trace", "debug", "verbose", "info", "notice", "warn", "error", "fatal"}

// BumpLevel returns lvl moved to the next named level: one step less severe
// if lower is true, one step more severe otherwise. It is used by the -v/-q
// command-line flags, which may be repeated to walk further in either
// direction.
func BumpLevel(lvl slog.Level, lower bool) slog.Level {
	// The named levels are symmetric around 0, so bumping "down" is the same
	// as negating, bumping "up", and negating back.
	orient := slog.Level(1)
	if lower {
		orient = -1
		lvl *= orient
	}
	step := slog.Level(4)
	if LevelDebug <= lvl && lvl < LevelWarn {
		step = 2
	}
	lvl += step
	lvl *= orient
	return lvl
}

// StringToLevel parses one of the named levels (case-insensitively) into
// its slog.Level value.
func StringToLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "verbose":
		return LevelVerbose, nil
	case "info":
		return LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		if slices.Contains(namedLevels, strings.ToLower(name)) {
			panic("logging: named level missing a case in StringToLevel")
		}
		return 0, fmt.Errorf("invalid log level %q; expected one of: %s", name, strings.Join(namedLevels, ", "))
	}
}
