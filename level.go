// FILE: lixenwraith/filelog/level.go
package filelog

import (
	"math/bits"
	"strconv"
	"strings"
)

// Level is a bitset of severities. A single flag tags a log call; a mask of
// one or more flags configures the filter.
type Level uint8

// Log level flags, ordered by severity
const (
	LevelDebug Level = 1 << iota
	LevelVerbose
	LevelInformation
	LevelWarning
	LevelError

	LevelNone Level = 0
	LevelAll        = LevelDebug | LevelVerbose | LevelInformation | LevelWarning | LevelError
)

var levelNames = [...]struct {
	level Level
	name  string
}{
	{LevelDebug, "DEBUG"},
	{LevelVerbose, "VERBOSE"},
	{LevelInformation, "INFORMATION"},
	{LevelWarning, "WARNING"},
	{LevelError, "ERROR"},
}

// Count returns the number of flags set in the mask
func (l Level) Count() int {
	return bits.OnesCount8(uint8(l & LevelAll))
}

// IsSingle reports whether exactly one known flag is set
func (l Level) IsSingle() bool {
	return l&^LevelAll == 0 && l.Count() == 1
}

// String returns the uppercase level name, or the flags joined by '|' for composite masks
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelAll:
		return "ALL"
	}

	var parts []string
	for _, ln := range levelNames {
		if l&ln.level != 0 {
			parts = append(parts, ln.name)
		}
	}
	if rest := l &^ LevelAll; rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// Allowed decides whether an entry tagged with level passes the filter configured by min and exact.
// A single-flag min acts as a severity threshold unless exact is set; a composite min, or any
// min in exact mode, requires the level to be a member of the mask.
func Allowed(min Level, exact bool, level Level) bool {
	if exact || min.Count() > 1 {
		return min&level != 0
	}
	return level >= min
}

// ParseLevel converts a level string to a Level mask.
// Accepts names (case-insensitive), numeric masks, and '|' or ',' separated combinations.
func ParseLevel(levelStr string) (Level, error) {
	s := strings.TrimSpace(levelStr)
	if s == "" {
		return LevelNone, fmtErrorf("invalid level string: '%s' (use debug, verbose, info, warn, error, all, none)", levelStr)
	}

	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		if Level(n)&^LevelAll != 0 {
			return LevelNone, fmtErrorf("invalid level string: '%s' (mask out of range)", levelStr)
		}
		return Level(n), nil
	}

	var mask Level
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "debug":
			mask |= LevelDebug
		case "verbose":
			mask |= LevelVerbose
		case "info", "information":
			mask |= LevelInformation
		case "warn", "warning":
			mask |= LevelWarning
		case "error":
			mask |= LevelError
		case "all":
			mask |= LevelAll
		case "none":
		default:
			return LevelNone, fmtErrorf("invalid level string: '%s' (use debug, verbose, info, warn, error, all, none)", levelStr)
		}
	}
	return mask, nil
}
