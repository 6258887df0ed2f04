// FILE: utility.go
package filelog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

const errorPrefix = "filelog: "

// Source returns the short name of the function that called it, for use as a log source tag.
// Only the immediate caller's frame is inspected.
func Source() string {
	return callerName(2)
}

// callerName resolves the frame skip levels above callerName into a short function name
func callerName(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip+1, pc) // +1 because Callers includes its own frame
	if n == 0 {
		return "(unknown)"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "(unknown)"
	}
	return shortFuncName(frame.Function)
}

// shortFuncName trims package path and receiver, naming closures after their enclosing function
func shortFuncName(full string) string {
	funcName := filepath.Base(full)
	parts := strings.Split(funcName, ".")
	lastPart := parts[len(parts)-1]
	if strings.HasPrefix(lastPart, "func") && len(lastPart) > 4 {
		isAnonymous := true
		for _, r := range lastPart[4:] {
			if !unicode.IsDigit(r) {
				isAnonymous = false
				break
			}
		}
		if isAnonymous && len(parts) > 2 {
			return fmt.Sprintf("(anonymous in %s)", parts[len(parts)-2])
		}
	}
	return lastPart
}

// appName derives the application name from the running executable
func appName() string {
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, errorPrefix) {
		format = errorPrefix + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}
