// FILE: lixenwraith/filelog/record.go
package filelog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// log handles the core logging logic: initialization gate, level filter, then append
func (l *Logger) log(level Level, source string, msg any) {
	if !l.state.IsInitialized.Load() {
		return
	}

	if !level.IsSingle() || !Allowed(l.state.MinLevel, l.state.Exact, level) {
		return
	}

	record := logRecord{
		TimeStamp: time.Now(),
		Level:     level,
		Source:    source,
		Message:   msg,
	}
	l.writeRecord(record)
}

// writeRecord serializes and appends a record under initMu.
// Write failures are counted and otherwise swallowed.
func (l *Logger) writeRecord(record logRecord) {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	path := l.state.FilePath
	if path == "" {
		return
	}

	data := l.serializer.serialize(record)
	if err := appendToFile(path, data); err != nil {
		l.state.TotalWriteFailures.Add(1)
		l.internalLog("%v\n", err)
		return
	}
	l.state.TotalLogsWritten.Add(1)
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent prefix
	if !strings.HasPrefix(format, errorPrefix) {
		format = errorPrefix + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
