// FILE: state.go
package filelog

import (
	"sync/atomic"
)

// State encapsulates the runtime state of the logger.
// Plain fields are written once under initMu before IsInitialized is set and are read-only afterwards.
type State struct {
	IsInitialized atomic.Bool

	Directory string // Resolved log directory
	FilePath  string // Active session file, empty when file output is disabled
	MinLevel  Level
	Exact     bool
	MaxLogs   uint

	TotalLogsWritten   atomic.Uint64 // Entries appended to the session file
	TotalWriteFailures atomic.Uint64 // Appends lost to I/O errors
	TotalDeletions     atomic.Uint64 // Stale session files removed by pruning
	FailedDeletions    atomic.Uint64 // Stale session files that could not be removed
}

// Stats returns a snapshot of the logger's counters
func (l *Logger) Stats() Stats {
	return Stats{
		LogsWritten:     l.state.TotalLogsWritten.Load(),
		WriteFailures:   l.state.TotalWriteFailures.Load(),
		Deletions:       l.state.TotalDeletions.Load(),
		FailedDeletions: l.state.FailedDeletions.Load(),
	}
}
