// FILE: lixenwraith/filelog/type.go
package filelog

import (
	"time"
)

// logRecord represents a single accepted log entry
type logRecord struct {
	TimeStamp time.Time
	Level     Level
	Source    string
	Message   any
}

// Stats is a snapshot of the logger's counters
type Stats struct {
	LogsWritten     uint64
	WriteFailures   uint64
	Deletions       uint64
	FailedDeletions uint64
}
