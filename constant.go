// FILE: lixenwraith/filelog/constant.go
package filelog

import (
	"strings"
)

// Retention
const (
	// Number of session files kept when max_logs is 0
	DefaultMaxLogs = 5
	// Upper bound on concurrent deletions during pruning
	pruneConcurrency = 4
)

// File layout
const (
	// Session file name, filesystem-safe on every platform
	fileNameFormat = "02.01.2006_15-04-05"
	// Entry and banner timestamp
	entryTimestampFormat = "02.01.2006 15:04:05.000"
	// Subdirectory appended to the per-application data directory
	defaultLogSubdir = "Logs"
	lineTerminator   = "\r\n"
)

// Error detail delimiters used by WarningErr and ErrorErr
var (
	errorBannerOpen  = strings.Repeat("-", 24) + " error " + strings.Repeat("-", 24)
	errorBannerClose = strings.Repeat("-", 55)
)
