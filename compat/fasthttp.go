// FILE: lixenwraith/filelog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/filelog"
	"github.com/valyala/fasthttp"
)

// fastHTTPSource tags every entry written through FastHTTPAdapter
const fastHTTPSource = "fasthttp"

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps filelog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *filelog.Logger
	defaultLevel  filelog.Level
	levelDetector func(string) filelog.Level // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *filelog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  filelog.LevelInformation,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when the detector finds none
func WithDefaultLevel(level filelog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
// Returning LevelNone falls back to the default level.
func WithLevelDetector(detector func(string) filelog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != filelog.LevelNone {
			level = detected
		}
	}

	a.logger.Log(level, fastHTTPSource, msg)
}

// DetectLogLevel attempts to detect log level from message content.
// Returns LevelNone when no indicator is present.
func DetectLogLevel(msg string) filelog.Level {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return filelog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") ||
		strings.Contains(msgLower, "cannot be served") {
		return filelog.LevelWarning
	}

	if strings.Contains(msgLower, "verbose") {
		return filelog.LevelVerbose
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return filelog.LevelDebug
	}

	return filelog.LevelNone
}
