package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/filelog"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

// gnetSource tags every entry written through GnetAdapter
const gnetSource = "gnet"

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps filelog.Logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger       *filelog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *filelog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debug(gnetSource, fmt.Sprintf(format, args...))
}

// Infof logs at information level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Information(gnetSource, fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning(gnetSource, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error(gnetSource, fmt.Sprintf(format, args...))
}

// Fatalf logs at error level and triggers fatal handler.
// Entries are written synchronously, nothing is pending when the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Error(gnetSource, "fatal: "+msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
