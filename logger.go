// FILE: lixenwraith/filelog/logger.go
package filelog

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the core struct that encapsulates all logger functionality.
// It is configured once; every later configuration attempt is a no-op.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex // Guards initialization and every file write
	serializer    *serializer
}

// NewLogger creates a new, uninitialized Logger instance
func NewLogger() *Logger {
	l := &Logger{
		serializer: newSerializer(),
	}

	// Set default configuration
	l.currentConfig.Store(DefaultConfig())
	l.state.IsInitialized.Store(false)

	return l
}

// Initialize configures the logger with the platform default log directory.
// Only the first successful call takes effect; later calls return nil without changes.
func (l *Logger) Initialize(minLevel Level, exact bool, maxLogs uint) error {
	return l.InitializeDir("", minLevel, exact, maxLogs)
}

// InitializeDir configures the logger to write into dir. An empty dir selects the platform default.
func (l *Logger) InitializeDir(dir string, minLevel Level, exact bool, maxLogs uint) error {
	cfg := DefaultConfig()
	cfg.Level = minLevel.String()
	cfg.Exact = exact
	cfg.Directory = dir
	cfg.MaxLogs = int64(maxLogs)
	return l.ApplyConfig(cfg)
}

// ApplyConfig validates cfg, creates the session log file, and prunes stale session files.
// Directory or file creation failures are returned; pruning failures are logged at error level.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if l.state.IsInitialized.Load() {
		return nil
	}

	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	if l.state.IsInitialized.Load() {
		l.initMu.Unlock()
		return nil
	}
	err := l.applyConfig(cfg)
	l.initMu.Unlock()
	if err != nil {
		return err
	}

	// Stale files are not touched by appends, pruning runs outside initMu
	if l.state.FilePath != "" {
		l.pruneLogs()
	}

	return nil
}

// IsInitialized reports whether the logger has been configured
func (l *Logger) IsInitialized() bool {
	return l.state.IsInitialized.Load()
}

// IsLoggingToFileEnabled reports whether accepted entries are written to a file
func (l *Logger) IsLoggingToFileEnabled() bool {
	return l.state.IsInitialized.Load() && l.state.FilePath != ""
}

// GetConfig returns a copy of current configuration, with directory, app name, and retention resolved once initialized
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// FilePath returns the active session file, or an empty string before initialization or when file output is disabled
func (l *Logger) FilePath() string {
	if !l.state.IsInitialized.Load() {
		return ""
	}
	return l.state.FilePath
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	cfg = cfg.Clone()

	minLevel, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	if cfg.MaxLogs == 0 {
		cfg.MaxLogs = DefaultMaxLogs
	}
	if cfg.AppName == "" {
		cfg.AppName = appName()
	}

	var filePath string
	if !cfg.DisableFile {
		dir, err := resolveDirectory(cfg)
		if err != nil {
			return err
		}
		cfg.Directory = dir

		now := time.Now()
		filePath = filepath.Join(dir, now.Format(fileNameFormat)+"."+cfg.Extension)

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmtErrorf("failed to create log directory '%s': %w", dir, err)
		}

		if err := os.WriteFile(filePath, l.serializer.serializeBanner(now), 0644); err != nil {
			return fmtErrorf("failed to create log file '%s': %w", filePath, err)
		}
	}

	l.state.Directory = cfg.Directory
	l.state.FilePath = filePath
	l.state.MinLevel = minLevel
	l.state.Exact = cfg.Exact
	l.state.MaxLogs = uint(cfg.MaxLogs)
	l.currentConfig.Store(cfg)

	// Mark as initialized
	l.state.IsInitialized.Store(true)

	return nil
}
