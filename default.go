// --- File: default.go ---
package filelog

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the process-wide logger used by the package-level functions
func Default() *Logger {
	return defaultLogger
}

// Default package-level functions that delegate to the default logger

// Initialize configures the default logger with the platform default log directory
func Initialize(minLevel Level, exact bool, maxLogs uint) error {
	return defaultLogger.Initialize(minLevel, exact, maxLogs)
}

// InitializeDir configures the default logger to write into dir
func InitializeDir(dir string, minLevel Level, exact bool, maxLogs uint) error {
	return defaultLogger.InitializeDir(dir, minLevel, exact, maxLogs)
}

// ApplyConfig configures the default logger from a Config
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// InitWithOverrides configures the default logger from defaults with key=value overrides
func InitWithOverrides(overrides ...string) error {
	return defaultLogger.InitWithOverrides(overrides...)
}

// IsInitialized reports whether the default logger has been configured
func IsInitialized() bool {
	return defaultLogger.IsInitialized()
}

// IsLoggingToFileEnabled reports whether the default logger writes to a file
func IsLoggingToFileEnabled() bool {
	return defaultLogger.IsLoggingToFileEnabled()
}

// Debug logs a message at debug level
func Debug(source string, msg any) {
	defaultLogger.Debug(source, msg)
}

// Verbose logs a message at verbose level
func Verbose(source string, msg any) {
	defaultLogger.Verbose(source, msg)
}

// Information logs a message at information level
func Information(source string, msg any) {
	defaultLogger.Information(source, msg)
}

// Warning logs a message at warning level
func Warning(source string, msg any) {
	defaultLogger.Warning(source, msg)
}

// Error logs a message at error level
func Error(source string, msg any) {
	defaultLogger.Error(source, msg)
}

// WarningErr logs a message with error details at warning level
func WarningErr(source string, err error, msg any) {
	defaultLogger.WarningErr(source, err, msg)
}

// ErrorErr logs a message with error details at error level
func ErrorErr(source string, err error, msg any) {
	defaultLogger.ErrorErr(source, err, msg)
}

// Log logs a message at the given single-flag level
func Log(level Level, source string, msg any) {
	defaultLogger.Log(level, source, msg)
}
