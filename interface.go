// FILE: interface.go
package filelog

// Logger instance methods for logging at different levels.
// source tags the entry with the originating function, see Source.

// Debug logs a message at debug level.
func (l *Logger) Debug(source string, msg any) {
	l.log(LevelDebug, source, msg)
}

// Verbose logs a message at verbose level.
func (l *Logger) Verbose(source string, msg any) {
	l.log(LevelVerbose, source, msg)
}

// Information logs a message at information level.
func (l *Logger) Information(source string, msg any) {
	l.log(LevelInformation, source, msg)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(source string, msg any) {
	l.log(LevelWarning, source, msg)
}

// Error logs a message at error level.
func (l *Logger) Error(source string, msg any) {
	l.log(LevelError, source, msg)
}

// WarningErr logs msg followed by a delimited description of err at warning level.
func (l *Logger) WarningErr(source string, err error, msg any) {
	l.log(LevelWarning, source, errorDetail{msg: msg, err: err})
}

// ErrorErr logs msg followed by a delimited description of err at error level.
func (l *Logger) ErrorErr(source string, err error, msg any) {
	l.log(LevelError, source, errorDetail{msg: msg, err: err})
}

// Log logs a message at the given level. Levels other than a single flag are dropped.
func (l *Logger) Log(level Level, source string, msg any) {
	l.log(level, source, msg)
}
