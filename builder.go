// FILE: lixenwraith/filelog/builder.go
package filelog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new, initialized Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// ApplyConfig handles all initialization and validation.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Level sets the level mask.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level.String()
	return b
}

// LevelString sets the level mask from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = level
	return b
}

// Exact selects membership filtering for single-flag masks.
func (b *Builder) Exact(exact bool) *Builder {
	b.cfg.Exact = exact
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// AppName sets the application name used for the default directory.
func (b *Builder) AppName(name string) *Builder {
	b.cfg.AppName = name
	return b
}

// Extension sets the log file extension.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// MaxLogs sets the number of session files retained.
func (b *Builder) MaxLogs(n uint) *Builder {
	b.cfg.MaxLogs = int64(n)
	return b
}

// DisableFile disables file output entirely.
func (b *Builder) DisableFile(disable bool) *Builder {
	b.cfg.DisableFile = disable
	return b
}

// InternalErrorsToStderr reports swallowed write failures on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := filelog.NewBuilder().
//
//	Directory("/var/log/app").
//	LevelString("warning").
//	MaxLogs(10).
//	Build()
//
// if err == nil {
//
//	 logger.Information(filelog.Source(), "Logger initialized successfully")
//
// }
