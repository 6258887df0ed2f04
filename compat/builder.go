package compat

import (
	"fmt"

	"github.com/lixenwraith/filelog"
)

// Builder provides a flexible way to create configured logger adapters for gnet and fasthttp
// It can use an existing *filelog.Logger instance or create a new one from a *filelog.Config
type Builder struct {
	logger *filelog.Logger
	logCfg *filelog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// Recommended for applications that already have a central logger instance
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *filelog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("filelog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, the process-wide default logger is used
func (b *Builder) WithConfig(cfg *filelog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*filelog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	if b.logCfg == nil {
		b.logger = filelog.Default()
		return b.logger, nil
	}

	l := filelog.NewLogger()
	if err := l.ApplyConfig(b.logCfg); err != nil {
		return nil, fmt.Errorf("filelog/compat: failed to initialize logger: %w", err)
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *filelog.Logger instance
// If a logger has not been provided or created yet, it will be resolved now
func (b *Builder) GetLogger() (*filelog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
//	// 1. Create and configure application's main logger
//	appLogger, err := filelog.NewBuilder().
//		Directory("/var/log/app").
//		Level(filelog.LevelInformation).
//		Build()
//	if err != nil {
//		panic(fmt.Sprintf("failed to configure logger: %v", err))
//	}
//
//	// 2. Create a builder and provide the existing logger
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	fasthttpLogger, err := builder.BuildFastHTTP()
//
//	// 4. Configure your servers with the adapters
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
