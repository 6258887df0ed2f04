// FILE: override.go
package filelog

import (
	"fmt"
	"strconv"
	"strings"
)

// InitWithOverrides initializes the logger from the default configuration with
// string key-value overrides applied. Each override should be in the format "key=value".
// As with Initialize, only the first successful call takes effect.
//
// Example:
//
//	logger := filelog.NewLogger()
//	err := logger.InitWithOverrides(
//	    "directory=/var/log/app",
//	    "level=warning",
//	    "max_logs=10",
//	)
func (l *Logger) InitWithOverrides(overrides ...string) error {
	cfg, err := ApplyOverride(DefaultConfig(), overrides...)
	if err != nil {
		return err
	}
	return l.ApplyConfig(cfg)
}

// ApplyOverride returns a copy of cfg with the key=value overrides applied.
// All malformed overrides are reported together.
func ApplyOverride(cfg *Config, overrides ...string) (*Config, error) {
	cfg = cfg.Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return nil, combineConfigErrors(errors)
	}

	return cfg, nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("filelog: multiple configuration errors:")
	for i, err := range errors {
		// Drop the per-error prefix to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), errorPrefix)
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		if _, err := ParseLevel(value); err != nil {
			return err
		}
		cfg.Level = value

	case "exact":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for exact '%s': %w", value, err)
		}
		cfg.Exact = boolVal

	case "directory":
		cfg.Directory = value

	case "app_name":
		cfg.AppName = value

	case "extension":
		cfg.Extension = value

	case "max_logs":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_logs '%s': %w", value, err)
		}
		cfg.MaxLogs = intVal

	case "disable_file":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for disable_file '%s': %w", value, err)
		}
		cfg.DisableFile = boolVal

	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown config key in override: %s", key)
	}

	return nil
}
