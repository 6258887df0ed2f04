// FILE: storage.go
package filelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// removeFile deletes a stale session file, replaceable in tests
var removeFile = os.Remove

// resolveDirectory returns the configured directory or the per-application default
func resolveDirectory(cfg *Config) (string, error) {
	if cfg.Directory != "" {
		return filepath.Clean(cfg.Directory), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmtErrorf("failed to resolve application data directory: %w", err)
	}
	return filepath.Join(base, cfg.AppName, defaultLogSubdir), nil
}

// appendToFile opens path for append, writes data, and closes it again
func appendToFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	_, writeErr := file.Write(data)
	closeErr := file.Close()
	return combineErrors(writeErr, closeErr)
}

// staleLogFiles lists session files in dir, newest first, that fall outside the retention count.
// The active file is excluded, so maxLogs-1 older files survive next to it.
func staleLogFiles(dir, ext, activePath string, maxLogs uint) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmtErrorf("failed to read log directory '%s' for pruning: %w", dir, err)
	}

	type logFileMeta struct {
		name    string
		modTime time.Time
		started time.Time // Session start parsed from the name, zero for foreign names
	}
	var logs []logFileMeta
	activeName := filepath.Base(activePath)
	targetExt := "." + ext
	for _, entry := range entries {
		if !entry.Type().IsRegular() || entry.Name() == activeName {
			continue
		}
		if filepath.Ext(entry.Name()) != targetExt {
			continue
		}
		info, errInfo := entry.Info()
		if errInfo != nil {
			continue
		}
		started, _ := time.ParseInLocation(fileNameFormat, strings.TrimSuffix(entry.Name(), targetExt), time.Local)
		logs = append(logs, logFileMeta{name: entry.Name(), modTime: info.ModTime(), started: started})
	}

	if maxLogs == 0 || uint(len(logs)) < maxLogs {
		return nil, nil
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].modTime.Equal(logs[j].modTime) {
			if !logs[i].started.Equal(logs[j].started) {
				return logs[i].started.After(logs[j].started)
			}
			return logs[i].name > logs[j].name
		}
		return logs[i].modTime.After(logs[j].modTime)
	})

	var stale []string
	for _, log := range logs[maxLogs-1:] {
		stale = append(stale, filepath.Join(dir, log.name))
	}
	return stale, nil
}

// pruneLogs deletes stale session files in parallel and waits for all deletions.
// Each failure is reported through the logger itself and does not stop the rest.
func (l *Logger) pruneLogs() {
	const source = "pruneLogs"

	stale, err := staleLogFiles(l.state.Directory, l.getConfig().Extension, l.state.FilePath, l.state.MaxLogs)
	if err != nil {
		l.ErrorErr(source, err, "log retention skipped")
		return
	}

	var g errgroup.Group
	g.SetLimit(pruneConcurrency)
	for _, path := range stale {
		g.Go(func() error {
			if err := removeFile(path); err != nil {
				l.state.FailedDeletions.Add(1)
				l.ErrorErr(source, err, fmt.Sprintf("failed to delete old log file '%s'", path))
				return err
			}
			l.state.TotalDeletions.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.internalLog("log retention incomplete: %v\n", err)
	}
}
