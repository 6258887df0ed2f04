// FILE: lixenwraith/filelog/storage_test.go
package filelog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLogFiles creates count session files named old_1.log (newest) to old_<count>.log (oldest)
func seedLogFiles(t *testing.T, dir string, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		path := filepath.Join(dir, fmt.Sprintf("old_%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("old data\r\n"), 0644))

		// Make files appear old, older with each index
		oldTime := time.Now().Add(-time.Hour * time.Duration(i))
		require.NoError(t, os.Chtimes(path, oldTime, oldTime))
	}
}

// remainingNames returns the base names of the .log files in dir
func remainingNames(t *testing.T, dir string) []string {
	t.Helper()
	var names []string
	for _, path := range logFiles(t, dir) {
		names = append(names, filepath.Base(path))
	}
	return names
}

func TestRetentionPruning(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		maxLogs  uint
		kept     []string
	}{
		{"below limit", 3, 5, []string{"old_1.log", "old_2.log", "old_3.log"}},
		{"one below limit", 4, 5, []string{"old_1.log", "old_2.log", "old_3.log", "old_4.log"}},
		{"at limit", 5, 5, []string{"old_1.log", "old_2.log", "old_3.log", "old_4.log"}},
		{"over limit", 7, 5, []string{"old_1.log", "old_2.log", "old_3.log", "old_4.log"}},
		{"keep only new", 3, 1, nil},
		{"default retention", 8, 0, []string{"old_1.log", "old_2.log", "old_3.log", "old_4.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			seedLogFiles(t, tmpDir, tt.existing)

			logger := NewLogger()
			require.NoError(t, logger.InitializeDir(tmpDir, LevelAll, false, tt.maxLogs))

			activeName := filepath.Base(logger.FilePath())
			expected := append([]string{activeName}, tt.kept...)
			assert.ElementsMatch(t, expected, remainingNames(t, tmpDir))

			deleted := uint64(tt.existing - len(tt.kept))
			assert.Equal(t, deleted, logger.Stats().Deletions)
			assert.Zero(t, logger.Stats().FailedDeletions)
		})
	}
}

// TestRetentionSevenFilesMaxFive checks the total left on disk for the common case
func TestRetentionSevenFilesMaxFive(t *testing.T) {
	tmpDir := t.TempDir()
	seedLogFiles(t, tmpDir, 7)

	logger := NewLogger()
	require.NoError(t, logger.InitializeDir(tmpDir, LevelAll, false, 5))

	assert.Len(t, logFiles(t, tmpDir), 5)
	for _, gone := range []string{"old_5.log", "old_6.log", "old_7.log"} {
		_, err := os.Stat(filepath.Join(tmpDir, gone))
		assert.True(t, os.IsNotExist(err), "%s should be deleted", gone)
	}
}

// TestRetentionIgnoresOtherFiles verifies only files with the log extension are considered
func TestRetentionIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	seedLogFiles(t, tmpDir, 3)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("keep"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "archive.log"), 0755))

	logger := NewLogger()
	require.NoError(t, logger.InitializeDir(tmpDir, LevelAll, false, 1))

	_, err := os.Stat(filepath.Join(tmpDir, "notes.txt"))
	assert.NoError(t, err)
	info, err := os.Stat(filepath.Join(tmpDir, "archive.log"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, uint64(3), logger.Stats().Deletions)
}

// TestRetentionCustomExtension verifies pruning follows the configured extension
func TestRetentionCustomExtension(t *testing.T) {
	tmpDir := t.TempDir()
	seedLogFiles(t, tmpDir, 2)
	for i := 1; i <= 3; i++ {
		path := filepath.Join(tmpDir, fmt.Sprintf("old_%d.txt", i))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}

	logger, err := NewBuilder().Directory(tmpDir).Extension("txt").MaxLogs(2).Build()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(logger.FilePath(), ".txt"))
	assert.Len(t, logFiles(t, tmpDir), 2, ".log files are not session files here")
	assert.Equal(t, uint64(2), logger.Stats().Deletions)
}

// TestRetentionDeleteFailure verifies one failed deletion is reported and the rest proceed
func TestRetentionDeleteFailure(t *testing.T) {
	tmpDir := t.TempDir()
	seedLogFiles(t, tmpDir, 7)

	origRemove := removeFile
	removeFile = func(name string) error {
		if filepath.Base(name) == "old_6.log" {
			return errors.New("permission denied")
		}
		return origRemove(name)
	}
	t.Cleanup(func() { removeFile = origRemove })

	logger := NewLogger()
	require.NoError(t, logger.InitializeDir(tmpDir, LevelAll, false, 5))

	assert.ElementsMatch(t,
		[]string{filepath.Base(logger.FilePath()), "old_1.log", "old_2.log", "old_3.log", "old_4.log", "old_6.log"},
		remainingNames(t, tmpDir))

	stats := logger.Stats()
	assert.Equal(t, uint64(2), stats.Deletions)
	assert.Equal(t, uint64(1), stats.FailedDeletions)

	content, err := os.ReadFile(logger.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "] [ERROR] [pruneLogs]: failed to delete old log file '"+filepath.Join(tmpDir, "old_6.log")+"'")
	assert.Contains(t, string(content), "*errors.errorString: permission denied")
}

// TestRetentionFilteredReport verifies pruning errors respect the level filter
func TestRetentionFilteredReport(t *testing.T) {
	tmpDir := t.TempDir()
	seedLogFiles(t, tmpDir, 2)

	origRemove := removeFile
	removeFile = func(string) error { return errors.New("busy") }
	t.Cleanup(func() { removeFile = origRemove })

	logger := NewLogger()
	require.NoError(t, logger.InitializeDir(tmpDir, LevelDebug, true, 1))

	assert.Equal(t, uint64(2), logger.Stats().FailedDeletions)
	lines := readLogLines(t, logger)
	assert.Len(t, lines, 1, "only the banner, error level is filtered out")
}

func TestStaleLogFiles(t *testing.T) {
	tmpDir := t.TempDir()
	seedLogFiles(t, tmpDir, 4)
	active := filepath.Join(tmpDir, "active.log")
	require.NoError(t, os.WriteFile(active, nil, 0644))

	stale, err := staleLogFiles(tmpDir, "log", active, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "old_2.log"),
		filepath.Join(tmpDir, "old_3.log"),
		filepath.Join(tmpDir, "old_4.log"),
	}, stale, "newest first, keeping maxLogs-1")

	stale, err = staleLogFiles(tmpDir, "log", active, 5)
	require.NoError(t, err)
	assert.Empty(t, stale)

	_, err = staleLogFiles(filepath.Join(tmpDir, "missing"), "log", active, 2)
	assert.Error(t, err)
}

func TestAppendToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "append.log")

	require.NoError(t, appendToFile(path, []byte("one\r\n")))
	require.NoError(t, appendToFile(path, []byte("two\r\n")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\r\ntwo\r\n", string(content))

	err = appendToFile(filepath.Join(t.TempDir(), "missing", "x.log"), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

// TestStaleLogFilesSameModTime verifies ties are broken by the session time in the file name
func TestStaleLogFilesSameModTime(t *testing.T) {
	tmpDir := t.TempDir()
	modTime := time.Now().Add(-time.Hour)

	// Lexically "02.01" sorts after "01.02", chronologically it is a month earlier
	names := []string{"02.01.2024_10-00-00.log", "01.02.2024_10-00-00.log", "15.01.2024_10-00-00.log"}
	for _, name := range names {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, nil, 0644))
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	stale, err := staleLogFiles(tmpDir, "log", filepath.Join(tmpDir, "active.log"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "15.01.2024_10-00-00.log"),
		filepath.Join(tmpDir, "02.01.2024_10-00-00.log"),
	}, stale, "the February session is the newest and survives")
}
