// FILE: lixenwraith/filelog/level_test.go
package filelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var singleLevels = []Level{LevelDebug, LevelVerbose, LevelInformation, LevelWarning, LevelError}

func TestLevelFlags(t *testing.T) {
	seen := Level(0)
	for _, level := range singleLevels {
		assert.True(t, level.IsSingle(), "%s should be a single flag", level)
		assert.Zero(t, seen&level, "flags must not overlap")
		seen |= level
	}
	assert.Equal(t, LevelAll, seen)
	assert.Equal(t, 5, LevelAll.Count())
	assert.Equal(t, 0, LevelNone.Count())
	assert.False(t, LevelNone.IsSingle())
	assert.False(t, (LevelDebug | LevelError).IsSingle())
	assert.False(t, Level(0x20).IsSingle())
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelVerbose, "VERBOSE"},
		{LevelInformation, "INFORMATION"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelAll, "ALL"},
		{LevelNone, "NONE"},
		{LevelDebug | LevelError, "DEBUG|ERROR"},
		{LevelWarning | Level(0x40), "WARNING|0x40"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"VERBOSE", LevelVerbose, false},
		{" info ", LevelInformation, false},
		{"Information", LevelInformation, false},
		{"warn", LevelWarning, false},
		{"warning", LevelWarning, false},
		{"error", LevelError, false},
		{"all", LevelAll, false},
		{"ALL", LevelAll, false},
		{"none", LevelNone, false},
		{"debug|error", LevelDebug | LevelError, false},
		{"DEBUG|ERROR", LevelDebug | LevelError, false},
		{"warning, error", LevelWarning | LevelError, false},
		{"8", LevelWarning, false},
		{"0x11", LevelDebug | LevelError, false},
		{"64", LevelNone, true},
		{"invalid", LevelNone, true},
		{"debug|bogus", LevelNone, true},
		{"", LevelNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid level string")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, mask := range []Level{LevelNone, LevelAll, LevelDebug, LevelDebug | LevelError, LevelVerbose | LevelInformation | LevelWarning} {
		parsed, err := ParseLevel(mask.String())
		assert.NoError(t, err)
		assert.Equal(t, mask, parsed)
	}
}

// TestAllowedThreshold checks every single-flag minimum in threshold mode
func TestAllowedThreshold(t *testing.T) {
	for i, min := range singleLevels {
		for j, level := range singleLevels {
			assert.Equal(t, j >= i, Allowed(min, false, level), "min=%s level=%s", min, level)
		}
	}
}

// TestAllowedMembership checks composite masks and exact mode against bitwise membership
func TestAllowedMembership(t *testing.T) {
	for mask := LevelNone; mask <= LevelAll; mask++ {
		for _, level := range singleLevels {
			want := mask&level != 0
			assert.Equal(t, want, Allowed(mask, true, level), "exact mask=%s level=%s", mask, level)
			if mask.Count() > 1 {
				assert.Equal(t, want, Allowed(mask, false, level), "composite mask=%s level=%s", mask, level)
			}
		}
	}
}

func TestAllowedExamples(t *testing.T) {
	// At or above warning
	assert.False(t, Allowed(LevelWarning, false, LevelInformation))
	assert.True(t, Allowed(LevelWarning, false, LevelWarning))
	assert.True(t, Allowed(LevelWarning, false, LevelError))

	// Only debug and error
	assert.True(t, Allowed(LevelDebug|LevelError, false, LevelDebug))
	assert.False(t, Allowed(LevelDebug|LevelError, false, LevelWarning))
	assert.True(t, Allowed(LevelDebug|LevelError, false, LevelError))

	// Only warning
	assert.False(t, Allowed(LevelWarning, true, LevelError))
	assert.True(t, Allowed(LevelWarning, true, LevelWarning))

	// None: threshold of zero passes everything, exact rejects everything
	assert.True(t, Allowed(LevelNone, false, LevelDebug))
	assert.False(t, Allowed(LevelNone, true, LevelError))
}
