package filelog

import (
	"errors"
	"testing"
)

// BenchmarkLoggerInformation benchmarks the open-append-close write path
func BenchmarkLoggerInformation(b *testing.B) {
	logger, _ := createTestLogger(b, LevelAll, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Information("bench", "benchmark message")
	}
}

// BenchmarkLoggerFiltered benchmarks calls rejected by the level filter
func BenchmarkLoggerFiltered(b *testing.B) {
	logger, _ := createTestLogger(b, LevelError, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("bench", "benchmark message")
	}
}

// BenchmarkLoggerErrorDetail benchmarks the error description path
func BenchmarkLoggerErrorDetail(b *testing.B) {
	logger, _ := createTestLogger(b, LevelAll, false)
	err := errors.New("benchmark failure")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.ErrorErr("bench", err, "benchmark message")
	}
}

// BenchmarkConcurrentLogging benchmarks the logger's performance under concurrent load
func BenchmarkConcurrentLogging(b *testing.B) {
	logger, _ := createTestLogger(b, LevelAll, false)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Information("bench", "concurrent")
		}
	})
}
