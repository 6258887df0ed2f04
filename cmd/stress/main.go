package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/filelog"
)

const (
	totalBursts    = 100
	logsPerBurst   = 200
	maxMessageSize = 2000
	numWorkers     = 50
	staleFiles     = 12
	logsDir        = "./stress_logs"
)

var levels = []filelog.Level{
	filelog.LevelDebug,
	filelog.LevelVerbose,
	filelog.LevelInformation,
	filelog.LevelWarning,
	filelog.LevelError,
}

var logger *filelog.Logger

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

// seedStaleFiles creates session files from earlier runs so retention has work to do
func seedStaleFiles() error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return err
	}
	for i := 1; i <= staleFiles; i++ {
		ts := time.Now().Add(-time.Duration(i) * time.Hour)
		path := filepath.Join(logsDir, ts.Format("02.01.2006_15-04-05")+".log")
		if err := os.WriteFile(path, []byte("stale session\r\n"), 0644); err != nil {
			return err
		}
		if err := os.Chtimes(path, ts, ts); err != nil {
			return err
		}
	}
	return nil
}

// logBurst simulates a burst of logging activity
func logBurst(burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msg := fmt.Sprintf("wkr=%d bst=%d seq=%d %s",
			burstID%numWorkers, burstID, i, generateRandomMessage(rand.Intn(maxMessageSize)+10))
		if level == filelog.LevelError && i%50 == 0 {
			logger.ErrorErr("logBurst", fmt.Errorf("burst %d failed at %d", burstID, i), msg)
			continue
		}
		logger.Log(level, "logBurst", msg)
	}
}

// worker goroutine function
func worker(burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		logBurst(burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

func main() {
	fmt.Println("--- Logger Stress Test ---")

	_ = os.RemoveAll(logsDir) // Clean previous run's directory before starting
	if err := seedStaleFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed stale files: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d stale session files in %s\n", staleFiles, logsDir)

	// --- Initialize Logger ---
	var err error
	logger, err = filelog.NewBuilder().
		Directory(logsDir).
		Level(filelog.LevelVerbose).
		MaxLogs(3).
		InternalErrorsToStderr(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	stats := logger.Stats()
	fmt.Printf("Logger initialized: %s (deleted %d, failed %d)\n",
		logger.FilePath(), stats.Deletions, stats.FailedDeletions)

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	// --- Setup Workers and Signal Handling ---
	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(burstChan, &wg, &completedBursts)
	}

	// --- Run Test ---
	startTime := time.Now()
submit:
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			break submit
		}
	}
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		logsPerSec := float64(finalCompleted*logsPerBurst) / duration.Seconds()
		fmt.Printf("Approximate Logs/sec: %.2f\n", logsPerSec)
	}

	stats = logger.Stats()
	fmt.Printf("Written: %d, write failures: %d, deletions: %d, failed deletions: %d\n",
		stats.LogsWritten, stats.WriteFailures, stats.Deletions, stats.FailedDeletions)

	entries, _ := os.ReadDir(logsDir)
	fmt.Printf("Files left in '%s': %d\n", logsDir, len(entries))
}
