// FILE: example/reconfig/main.go
package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/filelog"
)

// Race many initialization attempts while logging, only the first one takes effect
func main() {
	var count atomic.Int64
	dir, err := os.MkdirTemp("", "filelog-reconfig-")
	if err != nil {
		fmt.Printf("Temp dir error: %v\n", err)
		return
	}

	logger := filelog.NewLogger()

	// Log something constantly, entries before initialization are dropped
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			logger.Information("producer", fmt.Sprintf("Test log %d", i))
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Trigger multiple initializations concurrently
	var initWg sync.WaitGroup
	for i := 0; i < 10; i++ {
		initWg.Add(1)
		go func(n uint) {
			defer initWg.Done()
			if err := logger.InitializeDir(dir, filelog.LevelAll, false, n+1); err != nil {
				fmt.Printf("Init error: %v\n", err)
			}
		}(uint(i))
	}
	initWg.Wait()

	time.Sleep(100 * time.Millisecond)
	close(stop)
	wg.Wait()

	entries, _ := os.ReadDir(dir)
	stats := logger.Stats()
	fmt.Printf("Session file: %s\n", logger.FilePath())
	fmt.Printf("Files in directory: %d (expected 1)\n", len(entries))
	fmt.Printf("Logs attempted: %d, written: %d\n", count.Load(), stats.LogsWritten)
}
