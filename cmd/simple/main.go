package main

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/filelog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[filelog]
  level = "information|warning|error"
  exact = false
  directory = "./simple_logs"
  extension = "log"
  max_logs = 3
  internal_errors_to_stderr = true
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	// Create dummy config file
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults, a missing file is not an error
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := filelog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Logger ---
	if err = filelog.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logger initialized, writing to: %s\n", filelog.Default().FilePath())

	// Second initialization is a no-op
	_ = filelog.Initialize(filelog.LevelDebug, false, 10)

	// --- Logging ---
	filelog.Debug(filelog.Source(), "This debug message is filtered out.")
	filelog.Information(filelog.Source(), "Application starting...")
	filelog.Warning(filelog.Source(), map[string]float64{"threshold": 0.95})
	filelog.ErrorErr(filelog.Source(), fmt.Errorf("query users: %w", errors.New("connection reset")), "An error occurred!")

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			filelog.Information(filelog.Source(), fmt.Sprintf("Goroutine %d started", id))
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			filelog.Information(filelog.Source(), fmt.Sprintf("Goroutine %d finished", id))
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	// Entries are written synchronously, nothing to flush
	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log files in './simple_logs' and the config '%s'.\n", configFile)
}
