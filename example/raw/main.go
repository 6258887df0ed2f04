// FILE: example/raw/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/filelog"
)

// TestPayload defines a struct for testing complex type rendering.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Logger Message Rendering Test ---")

	dir, err := os.MkdirTemp("", "filelog-raw-")
	if err != nil {
		fmt.Printf("Temp dir error: %v\n", err)
		return
	}

	logger, err := filelog.NewBuilder().Directory(dir).Build()
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}

	// A byte slice is written as text
	logger.Information("raw", []byte("binary data as text"))

	// Structs and maps are dumped
	logger.Information("raw", TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	})

	// Error details with the unwrapped chain
	cause := errors.New("disk quota exceeded")
	logger.ErrorErr("raw", fmt.Errorf("save report: %w", cause), "Report generation failed")

	content, err := os.ReadFile(logger.FilePath())
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}
	fmt.Print(string(content))
	fmt.Println("\n--- Test Complete ---")
}
