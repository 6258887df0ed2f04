// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/filelog"
	"github.com/lixenwraith/filelog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger := filelog.NewLogger()
	err := logger.InitWithOverrides(
		"directory=/var/log/fasthttp",
		"level=information",
	)
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(filelog.LevelInformation),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.ErrorErr("main", err, "fasthttp server stopped")
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) filelog.Level {
	// Inspect specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return filelog.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return filelog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
