// ./main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/folioengine/folio/cmd"
	"github.com/folioengine/folio/internal/observability"
)

// osExit allows mocking os.Exit in tests.
var osExit = os.Exit

// main is the entry point of the application.
func main() {
	// Set up a context that listens for interrupt signals (SIGINT, SIGTERM)
	// for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Graceful shutdown via signal still exits cleanly.
			osExit(0)
			return // Return facilitates testing when osExit is mocked.
		}
		osExit(1)
		return
	}
}
