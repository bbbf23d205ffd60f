package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/di"
	"github.com/mikey/safe-inbox/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	frontend ports.Frontend,
	llmClient core.LLMClient,
	journal core.AnalysisJournal,
	store *core.Store,
) error {
	defer logger.Sync()

	logger.Info("Inbox loaded", zap.Int("messages", store.Len()))

	// Start the frontend
	if err := frontend.Start(); err != nil {
		logger.Error("Failed to start frontend", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var done <-chan struct{}
	if finisher, ok := frontend.(ports.Finisher); ok {
		done = finisher.Done()
	}

	select {
	case <-sigCh:
		logger.Info("Shutting down...")
	case <-done:
	}

	// Stop the frontend
	if err := frontend.Stop(); err != nil {
		logger.Error("Failed to stop frontend", zap.Error(err))
	}

	// Close any resources that need closing
	if closer, ok := llmClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close LLM client", zap.Error(err))
		}
	}

	// Stop the journal if needed
	if stopper, ok := journal.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")

	if finisher, ok := frontend.(ports.Finisher); ok {
		return finisher.Err()
	}
	return nil
}
