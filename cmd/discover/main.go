package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sachin9536/SEM-Campaign-Automation/orchestrator"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the run on Ctrl+C / SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutdown signal received, canceling run...")
		cancel()
	}()

	if err := orchestrator.RunOnce(ctx); err != nil {
		log.Fatalf("Discovery run failed: %v", err)
	}
}
