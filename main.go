package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shandysiswandi/pwstore/internal/app"
	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
)

func main() {
	application := app.New() // Initialize the application

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := application.Run(ctx, os.Args[1:]) // Run the selected command until it returns or is interrupted
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(shutdownCtx) // Flush telemetry and close resources
	cancel()

	os.Exit(goerror.ExitCode(err))
}
