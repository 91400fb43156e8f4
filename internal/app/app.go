package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shandysiswandi/pwstore/internal/pkg/clock"
	"github.com/shandysiswandi/pwstore/internal/pkg/config"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
	"github.com/shandysiswandi/pwstore/internal/pkg/instrument"
	"github.com/shandysiswandi/pwstore/internal/pkg/validator"
	"github.com/spf13/cobra"
)

// App wires dependencies and manages the command lifecycle.
type App struct {
	// configuration
	config config.Config
	ins    instrument.Instrumentation
	logOut io.Writer

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	hasher    *hash.PBKDF2

	// command tree
	root *cobra.Command

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application from CONFIG_PATH (or ./config/config.yaml
// when present) and exits the process if wiring fails.
func New() *App {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	app, err := build(cfg, os.Stderr)
	if err != nil {
		slog.Error("failed to init application", "error", err)
		os.Exit(1)
	}

	return app
}

func build(cfg config.Config, logOut io.Writer) (*App, error) {
	app := &App{config: cfg, logOut: logOut}

	steps := []func() error{
		app.initInstrument,
		app.initLibraries,
		app.initCommand,
		app.initModules,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	app.initClosers()

	return app, nil
}
