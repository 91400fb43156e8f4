package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/shandysiswandi/pwstore/internal/pkg/instrument"
)

// Run executes the command selected by args and prints any error to stderr.
// Use goerror.ExitCode on the result to pick the process exit status.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	err := a.root.ExecuteContext(instrument.WithCorrelationID(ctx))
	if err != nil {
		fmt.Fprintf(a.root.ErrOrStderr(), "%s: %s\n", a.root.Name(), errorMessage(err))
	}

	return err
}

// Stop flushes telemetry and closes resources.
func (a *App) Stop(ctx context.Context) {
	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
}

func errorMessage(err error) string {
	var ge *goerror.Error
	if !errors.As(err, &ge) {
		return err.Error()
	}

	fields := ge.Fields()
	if len(fields) == 0 {
		return ge.Error()
	}

	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, k+" "+fields[k])
	}

	return ge.Error() + ": " + strings.Join(parts, ", ")
}
