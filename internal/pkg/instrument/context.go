package instrument

import (
	"context"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID returns a child context carrying a fresh time-ordered
// correlation id, which every log record written with that context includes.
func WithCorrelationID(ctx context.Context) context.Context {
	id, err := uuid.NewV7()
	if err != nil {
		return context.WithValue(ctx, correlationKey{}, uuid.NewString()) // fallback: uuidV4
	}

	return context.WithValue(ctx, correlationKey{}, id.String())
}

// GetCorrelationID returns the correlation id stored in ctx, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	cID, _ := ctx.Value(correlationKey{}).(string)
	return cID
}
