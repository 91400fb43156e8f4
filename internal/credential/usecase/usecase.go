package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/pwstore/internal/pkg/clock"
	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
	"github.com/shandysiswandi/pwstore/internal/pkg/instrument"
	"github.com/shandysiswandi/pwstore/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentName = "credential.usecase"

// Outcome labels recorded on the operations counter and in audit results.
const (
	OutcomeOK          = "ok"
	OutcomeMismatch    = "mismatch"
	OutcomeNeedsRehash = "needs_rehash"
	OutcomeInvalid     = "invalid"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

type hasher interface {
	hash.Hash
	NeedsRehash(encoded string) (bool, error)
	Params() hash.Params
}

type Usecase struct {
	hasher       hasher
	validator    validator.Validator
	clock        clock.Clocker
	ins          instrument.Instrumentation
	maxGoroutine int

	operations  metric.Int64Counter
	kdfDuration metric.Float64Histogram
}

type Dependency struct {
	Hasher       hasher
	Validator    validator.Validator
	Clock        clock.Clocker
	Instrument   instrument.Instrumentation
	MaxGoroutine int
}

func New(dep Dependency) (*Usecase, error) {
	meter := dep.Instrument.Meter(instrumentName)

	operations, err := meter.Int64Counter(
		"pwstore.credential.operations",
		metric.WithDescription("Credential operations by op and outcome."),
	)
	if err != nil {
		return nil, err
	}

	kdfDuration, err := meter.Float64Histogram(
		"pwstore.credential.kdf.duration",
		metric.WithDescription("Wall time spent in key derivation."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Usecase{
		hasher:       dep.Hasher,
		validator:    dep.Validator,
		clock:        dep.Clock,
		ins:          dep.Instrument,
		maxGoroutine: dep.MaxGoroutine,
		operations:   operations,
		kdfDuration:  kdfDuration,
	}, nil
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer(instrumentName).Start(ctx, name)
}

func (s *Usecase) record(ctx context.Context, span trace.Span, op, outcome string) {
	s.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
	span.SetAttributes(attribute.String("credential.outcome", outcome))
	if outcome == OutcomeInvalid || outcome == OutcomeUnsupported || outcome == OutcomeError {
		span.SetStatus(codes.Error, outcome)
	}
}

// timed runs a key derivation and records its duration.
func (s *Usecase) timed(ctx context.Context, op string, fn func()) {
	start := s.clock.Now()
	fn()
	elapsed := s.clock.Since(start)

	s.kdfDuration.Record(ctx, float64(elapsed.Microseconds())/1000, metric.WithAttributes(attribute.String("op", op)))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, hash.ErrInvalidHash):
		return OutcomeInvalid
	case errors.Is(err, hash.ErrCannotPerform):
		return OutcomeUnsupported
	default:
		return OutcomeError
	}
}

// classify passes hash-level format and unsupported errors through unchanged
// and wraps anything else as a server error.
func classify(err error) error {
	var ge *goerror.Error
	if errors.As(err, &ge) {
		return err
	}

	return goerror.NewServer(err)
}
