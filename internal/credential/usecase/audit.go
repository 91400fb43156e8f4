package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/shandysiswandi/pwstore/internal/pkg/goroutine"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
	"github.com/shandysiswandi/pwstore/internal/pkg/validator"
)

type AuditInput struct {
	Hashes []string
	// Workers overrides the configured concurrency when positive.
	Workers int `validate:"gte=0,lte=1024"`
}

type AuditResult struct {
	// Index is the zero-based position of the hash in the input.
	Index      int    `json:"index"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
}

type AuditOutput struct {
	Results []AuditResult  `json:"results"`
	Summary map[string]int `json:"summary"`
}

// Audit classifies every stored hash as ok, needs_rehash, invalid or
// unsupported. It never derives keys, so it is safe to run on large exports.
func (s *Usecase) Audit(ctx context.Context, in AuditInput) (*AuditOutput, error) {
	ctx, span := s.startSpan(ctx, "Audit")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.WarnContext(ctx, "invalid audit input", "error", err)
		return nil, validationError(err)
	}

	workers := s.maxGoroutine
	if in.Workers > 0 {
		workers = in.Workers
	}

	results := make([]AuditResult, len(in.Hashes))
	mgr := goroutine.NewManager(workers)
	for i, stored := range in.Hashes {
		mgr.Go(ctx, func(ctx context.Context) error {
			results[i] = s.auditOne(i, stored)
			return nil
		})
	}

	if err := mgr.Wait(); err != nil {
		slog.ErrorContext(ctx, "audit interrupted", "error", err)
		s.record(ctx, span, "audit", OutcomeError)
		return nil, goerror.NewServer(err)
	}

	summary := lo.CountValuesBy(results, func(r AuditResult) string { return r.Status })
	for _, status := range []string{OutcomeOK, OutcomeNeedsRehash, OutcomeInvalid, OutcomeUnsupported} {
		if _, ok := summary[status]; !ok {
			summary[status] = 0
		}
	}

	slog.InfoContext(ctx, "audit finished",
		"total", len(results),
		"ok", summary[OutcomeOK],
		"needs_rehash", summary[OutcomeNeedsRehash],
		"invalid", summary[OutcomeInvalid],
		"unsupported", summary[OutcomeUnsupported],
	)
	s.record(ctx, span, "audit", OutcomeOK)

	return &AuditOutput{Results: results, Summary: summary}, nil
}

func (s *Usecase) auditOne(index int, stored string) AuditResult {
	enc, err := hash.Parse(stored)
	if err != nil {
		return AuditResult{Index: index, Status: outcomeOf(err), Reason: reasonOf(err)}
	}

	needsRehash, err := s.hasher.NeedsRehash(stored)
	if err != nil {
		return AuditResult{Index: index, Status: outcomeOf(err), Reason: reasonOf(err)}
	}

	status := OutcomeOK
	if needsRehash {
		status = OutcomeNeedsRehash
	}

	return AuditResult{Index: index, Status: status, Iterations: enc.Iterations}
}

func reasonOf(err error) string {
	var ge *goerror.Error
	if errors.As(err, &ge) && ge.Msg() != "" {
		return ge.Msg()
	}

	return err.Error()
}

func validationError(err error) error {
	var verr validator.V10ValidationError
	if errors.As(err, &verr) {
		kv := make([]string, 0, len(verr)*2)
		for k, v := range verr {
			kv = append(kv, k, v)
		}
		return goerror.NewInvalidInput(nil, kv...)
	}

	return goerror.NewInvalidInput(err)
}
