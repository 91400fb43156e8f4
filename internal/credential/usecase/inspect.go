package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
)

type InspectInput struct {
	StoredHash string
}

// InspectOutput describes a stored hash without exposing salt or key bytes.
type InspectOutput struct {
	Algorithm   string `json:"algorithm"`
	Iterations  int    `json:"iterations"`
	HashSize    int    `json:"hash_size"`
	SaltSize    int    `json:"salt_size"`
	NeedsRehash bool   `json:"needs_rehash"`
}

func (s *Usecase) Inspect(ctx context.Context, in InspectInput) (*InspectOutput, error) {
	ctx, span := s.startSpan(ctx, "Inspect")
	defer span.End()

	enc, err := hash.Parse(in.StoredHash)
	if err != nil {
		slog.WarnContext(ctx, "stored password hash cannot be parsed", "error", err)
		s.record(ctx, span, "inspect", outcomeOf(err))
		return nil, classify(err)
	}

	needsRehash, err := s.hasher.NeedsRehash(in.StoredHash)
	if err != nil {
		s.record(ctx, span, "inspect", outcomeOf(err))
		return nil, classify(err)
	}

	s.record(ctx, span, "inspect", OutcomeOK)

	return &InspectOutput{
		Algorithm:   enc.Algorithm,
		Iterations:  enc.Iterations,
		HashSize:    enc.HashSize,
		SaltSize:    len(enc.Salt),
		NeedsRehash: needsRehash,
	}, nil
}
