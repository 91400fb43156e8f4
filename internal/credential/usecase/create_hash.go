package usecase

import (
	"context"
	"log/slog"
)

type CreateHashInput struct {
	Password []byte
}

type CreateHashOutput struct {
	Hash string
}

func (s *Usecase) CreateHash(ctx context.Context, in CreateHashInput) (*CreateHashOutput, error) {
	ctx, span := s.startSpan(ctx, "CreateHash")
	defer span.End()

	var (
		encoded string
		err     error
	)
	s.timed(ctx, "create", func() {
		encoded, err = s.hasher.Hash(in.Password)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create password hash", "error", err)
		s.record(ctx, span, "create", outcomeOf(err))
		return nil, classify(err)
	}

	params := s.hasher.Params()
	slog.InfoContext(ctx, "password hash created", "iterations", params.Iterations, "hash_size", params.HashSize)
	s.record(ctx, span, "create", OutcomeOK)

	return &CreateHashOutput{Hash: encoded}, nil
}
