package usecase

import (
	"context"
	"log/slog"
)

type VerifyPasswordInput struct {
	Password   []byte
	StoredHash string
}

type VerifyPasswordOutput struct {
	Match bool
	// NeedsRehash is only meaningful when Match is true.
	NeedsRehash bool
}

// VerifyPassword checks a password against its stored hash. A wrong password
// is a normal result (Match false, nil error). Errors mean the stored hash
// cannot be evaluated and are logged at error level for follow-up.
func (s *Usecase) VerifyPassword(ctx context.Context, in VerifyPasswordInput) (*VerifyPasswordOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyPassword")
	defer span.End()

	var (
		match bool
		err   error
	)
	s.timed(ctx, "verify", func() {
		match, err = s.hasher.Verify(in.Password, in.StoredHash)
	})
	if err != nil {
		outcome := outcomeOf(err)
		switch outcome {
		case OutcomeInvalid:
			slog.ErrorContext(ctx, "stored password hash is malformed", "error", err)
		case OutcomeUnsupported:
			slog.ErrorContext(ctx, "stored password hash cannot be evaluated by this build", "error", err)
		default:
			slog.ErrorContext(ctx, "failed to verify password", "error", err)
		}
		s.record(ctx, span, "verify", outcome)
		return nil, classify(err)
	}

	if !match {
		slog.WarnContext(ctx, "password does not match stored hash")
		s.record(ctx, span, "verify", OutcomeMismatch)
		return &VerifyPasswordOutput{Match: false}, nil
	}

	needsRehash, err := s.hasher.NeedsRehash(in.StoredHash)
	if err != nil {
		// Verify already parsed the same string, so this is unexpected.
		slog.ErrorContext(ctx, "failed to check rehash", "error", err)
		s.record(ctx, span, "verify", outcomeOf(err))
		return nil, classify(err)
	}

	if needsRehash {
		slog.InfoContext(ctx, "password verified, stored hash uses outdated parameters")
		s.record(ctx, span, "verify", OutcomeNeedsRehash)
	} else {
		s.record(ctx, span, "verify", OutcomeOK)
	}

	return &VerifyPasswordOutput{Match: true, NeedsRehash: needsRehash}, nil
}
