package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/shandysiswandi/pwstore/internal/pkg/goroutine"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
)

type SelfTestInput struct {
	// Iterations overrides the configured round count when positive. Lower
	// values make the run faster without changing what is checked.
	Iterations int `validate:"gte=0,lte=10000000"`
}

type SelfTestCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

type SelfTestOutput struct {
	Passed bool            `json:"passed"`
	Checks []SelfTestCheck `json:"checks"`
}

var errSelfTestFailed = errors.New("self-test failed")

type selfTestCase struct {
	name string
	run  func() error
}

// SelfTest exercises the hasher end to end: distinct salts, wrong and right
// passwords, truncated hashes and a swapped algorithm tag.
func (s *Usecase) SelfTest(ctx context.Context, in SelfTestInput) (*SelfTestOutput, error) {
	ctx, span := s.startSpan(ctx, "SelfTest")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.WarnContext(ctx, "invalid self-test input", "error", err)
		return nil, validationError(err)
	}

	params := s.hasher.Params()
	if in.Iterations > 0 {
		params.Iterations = in.Iterations
	}

	h, err := hash.NewPBKDF2(params)
	if err != nil {
		return nil, err
	}

	checks := []selfTestCase{
		{name: "truncation", run: func() error { return checkTruncation(h) }},
		{name: "algorithm_swap", run: func() error { return checkAlgorithmSwap(h) }},
	}
	for i := range 10 {
		checks = append(checks, selfTestCase{
			name: "basic/" + strconv.Itoa(i),
			run:  func() error { return checkBasic(h, i) },
		})
	}

	results := make([]SelfTestCheck, len(checks))
	mgr := goroutine.NewManager(s.maxGoroutine)
	for i, c := range checks {
		mgr.Go(ctx, func(ctx context.Context) error {
			results[i] = SelfTestCheck{Name: c.name, Passed: true}
			if err := c.run(); err != nil {
				results[i] = SelfTestCheck{Name: c.name, Detail: err.Error()}
			}
			return nil
		})
	}

	if err := mgr.Wait(); err != nil {
		slog.ErrorContext(ctx, "self-test interrupted", "error", err)
		s.record(ctx, span, "selftest", OutcomeError)
		return nil, goerror.NewServer(err)
	}

	out := &SelfTestOutput{Passed: true, Checks: results}
	for _, r := range results {
		if !r.Passed {
			out.Passed = false
			slog.ErrorContext(ctx, "self-test check failed", "check", r.Name, "detail", r.Detail)
		}
	}

	if !out.Passed {
		s.record(ctx, span, "selftest", OutcomeError)
		return out, goerror.NewServer(errSelfTestFailed)
	}

	slog.InfoContext(ctx, "self-test passed", "checks", len(results), "iterations", params.Iterations)
	s.record(ctx, span, "selftest", OutcomeOK)

	return out, nil
}

func checkBasic(h *hash.PBKDF2, i int) error {
	password := []byte(strconv.Itoa(i))
	wrong := []byte(strconv.Itoa(i + 1))

	first, err := h.Hash(password)
	if err != nil {
		return err
	}
	second, err := h.Hash(password)
	if err != nil {
		return err
	}
	if first == second {
		return errors.New("two hashes of the same password are equal")
	}

	ok, err := h.Verify(wrong, first)
	if err != nil {
		return err
	}
	if ok {
		return errors.New("wrong password accepted")
	}

	ok, err = h.Verify(password, first)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("good password not accepted")
	}

	return nil
}

// checkTruncation shortens a good hash one byte at a time until it is two
// characters past the last separator. Every prefix must be a format error.
func checkTruncation(h *hash.PBKDF2) error {
	password := []byte("password!")

	good, err := h.Hash(password)
	if err != nil {
		return err
	}

	for n := len(good) - 1; n >= 0; n-- {
		bad := good[:n]

		_, err := h.Verify(password, bad)
		if !errors.Is(err, hash.ErrInvalidHash) {
			return fmt.Errorf("truncated hash of length %d not rejected as invalid: %v", n, err)
		}

		if n >= 3 && bad[n-3] == ':' {
			break
		}
	}

	return nil
}

func checkAlgorithmSwap(h *hash.PBKDF2) error {
	password := []byte("foobar")

	good, err := h.Hash(password)
	if err != nil {
		return err
	}

	swapped := strings.Replace(good, hash.AlgorithmSHA1+":", "sha256:", 1)

	_, err = h.Verify(password, swapped)
	if !errors.Is(err, hash.ErrCannotPerform) {
		return fmt.Errorf("swapped algorithm tag not rejected as unsupported: %v", err)
	}

	return nil
}
