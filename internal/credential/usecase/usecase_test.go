package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shandysiswandi/pwstore/internal/pkg/clock"
	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
	"github.com/shandysiswandi/pwstore/internal/pkg/instrument"
	"github.com/shandysiswandi/pwstore/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password []byte) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(password []byte, encoded string) (bool, error) {
	args := m.Called(password, encoded)
	return args.Bool(0), args.Error(1)
}

func (m *mockHasher) NeedsRehash(encoded string) (bool, error) {
	args := m.Called(encoded)
	return args.Bool(0), args.Error(1)
}

func (m *mockHasher) Params() hash.Params {
	args := m.Called()
	return args.Get(0).(hash.Params)
}

func newTestUsecase(t *testing.T, h hasher) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	uc, err := New(Dependency{
		Hasher:       h,
		Validator:    v,
		Clock:        clock.New(),
		Instrument:   instrument.NewNoop(),
		MaxGoroutine: 4,
	})
	require.NoError(t, err)

	return uc
}

func newFastHasher(t *testing.T) *hash.PBKDF2 {
	t.Helper()

	p := hash.DefaultParams()
	p.Iterations = testIterations

	h, err := hash.NewPBKDF2(p)
	require.NoError(t, err)

	return h
}

func TestUsecase_CreateAndVerify(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, newFastHasher(t))

	created, err := uc.CreateHash(ctx, CreateHashInput{Password: []byte("correct horse")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Hash, "sha1:1000:18:"))

	out, err := uc.VerifyPassword(ctx, VerifyPasswordInput{Password: []byte("correct horse"), StoredHash: created.Hash})
	require.NoError(t, err)
	assert.True(t, out.Match)
	assert.False(t, out.NeedsRehash)

	out, err = uc.VerifyPassword(ctx, VerifyPasswordInput{Password: []byte("battery staple"), StoredHash: created.Hash})
	require.NoError(t, err)
	assert.False(t, out.Match)
}

func TestUsecase_VerifyPassword_Errors(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, newFastHasher(t))

	tests := []struct {
		name     string
		stored   string
		sentinel error
		exitCode int
	}{
		{name: "empty", stored: "", sentinel: hash.ErrInvalidHash, exitCode: 3},
		{name: "missing fields", stored: "sha1:1000:18:AAAA", sentinel: hash.ErrInvalidHash, exitCode: 3},
		{name: "bad iterations", stored: "sha1:abc:3:AAAA:AAAA", sentinel: hash.ErrInvalidHash, exitCode: 3},
		{name: "unknown algorithm", stored: "sha256:1000:3:AAAA:AAAA", sentinel: hash.ErrCannotPerform, exitCode: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.VerifyPassword(ctx, VerifyPasswordInput{Password: []byte("x"), StoredHash: tt.stored})
			assert.Nil(t, out)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.exitCode, goerror.ExitCode(err))
		})
	}
}

func TestUsecase_VerifyPassword_NeedsRehash(t *testing.T) {
	ctx := context.Background()

	weak, err := hash.NewPBKDF2(hash.Params{Iterations: 500, SaltSize: 24, HashSize: 18})
	require.NoError(t, err)
	stored, err := weak.Hash([]byte("pw"))
	require.NoError(t, err)

	uc := newTestUsecase(t, newFastHasher(t))

	out, err := uc.VerifyPassword(ctx, VerifyPasswordInput{Password: []byte("pw"), StoredHash: stored})
	require.NoError(t, err)
	assert.True(t, out.Match)
	assert.True(t, out.NeedsRehash)
}

func TestUsecase_CreateHash_HasherFailure(t *testing.T) {
	m := new(mockHasher)
	m.On("Hash", []byte("pw")).Return("", errors.New("entropy exhausted"))

	uc := newTestUsecase(t, m)

	out, err := uc.CreateHash(context.Background(), CreateHashInput{Password: []byte("pw")})
	assert.Nil(t, out)
	require.Error(t, err)

	var ge *goerror.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, goerror.TypeServer, ge.Type())
	assert.Equal(t, 1, goerror.ExitCode(err))
	m.AssertExpectations(t)
}

func TestUsecase_Inspect(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, newFastHasher(t))

	out, err := uc.Inspect(ctx, InspectInput{
		StoredHash: "sha1:64000:18:AAECAwQFBgcICQoLDA0ODxAREhMUFRYX:ZLuPCqQCyEMxLBGCwOW123kF",
	})
	require.NoError(t, err)
	assert.Equal(t, &InspectOutput{
		Algorithm:   "sha1",
		Iterations:  64000,
		HashSize:    18,
		SaltSize:    24,
		NeedsRehash: false,
	}, out)

	out, err = uc.Inspect(ctx, InspectInput{StoredHash: "sha1:64000:18"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, hash.ErrInvalidHash)
}

func TestUsecase_Audit(t *testing.T) {
	ctx := context.Background()
	h := newFastHasher(t)
	uc := newTestUsecase(t, h)

	current, err := h.Hash([]byte("a"))
	require.NoError(t, err)

	hashes := []string{
		current,
		"sha1:10:18:AAECAwQFBgcICQoLDA0ODxAREhMUFRYX:ZLuPCqQCyEMxLBGCwOW123kF",
		"not a hash",
		"md5:1000:3:AAAA:AAAA",
	}

	out, err := uc.Audit(ctx, AuditInput{Hashes: hashes, Workers: 2})
	require.NoError(t, err)
	require.Len(t, out.Results, 4)

	assert.Equal(t, OutcomeOK, out.Results[0].Status)
	assert.Equal(t, testIterations, out.Results[0].Iterations)
	assert.Equal(t, OutcomeNeedsRehash, out.Results[1].Status)
	assert.Equal(t, OutcomeInvalid, out.Results[2].Status)
	assert.Equal(t, "fields are missing from the password hash", out.Results[2].Reason)
	assert.Equal(t, OutcomeUnsupported, out.Results[3].Status)

	for i, r := range out.Results {
		assert.Equal(t, i, r.Index)
	}

	assert.Equal(t, map[string]int{
		OutcomeOK:          1,
		OutcomeNeedsRehash: 1,
		OutcomeInvalid:     1,
		OutcomeUnsupported: 1,
	}, out.Summary)
}

func TestUsecase_Audit_Empty(t *testing.T) {
	uc := newTestUsecase(t, newFastHasher(t))

	out, err := uc.Audit(context.Background(), AuditInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.Equal(t, 0, out.Summary[OutcomeOK])
}

func TestUsecase_Audit_InvalidInput(t *testing.T) {
	uc := newTestUsecase(t, newFastHasher(t))

	out, err := uc.Audit(context.Background(), AuditInput{Workers: -1})
	assert.Nil(t, out)

	var ge *goerror.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, goerror.CodeInvalidInput, ge.Code())
	assert.Contains(t, ge.Fields(), "workers")
}

func TestUsecase_Audit_Canceled(t *testing.T) {
	uc := newTestUsecase(t, newFastHasher(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := uc.Audit(ctx, AuditInput{Hashes: []string{"a", "b", "c", "d", "e", "f"}, Workers: 1})
	assert.Nil(t, out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, goerror.ExitCode(err))
}

func TestUsecase_SelfTest(t *testing.T) {
	uc := newTestUsecase(t, newFastHasher(t))

	out, err := uc.SelfTest(context.Background(), SelfTestInput{Iterations: 100})
	require.NoError(t, err)
	assert.True(t, out.Passed)
	require.Len(t, out.Checks, 12)

	names := make([]string, 0, len(out.Checks))
	for _, c := range out.Checks {
		assert.True(t, c.Passed, c.Name)
		assert.Empty(t, c.Detail)
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "truncation")
	assert.Contains(t, names, "algorithm_swap")
	assert.Contains(t, names, "basic/9")
}

func TestUsecase_SelfTest_InvalidInput(t *testing.T) {
	uc := newTestUsecase(t, newFastHasher(t))

	out, err := uc.SelfTest(context.Background(), SelfTestInput{Iterations: -5})
	assert.Nil(t, out)
	assert.Equal(t, 3, goerror.ExitCode(err))
}
