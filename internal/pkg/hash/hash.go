package hash

import (
	"errors"

	"github.com/shandysiswandi/pwstore/internal/pkg/goerror"
)

const (
	// AlgorithmSHA1 is the PRF tag written into every hash this build creates.
	AlgorithmSHA1 = "sha1"

	// DefaultSaltSize is the number of random salt bytes drawn per hash.
	DefaultSaltSize = 24
	// DefaultHashSize is the byte length of the derived key.
	DefaultHashSize = 18
	// DefaultIterations is the PBKDF2 round count for new hashes.
	DefaultIterations = 64000
)

// These constants define the encoding and may not be changed.
const (
	hashSections   = 5
	algorithmIndex = 0
	iterationIndex = 1
	hashSizeIndex  = 2
	saltIndex      = 3
	pbkdf2Index    = 4
	fieldSeparator = ":"
)

var (
	// ErrInvalidHash marks a stored hash that is structurally or numerically malformed.
	ErrInvalidHash = errors.New("invalid hash")

	// ErrCannotPerform marks a request this build cannot evaluate, such as an
	// unknown algorithm tag or parameters the KDF provider rejects.
	ErrCannotPerform = errors.New("cannot perform operation")
)

// Hash creates and verifies encoded password hashes.
type Hash interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, encoded string) (bool, error)
}

// Params holds the tunable inputs for new hashes. The algorithm tag is fixed
// per build and is not part of Params.
type Params struct {
	Iterations int
	SaltSize   int
	HashSize   int
}

// DefaultParams returns the parameters used by CreateHash.
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		SaltSize:   DefaultSaltSize,
		HashSize:   DefaultHashSize,
	}
}

func (p Params) validate() error {
	if p.Iterations < 1 {
		return goerror.NewInvalidInput(nil, "iterations", "must be at least 1")
	}
	if p.SaltSize < 1 {
		return goerror.NewInvalidInput(nil, "salt_size", "must be at least 1")
	}
	if p.HashSize < 1 {
		return goerror.NewInvalidInput(nil, "hash_size", "must be at least 1")
	}

	return nil
}

func invalidHash(msg string) error {
	return goerror.NewInvalidFormat(ErrInvalidHash, msg)
}

func cannotPerform(msg string) error {
	return goerror.NewUnsupported(ErrCannotPerform, msg)
}
