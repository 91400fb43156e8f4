package hash

import (
	"crypto/rand"
	"fmt"
	"io"
)

// PBKDF2 implements Hash using PBKDF2-HMAC with the build's single PRF.
//
// A PBKDF2 value is immutable after construction and safe for concurrent use.
type PBKDF2 struct {
	params    Params
	algorithm string
	random    io.Reader
}

var defaultPBKDF2 = &PBKDF2{
	params:    DefaultParams(),
	algorithm: AlgorithmSHA1,
	random:    rand.Reader,
}

// NewPBKDF2 returns a hasher that creates new hashes with p. Existing hashes
// are always verified with the parameters stored inside them.
func NewPBKDF2(p Params) (*PBKDF2, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	return &PBKDF2{
		params:    p,
		algorithm: AlgorithmSHA1,
		random:    rand.Reader,
	}, nil
}

// Params returns the parameters used for new hashes.
func (h *PBKDF2) Params() Params {
	return h.params
}

// Hash derives a key from password and a fresh random salt and returns the
// encoded hash string.
func (h *PBKDF2) Hash(password []byte) (string, error) {
	salt := make([]byte, h.params.SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := derive(h.algorithm, password, salt, h.params.Iterations, h.params.HashSize)
	if err != nil {
		return "", err
	}

	enc := Encoded{
		Algorithm:  h.algorithm,
		Iterations: h.params.Iterations,
		HashSize:   len(key),
		Salt:       salt,
		Key:        key,
	}

	return enc.String(), nil
}

// Verify reports whether password matches the encoded hash.
//
// A mismatch is (false, nil). Errors are reserved for hashes that cannot be
// evaluated at all; see Parse for how they are classified.
func (h *PBKDF2) Verify(password []byte, encoded string) (bool, error) {
	enc, err := Parse(encoded)
	if err != nil {
		return false, err
	}

	key, err := derive(enc.Algorithm, password, enc.Salt, enc.Iterations, len(enc.Key))
	if err != nil {
		return false, err
	}

	return ConstantTimeEqual(enc.Key, key), nil
}

// NeedsRehash reports whether encoded was created with weaker or different
// parameters than h would use today. Callers typically rehash after the next
// successful Verify.
func (h *PBKDF2) NeedsRehash(encoded string) (bool, error) {
	enc, err := Parse(encoded)
	if err != nil {
		return false, err
	}

	if enc.Algorithm != h.algorithm {
		return true, nil
	}
	if enc.Iterations < h.params.Iterations {
		return true, nil
	}
	if len(enc.Key) != h.params.HashSize {
		return true, nil
	}
	if len(enc.Salt) < h.params.SaltSize {
		return true, nil
	}

	return false, nil
}

// CreateHash hashes password with DefaultParams.
func CreateHash(password []byte) (string, error) {
	return defaultPBKDF2.Hash(password)
}

// VerifyPassword checks password against a hash produced by CreateHash or any
// compatible encoder.
func VerifyPassword(password []byte, storedHash string) (bool, error) {
	return defaultPBKDF2.Verify(password, storedHash)
}
