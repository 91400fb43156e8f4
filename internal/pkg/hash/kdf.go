package hash

import (
	"crypto/sha1" //nolint:gosec // PBKDF2-HMAC-SHA1 is the wire-compatible default PRF
	gohash "hash"

	"golang.org/x/crypto/pbkdf2"
)

// prfs lists the pseudorandom functions this build can evaluate. Exactly one
// family is compiled in; anything else is rejected before derivation.
var prfs = map[string]func() gohash.Hash{
	AlgorithmSHA1: sha1.New,
}

func supported(algorithm string) bool {
	_, ok := prfs[algorithm]
	return ok
}

// derive runs PBKDF2 and returns exactly keyLen bytes.
func derive(algorithm string, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	prf, ok := prfs[algorithm]
	if !ok {
		return nil, cannotPerform("hash algorithm not supported")
	}
	if iterations < 1 || keyLen < 1 {
		return nil, cannotPerform("invalid key derivation parameters")
	}

	return pbkdf2.Key(password, salt, iterations, keyLen, prf), nil
}
