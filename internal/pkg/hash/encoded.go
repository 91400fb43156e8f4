package hash

import (
	"strconv"
	"strings"
)

// Encoded is the parsed form of a stored password hash.
type Encoded struct {
	Algorithm  string
	Iterations int
	HashSize   int
	Salt       []byte
	Key        []byte
}

// String serializes e into the five-field wire format.
func (e *Encoded) String() string {
	var b strings.Builder
	b.WriteString(e.Algorithm)
	b.WriteString(fieldSeparator)
	b.WriteString(strconv.Itoa(e.Iterations))
	b.WriteString(fieldSeparator)
	b.WriteString(strconv.Itoa(len(e.Key)))
	b.WriteString(fieldSeparator)
	b.WriteString(EncodeText(e.Salt))
	b.WriteString(fieldSeparator)
	b.WriteString(EncodeText(e.Key))

	return b.String()
}

// Parse splits and validates a stored hash without deriving anything.
//
// Structural problems wrap ErrInvalidHash. An unknown algorithm tag wraps
// ErrCannotPerform; it is checked right after the field count so that a
// hash from another build is never reported as corrupt.
func Parse(encoded string) (*Encoded, error) {
	params := strings.Split(encoded, fieldSeparator)
	if len(params) != hashSections {
		return nil, invalidHash("fields are missing from the password hash")
	}

	if !supported(params[algorithmIndex]) {
		return nil, cannotPerform("unsupported hash type")
	}

	iterations, err := strconv.Atoi(params[iterationIndex])
	if err != nil || iterations < 1 {
		return nil, invalidHash("invalid number of iterations: " + params[iterationIndex])
	}

	salt, err := DecodeText(params[saltIndex])
	if err != nil {
		return nil, invalidHash("base64 decoding of salt failed")
	}

	key, err := DecodeText(params[pbkdf2Index])
	if err != nil {
		return nil, invalidHash("base64 decoding of pbkdf2 output failed")
	}

	storedHashSize, err := strconv.Atoi(params[hashSizeIndex])
	if err != nil {
		return nil, invalidHash("could not parse the hash size as an integer: " + params[hashSizeIndex])
	}

	if storedHashSize != len(key) {
		return nil, invalidHash("hash length doesn't match stored hash length")
	}

	if storedHashSize < 1 {
		return nil, invalidHash("hash length must be positive")
	}

	return &Encoded{
		Algorithm:  params[algorithmIndex],
		Iterations: iterations,
		HashSize:   storedHashSize,
		Salt:       salt,
		Key:        key,
	}, nil
}
