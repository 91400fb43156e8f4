package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	const encoded = "sha1:1000:18:AAECAwQFBgcICQoLDA0ODxAREhMUFRYX:EsYDfCBKIN0cm0gCqCDupVdn"

	enc, err := Parse(encoded)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmSHA1, enc.Algorithm)
	assert.Equal(t, 1000, enc.Iterations)
	assert.Equal(t, 18, enc.HashSize)
	assert.Len(t, enc.Salt, 24)
	assert.Equal(t, byte(0x17), enc.Salt[23])
	assert.Len(t, enc.Key, 18)
	assert.Equal(t, encoded, enc.String())
}

func TestParse_ErrorMessages(t *testing.T) {
	_, err := Parse("sha1:64000")
	assert.EqualError(t, err, "invalid hash: fields are missing from the password hash")

	_, err = Parse("sha256:1:1:AA==:AA==")
	assert.EqualError(t, err, "cannot perform operation: unsupported hash type")

	_, err = Parse("sha1:ten:1:AA==:AA==")
	assert.EqualError(t, err, "invalid hash: invalid number of iterations: ten")
}
