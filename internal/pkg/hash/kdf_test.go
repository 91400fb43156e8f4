package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_KnownVectors(t *testing.T) {
	// RFC 6070 PBKDF2-HMAC-SHA1 test vectors.
	tests := []struct {
		iterations int
		want       string
	}{
		{iterations: 1, want: "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{iterations: 2, want: "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{iterations: 4096, want: "4b007901b765489abead49d926f721d065a429c1"},
	}

	for _, tt := range tests {
		got, err := derive(AlgorithmSHA1, []byte("password"), []byte("salt"), tt.iterations, 20)
		require.NoError(t, err)
		assert.Equal(t, tt.want, hex.EncodeToString(got), "iterations=%d", tt.iterations)
	}
}

func TestDerive_OutputLength(t *testing.T) {
	for _, n := range []int{1, 18, 20, 21, 64} {
		got, err := derive(AlgorithmSHA1, []byte("pw"), []byte("salt"), 1, n)
		require.NoError(t, err)
		assert.Len(t, got, n)
	}
}

func TestDerive_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		algorithm  string
		iterations int
		keyLen     int
	}{
		{name: "UnknownAlgorithm", algorithm: "sha256", iterations: 1, keyLen: 18},
		{name: "ZeroIterations", algorithm: AlgorithmSHA1, iterations: 0, keyLen: 18},
		{name: "ZeroLength", algorithm: AlgorithmSHA1, iterations: 1, keyLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := derive(tt.algorithm, []byte("pw"), []byte("salt"), tt.iterations, tt.keyLen)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrCannotPerform)
		})
	}
}
