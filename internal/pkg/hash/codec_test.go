package hash

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	for size := 0; size <= 64; size++ {
		b := make([]byte, size)
		_, err := rand.Read(b)
		require.NoError(t, err)

		got, err := DecodeText(EncodeText(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func TestCodec_Lengths(t *testing.T) {
	assert.Len(t, EncodeText(make([]byte, DefaultSaltSize)), 32)
	assert.Len(t, EncodeText(make([]byte, DefaultHashSize)), 24)
}

func TestDecodeText_Malformed(t *testing.T) {
	for _, in := range []string{"abc", "!!!!", "AAAA=", "AA=A"} {
		_, err := DecodeText(in)
		assert.Error(t, err, in)
	}
}
