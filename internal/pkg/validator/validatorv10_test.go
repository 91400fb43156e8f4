package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleParams struct {
	Iterations int    `validate:"gte=1"`
	SaltSize   int    `validate:"gte=8,lte=1024"`
	StoredHash string `validate:"notblank"`
}

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(sampleParams{Iterations: 64000, SaltSize: 24, StoredHash: "sha1:"}))
	})

	t.Run("Invalid", func(t *testing.T) {
		err := v.Validate(sampleParams{Iterations: 0, SaltSize: 4, StoredHash: "   "})

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Values(), 3)
		assert.Contains(t, verr.Values(), "iterations")
		assert.Contains(t, verr.Values(), "salt_size")
		assert.Equal(t, "StoredHash must not be blank", verr.Values()["stored_hash"])
		assert.Contains(t, verr.Error(), "salt_size")
	})
}

func TestV10ValidationError_EmptyMessage(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
}
