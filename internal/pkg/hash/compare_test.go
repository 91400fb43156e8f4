package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantTimeEqual(t *testing.T) {
	tests := []struct {
		name string
		a    []byte
		b    []byte
		want bool
	}{
		{name: "BothNil", a: nil, b: nil, want: true},
		{name: "NilAndEmpty", a: nil, b: []byte{}, want: true},
		{name: "Equal", a: []byte("derived-key"), b: []byte("derived-key"), want: true},
		{name: "FirstByteDiffers", a: []byte("xerived-key"), b: []byte("derived-key"), want: false},
		{name: "LastByteDiffers", a: []byte("derived-kex"), b: []byte("derived-key"), want: false},
		{name: "Prefix", a: []byte("derived"), b: []byte("derived-key"), want: false},
		{name: "EmptyAgainstValue", a: []byte{}, b: []byte{0}, want: false},
		{name: "LengthOnlyDiffersInHighBit", a: make([]byte, 256), b: make([]byte, 0), want: false},
		{name: "DifferencesDoNotCancel", a: []byte{0x01, 0x01}, b: []byte{0x00, 0x00}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConstantTimeEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, ConstantTimeEqual(tt.b, tt.a))
		})
	}
}

func BenchmarkConstantTimeEqual(b *testing.B) {
	x := make([]byte, DefaultHashSize)
	early := make([]byte, DefaultHashSize)
	late := make([]byte, DefaultHashSize)
	early[0] = 1
	late[DefaultHashSize-1] = 1

	b.Run("EarlyDifference", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ConstantTimeEqual(x, early)
		}
	})

	b.Run("LateDifference", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ConstantTimeEqual(x, late)
		}
	})
}
