package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow_ZeroExponentIsIdentity(t *testing.T) {
	assert.Equal(t, 1, Pow(5, 0))
	assert.Equal(t, uint64(1), Pow(uint64(123456), 0))
	assert.Equal(t, 1.0, Pow(2.5, 0))
	assert.Equal(t, 1, Pow(0, 0))
}

func TestPow_MatchesRepeatedMultiplication(t *testing.T) {
	for _, base := range []int{-3, -1, 0, 1, 2, 7} {
		expected := 1
		for exp := uint(0); exp <= 10; exp++ {
			assert.Equalf(t, expected, Pow(base, exp), "base=%d exp=%d", base, exp)
			expected *= base
		}
	}
}

func TestPow_Float(t *testing.T) {
	assert.InDelta(t, 0.25, Pow(0.5, 2), 1e-12)
	assert.InDelta(t, 1024.0, Pow(2.0, 10), 1e-9)
}

func TestPow_UnsignedLargeExponent(t *testing.T) {
	// 2^62 still fits in uint64
	assert.Equal(t, uint64(1)<<62, Pow(uint64(2), 62))
}
