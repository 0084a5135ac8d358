package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────── Stream ────────

func TestStream_PrimesUpTo30(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, Primes(30))
}

func TestStream_LimitIsInclusive(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13}, Primes(13))
}

func TestStream_LimitBelowTwoIsEmpty(t *testing.T) {
	assert.Empty(t, Primes(1))
	assert.Empty(t, Primes(0))
	assert.Empty(t, Primes(-5))
}

func TestStream_ExhaustedStreamStaysExhausted(t *testing.T) {
	s := New(5)
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestStream_IndependentStreamsYieldSameSequence(t *testing.T) {
	first := Primes(1000)
	second := Primes(1000)
	require.Equal(t, first, second)
	assert.Equal(t, 168, len(first)) // π(1000)
}

// ──────── MaxPowerBelow ────────

func TestMaxPowerBelow_ExactBoundary(t *testing.T) {
	// 2^3 = 8 <= 8, 2^4 = 16 > 8
	exp, pow := MaxPowerBelow(2, 8)
	assert.Equal(t, int64(3), exp)
	assert.Equal(t, int64(8), pow)
}

func TestMaxPowerBelow_TypicalBound(t *testing.T) {
	exp, pow := MaxPowerBelow(2, 10)
	assert.Equal(t, int64(3), exp)
	assert.Equal(t, int64(8), pow)

	exp, pow = MaxPowerBelow(3, 10)
	assert.Equal(t, int64(2), exp)
	assert.Equal(t, int64(9), pow)

	exp, pow = MaxPowerBelow(7, 10)
	assert.Equal(t, int64(1), exp)
	assert.Equal(t, int64(7), pow)
}

func TestMaxPowerBelow_PrimeAboveLimit(t *testing.T) {
	exp, pow := MaxPowerBelow(11, 10)
	assert.Equal(t, int64(0), exp)
	assert.Equal(t, int64(1), pow)
}

func TestMaxPowerBelow_LargeLimitNoOverflow(t *testing.T) {
	// 2^62 fits int64, 2^63 does not
	exp, pow := MaxPowerBelow(2, 1<<62)
	assert.Equal(t, int64(62), exp)
	assert.Equal(t, int64(1)<<62, pow)
}
