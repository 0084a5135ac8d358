package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────── ParseNum ────────

func TestParseNum_Decimal(t *testing.T) {
	n, err := ParseNum("8051")
	require.NoError(t, err)
	assert.Equal(t, int64(8051), n.Int64())
}

func TestParseNum_Hex(t *testing.T) {
	n, err := ParseNum("0x1F73")
	require.NoError(t, err)
	assert.Equal(t, int64(8051), n.Int64())
}

func TestParseNum_Underscores(t *testing.T) {
	n, err := ParseNum("1_000_003")
	require.NoError(t, err)
	assert.Equal(t, int64(1000003), n.Int64())
}

func TestParseNum_Negative(t *testing.T) {
	// Negative values parse fine here; the factor core rejects them itself.
	n, err := ParseNum("-5")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), n.Int64())
}

func TestParseNum_BiggerThanMachineWord(t *testing.T) {
	n, err := ParseNum("273966616513101251352941655302036077733021013991")
	require.NoError(t, err)
	expected, ok := new(big.Int).SetString("273966616513101251352941655302036077733021013991", 10)
	require.True(t, ok)
	assert.Zero(t, n.Cmp(expected))
}

func TestParseNum_Whitespace(t *testing.T) {
	n, err := ParseNum("  42\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Int64())
}

func TestParseNum_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "12a3", "0x", "--5"} {
		_, err := ParseNum(s)
		assert.Error(t, err, "input %q", s)
	}
}

// ──────── StringInSlice ────────

func TestStringInSlice_Found(t *testing.T) {
	assert.True(t, StringInSlice("rho", []string{"pminus1", "rho", "trial"}))
}

func TestStringInSlice_NotFound(t *testing.T) {
	assert.False(t, StringInSlice("ecm", []string{"pminus1", "rho"}))
	assert.False(t, StringInSlice("any", nil))
}
