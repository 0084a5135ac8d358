package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfactor/PFactor-core/factor"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moduli.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ──────── LoadFile ────────

func TestLoadFile_PlainLines(t *testing.T) {
	path := writeBatchFile(t, "8051\n8633\n")
	targets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, int64(8051), targets[0].Num.Int64())
	assert.Equal(t, int64(8633), targets[1].Num.Int64())
}

func TestLoadFile_CSVFirstColumn(t *testing.T) {
	path := writeBatchFile(t, "8051,key1\n8633,key2,extra\n")
	targets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, int64(8051), targets[0].Num.Int64())
}

func TestLoadFile_CommentsAndBlanks(t *testing.T) {
	path := writeBatchFile(t, "# header\n\n8051\n\n# trailing\n")
	targets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
}

func TestLoadFile_Dedupe(t *testing.T) {
	// The same value in different notations still counts as a duplicate.
	path := writeBatchFile(t, "8051\n0x1F73\n8051\n")
	targets, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, targets, 1)
}

func TestLoadFile_InvalidLineReportsPosition(t *testing.T) {
	path := writeBatchFile(t, "8051\nnot-a-number\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

// ──────── LoadJSON ────────

func TestLoadJSON_StringArray(t *testing.T) {
	targets, err := LoadJSON([]byte(`["8051", "8633"]`))
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, int64(8051), targets[0].Num.Int64())
}

func TestLoadJSON_ObjectOverrides(t *testing.T) {
	targets, err := LoadJSON([]byte(`[{"num":"8051","bound":100,"attempts":10,"method":"pminus1"}]`))
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, int64(100), targets[0].Bound)
	assert.Equal(t, 10, targets[0].Attempts)
	assert.Equal(t, factor.PMinus1Method, targets[0].Method)
}

func TestLoadJSON_NotAnArray(t *testing.T) {
	_, err := LoadJSON([]byte(`{"num":"8051"}`))
	assert.Error(t, err)
}

func TestLoadJSON_BadEntry(t *testing.T) {
	_, err := LoadJSON([]byte(`["8051", "xyz"]`))
	assert.Error(t, err)
}

// ──────── Run ────────

func TestRun_PreservesOrderAndFactors(t *testing.T) {
	targets, err := LoadJSON([]byte(`["8051", "17", "8633"]`))
	require.NoError(t, err)

	base := factor.Config{Bound: 100, Attempts: 10, Seed: 1}
	outcomes := Run(targets, factor.PMinus1Method, base, 3)
	require.Len(t, outcomes, 3)

	// 8051 = 83*97 (96 = 2^5*3), 8633 = 89*97 (88 = 2^3*11): both smooth at B=100.
	require.NoError(t, outcomes[0].Err)
	assert.True(t, outcomes[0].Res.Found())
	assert.Equal(t, "8051", outcomes[0].Res.Num.String())

	require.NoError(t, outcomes[1].Err)
	assert.False(t, outcomes[1].Res.Found())

	require.NoError(t, outcomes[2].Err)
	assert.True(t, outcomes[2].Res.Found())
	assert.Equal(t, "8633", outcomes[2].Res.Num.String())
}

func TestRun_PerTargetOverrides(t *testing.T) {
	targets, err := LoadJSON([]byte(`[{"num":"8051","method":"trial","bound":100}]`))
	require.NoError(t, err)

	outcomes := Run(targets, factor.PMinus1Method, factor.Config{Bound: 5}, 1)
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)
	require.True(t, outcomes[0].Res.Found())
	assert.Equal(t, factor.TrialMethod, outcomes[0].Res.Method)
	assert.Equal(t, int64(83), outcomes[0].Res.Divisor.Int64())
}

func TestRun_NegativeTargetSurfacesError(t *testing.T) {
	targets, err := LoadJSON([]byte(`["-5"]`))
	require.NoError(t, err)

	outcomes := Run(targets, factor.PMinus1Method, factor.Config{}, 1)
	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].Err, factor.ErrInvalidInput)
}
