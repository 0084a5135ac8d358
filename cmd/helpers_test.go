package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestIsJSONFile(t *testing.T) {
	assert.True(t, isJSONFile("moduli.json"))
	assert.True(t, isJSONFile("MODULI.JSON"))
	assert.False(t, isJSONFile("moduli.txt"))
	assert.False(t, isJSONFile("moduli"))
}

func TestParseBound(t *testing.T) {
	bound, err := parseBound("100")
	assert.NoError(t, err)
	assert.Equal(t, 100, bound)

	bound, err = parseBound("")
	assert.NoError(t, err)
	assert.Zero(t, bound)

	_, err = parseBound("ten")
	assert.Error(t, err)
}

func TestApplyDefaults_FillsUnsetOnly(t *testing.T) {
	viper.Set("bound", 12345)
	viper.Set("attempts", 7)
	viper.Set("parallel", 2)
	viper.Set("method", "rho")
	viper.Set("listenAddr", ":9000")
	defer viper.Reset()

	bound, attempts, parallel := 0, 5, 0
	method, listenAddr := "", ""
	applyDefaults(&bound, &attempts, &parallel, &method, &listenAddr)

	assert.Equal(t, 12345, bound)
	assert.Equal(t, 5, attempts, "explicit flag value must win")
	assert.Equal(t, 2, parallel)
	assert.Equal(t, "rho", method)
	assert.Equal(t, ":9000", listenAddr)
}
