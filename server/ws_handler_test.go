package server

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWSConn struct {
	mu         sync.Mutex
	writes     []wsEnvelope
	closeCount int
}

func (f *fakeWSConn) WriteJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var msg wsEnvelope
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	f.mu.Lock()
	f.writes = append(f.writes, msg)
	f.mu.Unlock()
	return nil
}

func (f *fakeWSConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeWSConn) ReadJSON(v interface{}) error { return errors.New("not used in tests") }

func (f *fakeWSConn) Close() error {
	f.mu.Lock()
	f.closeCount++
	f.mu.Unlock()
	return nil
}

func (f *fakeWSConn) envelopes() []wsEnvelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]wsEnvelope, len(f.writes))
	copy(out, f.writes)
	return out
}

func TestRunWSFactor_StreamsAttemptsThenResult(t *testing.T) {
	conn := &fakeWSConn{}
	runWSFactor(conn, factorRequest{Num: "17", Bound: 10, Attempts: 2, Seed: 1})

	envs := conn.envelopes()
	// 2 attempts x (start + miss) + final result
	require.Len(t, envs, 5)
	for _, env := range envs[:4] {
		assert.Equal(t, "attempt", env.Type)
	}
	final := envs[4]
	assert.Equal(t, "result", final.Type)

	data, ok := final.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["found"])
	assert.Equal(t, "17", data["num"])

	assert.Equal(t, 1, conn.closeCount)
}

func TestRunWSFactor_FoundDivisor(t *testing.T) {
	conn := &fakeWSConn{}
	runWSFactor(conn, factorRequest{Num: "8051", Bound: 100, Attempts: 10, Seed: 1})

	envs := conn.envelopes()
	require.NotEmpty(t, envs)
	final := envs[len(envs)-1]
	require.Equal(t, "result", final.Type)

	data, ok := final.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["found"])
	assert.Contains(t, []interface{}{"83", "97"}, data["divisor"])
}

func TestRunWSFactor_BadRequest(t *testing.T) {
	conn := &fakeWSConn{}
	runWSFactor(conn, factorRequest{Num: "not-a-number"})

	envs := conn.envelopes()
	require.Len(t, envs, 1)
	assert.Equal(t, "error", envs[0].Type)
	assert.NotEmpty(t, envs[0].Error)
	assert.Equal(t, 1, conn.closeCount)
}
