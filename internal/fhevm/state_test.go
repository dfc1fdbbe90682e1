package fhevm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_InitStarted(t *testing.T) {
	next, effects := transition(ClientState{Status: StatusIdle}, initStarted{})

	assert.Equal(t, StatusLoading, next.Status)
	assert.Nil(t, next.Instance)
	assert.Nil(t, next.Err)
	assert.False(t, next.Initialized)
	assert.Equal(t, []effect{effectStatusChanged}, effects)
}

func TestTransition_InitSucceeded(t *testing.T) {
	inst := &stubInstance{}

	next, effects := transition(ClientState{Status: StatusLoading}, initSucceeded{instance: inst})

	assert.Equal(t, StatusReady, next.Status)
	assert.Same(t, inst, next.Instance)
	assert.True(t, next.Initialized)
	assert.Nil(t, next.Err)
	assert.Equal(t, []effect{effectStatusChanged, effectReady}, effects)
}

func TestTransition_InitFailed(t *testing.T) {
	cause := errors.New("boom")

	next, effects := transition(ClientState{Status: StatusLoading}, initFailed{err: cause})

	assert.Equal(t, StatusError, next.Status)
	assert.Equal(t, cause, next.Err)
	assert.False(t, next.Initialized)
	assert.Nil(t, next.Instance)
	assert.Equal(t, []effect{effectStatusChanged, effectError}, effects)
}

func TestTransition_Reset(t *testing.T) {
	ready := ClientState{Status: StatusReady, Instance: &stubInstance{}, Initialized: true}

	next, effects := transition(ready, resetState{})

	assert.Equal(t, ClientState{Status: StatusIdle}, next)
	assert.Equal(t, []effect{effectStatusChanged}, effects)
}

func TestTransition_ResetWhileIdle_NoEffects(t *testing.T) {
	idle := ClientState{Status: StatusIdle}

	next, effects := transition(idle, resetState{})

	assert.Equal(t, idle, next)
	assert.Empty(t, effects)
}

func TestTransition_ErrorStateInvariant(t *testing.T) {
	// Every path into StatusError must carry a non-nil Err.
	next, _ := transition(ClientState{Status: StatusLoading}, initFailed{err: errors.New("x")})

	require.Equal(t, StatusError, next.Status)
	require.Error(t, next.Err)
}
