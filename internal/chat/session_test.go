package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	state, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, state.Idle())

	want := ConversationState{Authenticated: true, Step: StepAwaitMovie}
	require.NoError(t, s.Put(ctx, "s1", want))

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	require.NoError(t, s.Put(ctx, "s1", ConversationState{Step: StepAwaitPassword}))

	other, err := s.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.Idle())
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	require.NoError(t, s.Put(ctx, "s1", ConversationState{Step: StepAwaitShowing}))
	require.NoError(t, s.Reset(ctx, "s1"))

	state, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, state.Idle())
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10 * time.Millisecond)

	require.NoError(t, s.Put(ctx, "s1", ConversationState{Step: StepAwaitMovie}))
	time.Sleep(30 * time.Millisecond)

	state, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, state.Idle(), "expired state should read back as idle")
}
