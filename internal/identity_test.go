package internal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveIDStable(t *testing.T) {
	a := DeriveID("workspace-1", "3")
	b := DeriveID("workspace-1", "3")
	assert.Equal(t, a, b, "same inputs must yield the same id")

	c := DeriveID("workspace-1", "4")
	assert.NotEqual(t, a, c, "different inputs must yield different ids")

	// Part boundaries matter: ("ab","c") is not ("a","bc").
	assert.NotEqual(t, DeriveID("ab", "c"), DeriveID("a", "bc"))
}

func TestDeriveIDShape(t *testing.T) {
	id, err := uuid.Parse(DeriveID("some", "key"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
}

func TestSessionIDPrefersNative(t *testing.T) {
	native := "0b7e5f9a-1d2c-4e3f-8a9b-0c1d2e3f4a5b"
	conv := &Conversation{NativeID: native, Key: "whatever", Source: SourceCursorComposer}
	assert.Equal(t, native, SessionID(conv))
}

func TestSessionIDNonUUIDNativeIsDerived(t *testing.T) {
	conv := &Conversation{NativeID: "not-a-uuid", Source: SourceCursorCopilot}
	id := SessionID(conv)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, SessionID(conv), "derived id must be stable")
}

func TestSessionIDFromKey(t *testing.T) {
	conv := &Conversation{Key: "ws-1:0", Source: SourceCursorCopilot}
	id := SessionID(conv)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	// The source is part of the identity: the same key under a
	// different format must not collide.
	other := &Conversation{Key: "ws-1:0", Source: SourceClaudeCode}
	assert.NotEqual(t, id, SessionID(other))
}
