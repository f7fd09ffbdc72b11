package session

import (
	"encoding/json"
	"testing"

	"specs-nexus-web/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(secret string) *Store {
	return NewStore(config.SessionConfig{Secret: secret, SameSite: "Lax"})
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	store := newTestStore("test-secret")
	profile := json.RawMessage(`{"id":7,"full_name":"Jamie Cruz"}`)

	value, err := store.Encode("bearer-token", profile)
	require.NoError(t, err)

	sess, err := store.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", sess.Token)

	var decoded struct {
		ID       int    `json:"id"`
		FullName string `json:"full_name"`
	}
	require.NoError(t, sess.Decode(&decoded))
	assert.Equal(t, 7, decoded.ID)
	assert.Equal(t, "Jamie Cruz", decoded.FullName)
}

func TestDecodeRejectsTampering(t *testing.T) {
	store := newTestStore("test-secret")

	value, err := store.Encode("bearer-token", json.RawMessage(`{"id":1}`))
	require.NoError(t, err)

	_, err = store.Decode(value + "x")
	assert.ErrorIs(t, err, ErrCodecInvalid)
}

func TestDecodeRejectsForeignSecret(t *testing.T) {
	theirs := newTestStore("their-secret")
	ours := newTestStore("our-secret")

	value, err := theirs.Encode("bearer-token", json.RawMessage(`{"id":1}`))
	require.NoError(t, err)

	_, err = ours.Decode(value)
	assert.ErrorIs(t, err, ErrCodecInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	store := newTestStore("test-secret")
	_, err := store.Decode("not-a-jwt")
	assert.ErrorIs(t, err, ErrCodecInvalid)
}
