package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSealer(t *testing.T, key string) Sealer {
	t.Helper()
	s, err := NewSealer(key)
	require.NoError(t, err)
	return s
}

func TestNewSealer_EmptyKey(t *testing.T) {
	s, err := NewSealer("")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrEmptyStorageKey)
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "correct horse")

	sealed, err := s.Seal([]byte("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "payload")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.payload.sig", string(opened))
}

func TestSealer_SameInputDifferentBlobs(t *testing.T) {
	s := newTestSealer(t, "k")

	a, err := s.Seal([]byte("token"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("token"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_WrongKey(t *testing.T) {
	sealed, err := newTestSealer(t, "first").Seal([]byte("token"))
	require.NoError(t, err)

	_, err = newTestSealer(t, "second").Open(sealed)
	assert.Error(t, err)
}

func TestSealer_Tampered(t *testing.T) {
	s := newTestSealer(t, "k")
	sealed, err := s.Seal([]byte("token"))
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xff

	_, err = s.Open(base64.StdEncoding.EncodeToString(blob))
	assert.Error(t, err)
}

func TestSealer_Malformed(t *testing.T) {
	s := newTestSealer(t, "k")

	_, err := s.Open("!!not base64!!")
	assert.Error(t, err)

	_, err = s.Open(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrMalformedBlob)
}
