package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load("cart")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save("cart", []byte(`[{"id":"f1"}]`)))

	got, err := s.Load("cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"f1"}]`, string(got))
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("token", []byte("abc")))
	require.NoError(t, s.Delete("token"))
	require.NoError(t, s.Delete("token"))

	_, err = s.Load("token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_OverwriteReplaces(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("k", []byte("one")))
	require.NoError(t, s.Save("k", []byte("two")))

	got, err := s.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}
