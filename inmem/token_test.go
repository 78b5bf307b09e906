package inmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/notenet"
)

var _ notenet.TokenStore = (*TokenStore)(nil)

func TestTokenStore(t *testing.T) {
	store := NewTokenStore()

	token, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, store.Set("abc"))
	token, _ = store.Get()
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Clear())
	token, _ = store.Get()
	assert.Equal(t, "", token)
}
