package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	s := New()
	_, ok, err := s.Get(context.Background(), "cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOverwritesWholeValue(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart", `[{"productId":"p1"}]`))
	require.NoError(t, s.Set(ctx, "cart", `[]`))

	v, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestKeysAreIndependent(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a:cart", "1"))
	require.NoError(t, s.Set(ctx, "b:cart", "2"))

	v, ok, err := s.Get(ctx, "a:cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", v)
}
