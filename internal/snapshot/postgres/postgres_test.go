package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-cart/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	return pool
}

func TestPostgres_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	require.NoError(t, migrate.Apply(ctx, pool))
	_, err := pool.Exec(ctx, `TRUNCATE cart_snapshots`)
	require.NoError(t, err)

	store := NewPostgres(pool)

	_, ok, err := store.Get(ctx, "sess-1:cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "sess-1:cart", `[{"productId":"p1","quantity":1}]`))
	require.NoError(t, store.Set(ctx, "sess-1:cart", `[]`))

	v, ok, err := store.Get(ctx, "sess-1:cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}
