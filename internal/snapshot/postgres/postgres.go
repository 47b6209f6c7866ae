// Package postgres persists cart snapshots in a single key-value table so
// carts survive process restarts and can be shared by several API replicas.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-cart/internal/snapshot"
)

type store struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) snapshot.Store {
	return &store{pool: pool}
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `
SELECT value
FROM cart_snapshots
WHERE key = $1
`
	var value string
	if err := s.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO cart_snapshots (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()
`
	_, err := s.pool.Exec(ctx, q, key, value)
	return err
}
