package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps snapshots in the snapshots table created by
// database.Migrate.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.Exec(ctx, `
INSERT INTO snapshots (key, data, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE
SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;
`, key, string(data))
	return err
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := s.db.QueryRow(ctx, `
SELECT data::text
FROM snapshots
WHERE key = $1;
`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(data), nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM snapshots WHERE key = $1;`, key)
	return err
}
