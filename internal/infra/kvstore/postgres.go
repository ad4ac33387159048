package kvstore

import (
	"context"

	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/infra/db"
	"nuzlocke-tracker/internal/pkg/pgconv"
)

type PostgresStore struct {
	db db.DBTX
}

func NewPostgresStore(dbtx db.DBTX) *PostgresStore {
	return &PostgresStore{db: dbtx}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM kv_values WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to read value", err)
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO kv_values (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to write value", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM kv_values WHERE key = $1`, key); err != nil {
		return infra.WrapRepoErr("failed to delete value", err)
	}
	return nil
}

func (s *PostgresStore) DeleteIf(ctx context.Context, key, expected string) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM kv_values WHERE key = $1 AND value = $2`, key, expected)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete value", err)
	}
	return tag.RowsAffected() > 0, nil
}
