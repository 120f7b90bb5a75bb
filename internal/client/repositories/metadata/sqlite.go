package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
)

const (
	getQuery    = `SELECT value FROM local_storage WHERE key = ?`
	listQuery   = `SELECT key, value FROM local_storage ORDER BY key`
	deleteQuery = `DELETE FROM local_storage WHERE key = ?`
	clearQuery  = `DELETE FROM local_storage`
	upsertQuery = `INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// SQLiteRepository keeps the key/value pairs in the local_storage table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func wrap(op, key string, err error) error {
	if key == "" {
		return fmt.Errorf("failed to %s metadata: %w", op, err)
	}
	return fmt.Errorf("failed to %s metadata[%s]: %w", op, key, err)
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	switch err := r.db.QueryRowContext(ctx, getQuery, key).Scan(&v); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, wrap("get", key, err)
	}
	return v, nil
}

// Set stores value under key. A nil value is stored as an empty blob.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return wrap("set", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return wrap("delete", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearQuery); err != nil {
		return wrap("clear", "", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, wrap("list", "", err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			k string
			v []byte
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, wrap("scan", "", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate", "", err)
	}
	return out, nil
}
