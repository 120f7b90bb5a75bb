package metadata

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/assetkeeper/internal/client/localdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openRepo returns a repository over a freshly migrated database file.
func openRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := localdb.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), db
}

func TestSQLiteRepository_GetSet(t *testing.T) {
	r, _ := openRepo(t)
	ctx := context.Background()

	v, err := r.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Nil(t, v, "absent key")

	require.NoError(t, r.Set(ctx, "auth-storage", []byte(`{"isAuthenticated":false}`)))
	require.NoError(t, r.Set(ctx, "auth-storage", []byte(`{"isAuthenticated":true}`)))

	v, err = r.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"isAuthenticated":true}`), v)
}

func TestSQLiteRepository_ListDeleteClear(t *testing.T) {
	r, _ := openRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth-storage", []byte("s")))
	require.NoError(t, r.Set(ctx, "last-path", []byte("/assets")))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"auth-storage": []byte("s"), "last-path": []byte("/assets")}, m)

	require.NoError(t, r.Delete(ctx, "last-path"))
	require.NoError(t, r.Delete(ctx, "last-path"))

	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 1)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSQLiteRepository_ClosedDB(t *testing.T) {
	r, db := openRepo(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get metadata[k]")
	assert.ErrorContains(t, r.Set(ctx, "k", nil), "failed to set metadata[k]")
	assert.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete metadata[k]")
	assert.ErrorContains(t, r.Clear(ctx), "failed to clear metadata")
	_, err = r.List(ctx)
	assert.ErrorContains(t, err, "failed to list metadata")
}
