package dbx_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/assetkeeper/internal/client/localdb"
	"github.com/dmitrijs2005/assetkeeper/internal/client/repositories/metadata"
	"github.com/stretchr/testify/require"
)

func TestRepositoryOverTx(t *testing.T) {
	ctx := context.Background()
	db, err := localdb.InitDatabase(ctx, filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, metadata.NewSQLiteRepository(tx).Set(ctx, "auth-storage", []byte(`{}`)))
	require.NoError(t, tx.Rollback())

	v, err := metadata.NewSQLiteRepository(db).Get(ctx, "auth-storage")
	require.NoError(t, err)
	require.Nil(t, v, "rolled back write must not be visible")

	tx, err = db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, metadata.NewSQLiteRepository(tx).Set(ctx, "auth-storage", []byte(`{}`)))
	require.NoError(t, tx.Commit())

	v, err = metadata.NewSQLiteRepository(db).Get(ctx, "auth-storage")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
}
