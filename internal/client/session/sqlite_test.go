package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := OpenSQLiteBackend(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestSQLiteBackend_GetMissing_ReturnsNilNil(t *testing.T) {
	b := setupSQLite(t)

	v, err := b.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteBackend_SetAllUpserts(t *testing.T) {
	b := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, b.SetAll(ctx, map[string][]byte{"k": []byte("old"), "j": []byte("1")}))
	require.NoError(t, b.SetAll(ctx, map[string][]byte{"k": []byte("new")}))

	v, err := b.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)

	v, err = b.Get(ctx, "j")
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)
}

func TestSQLiteBackend_DeleteAll_Idempotent(t *testing.T) {
	b := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, b.SetAll(ctx, map[string][]byte{"a": {1}, "b": {2}, "c": {3}}))
	require.NoError(t, b.DeleteAll(ctx, "a", "b"))
	require.NoError(t, b.DeleteAll(ctx, "a", "b"))

	v, err := b.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = b.Get(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, []byte{3}, v)
}

func TestSQLiteBackend_ErrorsWrapped(t *testing.T) {
	b := setupSQLite(t)
	ctx := context.Background()
	require.NoError(t, b.db.Close())

	_, err := b.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get session[k]")

	require.Error(t, b.SetAll(ctx, map[string][]byte{"k": []byte("v")}))
	require.Error(t, b.DeleteAll(ctx, "k"))
}
