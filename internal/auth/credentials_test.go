package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit-io/wcapi/internal/auth"
)

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	provider := auth.NewStaticProvider("ck_abc", "cs_def")

	key, secret, err := provider.Credentials(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ck_abc", key)
	assert.Equal(t, "cs_def", secret)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileStore, err := auth.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fileStore.Save("https://shop.example.com", "ck_abc", "cs_def", "1"))

	endpoint, key, secret, userID, err := fileStore.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", endpoint)
	assert.Equal(t, "ck_abc", key)
	assert.Equal(t, "cs_def", secret)
	assert.Equal(t, "1", userID)
}

func TestFileStore_FilePermissions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileStore, err := auth.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fileStore.Save("https://shop.example.com", "ck_abc", "cs_def", ""))

	info, err := os.Stat(filepath.Join(dir, "credentials.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_LoadMissing(t *testing.T) {
	t.Parallel()

	fileStore, err := auth.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, _, _, _, err = fileStore.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStore_Clear(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileStore, err := auth.NewFileStore(dir)
	require.NoError(t, err)

	// Clearing a store that was never written is not an error.
	require.NoError(t, fileStore.Clear())

	require.NoError(t, fileStore.Save("https://shop.example.com", "ck_abc", "cs_def", ""))
	require.NoError(t, fileStore.Clear())

	_, err = os.Stat(filepath.Join(dir, "credentials.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
