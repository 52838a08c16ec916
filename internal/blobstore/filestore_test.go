package blobstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorePutGet(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("schemes", []byte(`[{"id":"1"}]`)))

	got, err := store.Get("schemes")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
}

func TestFileStoreGetMissingKey(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("users", []byte("first")))
	require.NoError(t, store.Put("users", []byte("second and longer")))

	got, err := store.Get("users")
	require.NoError(t, err)
	assert.Equal(t, "second and longer", string(got))
}

func TestFileStoreDelete(t *testing.T) {
	store, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("currentUser", []byte("{}")))
	require.NoError(t, store.Delete("currentUser"))

	_, err = store.Get("currentUser")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete("currentUser"))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put("donations", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "donations.json", filepath.Base(entries[0].Name()))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put("initialized", []byte("true")))
	require.NoError(t, store.Close())

	reopened, err := OpenFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get("initialized")
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))
}
