package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, Settings{}, settings)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(Settings{DefaultDirectory: "/media/videos"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, map[string]string{"default_directory": "/media/videos"}, onDisk)

	settings, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/media/videos", settings.DefaultDirectory)

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_LoadExistingFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_directory": "C:/Users/me/Videos", "extra": 1}`), 0o644))

	settings, err := NewFileStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "C:/Users/me/Videos", settings.DefaultDirectory)
}

func TestFileStore_LoadEmptyAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))
	settings, err := NewFileStore(empty).Load()
	require.NoError(t, err)
	assert.Empty(t, settings.DefaultDirectory)

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{nope"), 0o644))
	_, err = NewFileStore(corrupt).Load()
	assert.ErrorContains(t, err, "failed to parse settings")
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultSettingsFile, NewFileStore("").Path())
}

func TestResolveDownloadDirectory(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))

	dir, err := ResolveDownloadDirectory(store)
	require.NoError(t, err)
	assert.Equal(t, "Downloads", filepath.Base(dir))

	require.NoError(t, SetDefaultDirectory(store, "/srv/media"))

	dir, err = ResolveDownloadDirectory(store)
	require.NoError(t, err)
	assert.Equal(t, "/srv/media", dir)
}

func TestSetDefaultDirectory_StoresAbsolutePath(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.json"))
	wd, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, SetDefaultDirectory(store, "./media"))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(settings.DefaultDirectory))
	assert.Equal(t, filepath.Join(wd, "media"), settings.DefaultDirectory)

	require.NoError(t, SetDefaultDirectory(store, "  "))
	settings, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, settings.DefaultDirectory)
}
