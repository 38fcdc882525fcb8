package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &Config{Token: "tok-1", Email: "admin@showroom.test", BaseURL: "http://localhost:5000"}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", loaded.Token)
	assert.Equal(t, "admin@showroom.test", loaded.Email)
	assert.Equal(t, "http://localhost:5000", loaded.BaseURL)
}

func TestSaveSetsSecurePermissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, (&Config{Token: "tok"}).Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadRejectsOpenPermissions(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".showroom", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("token: tok\n"), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions too open")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config not found")
}

func TestLoadMissingToken(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".showroom", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("email: a@b\n"), 0600))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing token")
}
