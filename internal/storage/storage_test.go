package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCopiesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewLocalStore(fs, "/managed")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/uploads/essay.pdf", []byte("submission body"), 0o644))

	dest, err := store.Store("/uploads/essay.pdf")
	require.NoError(t, err)

	assert.Equal(t, "/managed", filepath.Dir(dest))
	assert.Equal(t, ".pdf", filepath.Ext(dest))
	assert.NotEqual(t, "essay", strings.TrimSuffix(filepath.Base(dest), ".pdf"))

	content, err := afero.ReadFile(fs, dest)
	require.NoError(t, err)
	assert.Equal(t, "submission body", string(content))

	// The original stays where it was; only the managed copy is ours.
	ok, err := afero.Exists(fs, "/uploads/essay.pdf")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStoreUniqueNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewLocalStore(fs, "/managed")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/uploads/essay.pdf", []byte("x"), 0o644))

	first, err := store.Store("/uploads/essay.pdf")
	require.NoError(t, err)
	second, err := store.Store("/uploads/essay.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStoreMissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewLocalStore(fs, "/managed")
	require.NoError(t, err)

	_, err = store.Store("/uploads/nope.pdf")
	assert.ErrorIs(t, err, apperr.ErrStorage)
}

func TestRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewLocalStore(fs, "/managed")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/uploads/essay.pdf", []byte("x"), 0o644))
	dest, err := store.Store("/uploads/essay.pdf")
	require.NoError(t, err)

	require.NoError(t, store.Remove(dest))
	ok, err := afero.Exists(fs, dest)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Remove(dest), apperr.ErrStorage)
}
