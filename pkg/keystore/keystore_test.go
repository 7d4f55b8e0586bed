package keystore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveReadDelete(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	store := New(filepath.Join(t.TempDir(), ".api_key"))

	assert.False(t, store.Configured())
	assert.Equal(t, "", store.Read())

	require.NoError(t, store.Save("sk-ant-test-123"))
	assert.True(t, store.Configured())
	assert.Equal(t, "sk-ant-test-123", store.Read())

	require.NoError(t, store.Delete())
	assert.False(t, store.Configured())
}

func TestStoreTrimsWhitespace(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	store := New(filepath.Join(t.TempDir(), ".api_key"))

	require.NoError(t, store.Save("  sk-ant-padded  \n"))
	assert.Equal(t, "sk-ant-padded", store.Read())
}

func TestStoreFallsBackToEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-from-env")
	store := New(filepath.Join(t.TempDir(), ".api_key"))

	assert.Equal(t, "sk-ant-from-env", store.Read())

	// A saved key wins over the environment
	require.NoError(t, store.Save("sk-ant-from-file"))
	assert.Equal(t, "sk-ant-from-file", store.Read())
}

func TestStoreDeleteMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), ".api_key"))
	assert.NoError(t, store.Delete())
}
