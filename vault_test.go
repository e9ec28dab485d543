package recall

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("create new vault", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_vault")
		vault, err := Open(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, vault)
		defer vault.Close()

		// Verify components are initialized
		assert.NotNil(t, vault.ItemRepository())
		assert.NotNil(t, vault.backend)
		assert.NotNil(t, vault.logger)
	})

	t.Run("in-memory vault", func(t *testing.T) {
		vault, err := Open("", WithInMemoryStorage())
		require.NoError(t, err)
		require.NotNil(t, vault)
		assert.NoError(t, vault.Close())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a vault at a file path instead of a directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		vault, err := Open(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, vault)
	})
}

func TestVault_Close(t *testing.T) {
	tmpDir := t.TempDir()
	vault, err := Open(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, vault)

	err = vault.Close()
	assert.NoError(t, err)
}

func TestVault_FactoryMethods(t *testing.T) {
	vault, err := Open("", WithInMemoryStorage())
	require.NoError(t, err)
	require.NotNil(t, vault)
	defer vault.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := vault.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := vault.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
		searcher.Close()
	})

	t.Run("can create reembedder", func(t *testing.T) {
		var buf bytes.Buffer
		reembedder := vault.NewReembedder(nil, &buf)
		require.NotNil(t, reembedder)
	})
}
