package util

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToFile(t *testing.T) {
	filePath := path.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteToFile(filePath, "first", "second"))

	bs, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(bs))

	require.NoError(t, WriteToFile(filePath, "replaced"))
	bs, err = os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "replaced\n", string(bs))
}

func TestAppendToFile(t *testing.T) {
	filePath := path.Join(t.TempDir(), "out.txt")
	require.NoError(t, AppendToFile(filePath, "first"))
	require.NoError(t, AppendToFile(filePath, "second", "third"))

	bs, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird\n", string(bs))
}

func TestEnsureDir(t *testing.T) {
	dir := path.Join(t.TempDir(), "nested", "results")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// already existing directory is fine
	require.NoError(t, EnsureDir(dir))
}
