package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadFirstLine(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "save.txt")
	assert.False(t, FileExists(fileName))

	require.NoError(t, WriteFile(fileName, "Hero 85 20 10\nignored\n"))
	assert.True(t, FileExists(fileName))

	line, err := ReadFirstLine(fileName)
	require.NoError(t, err)
	assert.Equal(t, "Hero 85 20 10", line)

	// overwrite, not append
	require.NoError(t, WriteFile(fileName, "Hero 60 20 10\n"))
	line, err = ReadFirstLine(fileName)
	require.NoError(t, err)
	assert.Equal(t, "Hero 60 20 10", line)
}

func TestReadFirstLineEmptyFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, WriteFile(fileName, ""))

	line, err := ReadFirstLine(fileName)
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestReadFirstLineMissing(t *testing.T) {
	_, err := ReadFirstLine(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenAppend(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "game_log.txt")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := OpenAppend(fileName)
		require.NoError(t, err)
		_, err = f.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(content))
}
