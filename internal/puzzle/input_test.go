package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFile(t *testing.T) {
	assert.Equal(t, "day07.txt", InputFile(7))
	assert.Equal(t, "day25.txt", InputFile(25))
	assert.Equal(t, filepath.Join("in", "day01.txt"), InputPath("in", 1))
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day03.txt"), []byte("a\r\nb\r\n\n"), 0o644))

	got, err := LoadInput(dir, 3)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = DirLoader(dir)(3)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestLoadInput_Missing(t *testing.T) {
	_, err := LoadInput(t.TempDir(), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputMissing)
	assert.Contains(t, err.Error(), "day09.txt")
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput(strings.NewReader("x\ny\n"))
	require.NoError(t, err)
	assert.Equal(t, "x\ny", got)
}
