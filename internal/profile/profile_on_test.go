//go:build heapprofile

package profile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sink [][]byte

func TestStartWritesProfile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prof")
	rate := runtime.MemProfileRate

	stop, err := Start(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, runtime.MemProfileRate)
	for i := 0; i < 100; i++ {
		sink = append(sink, make([]byte, 1024))
	}
	stats, err := stop()
	require.NoError(t, err)

	assert.True(t, Enabled)
	assert.Equal(t, rate, runtime.MemProfileRate)
	assert.GreaterOrEqual(t, stats.TotalAlloc, uint64(100*1024))
	info, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
