// Tests for the run-history store lifecycle and queries.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{InputDir: "inputs", DataDir: dir, Workers: 1}
}

func attached(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Attach(testConfig(t.TempDir())))
	t.Cleanup(func() { s.Detach() })
	return s
}

var t0 = time.Date(2023, 12, 1, 5, 0, 0, 0, time.UTC)

func run(id string, day, part, answer int, at time.Duration) types.Result {
	return types.Result{
		RunID:     id,
		Day:       day,
		Part:      part,
		Answer:    answer,
		Duration:  time.Millisecond,
		StartedAt: t0.Add(at),
	}
}

func TestStore_Attach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewStore()
	require.NoError(t, s.Attach(testConfig(dir)))
	defer s.Detach()

	_, err := os.Stat(filepath.Join(dir, DBFileName))
	require.NoError(t, err, "history.db not created")

	assert.ErrorIs(t, s.Attach(testConfig(dir)), types.ErrAlreadyAttached)
}

func TestStore_AttachValidatesConfig(t *testing.T) {
	s := NewStore()
	err := s.Attach(types.Config{InputDir: "inputs", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrWorkersInvalid)
}

func TestStore_Detach(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Attach(testConfig(t.TempDir())))

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "second Detach should not error")

	assert.ErrorIs(t, s.Record(run("a", 1, 1, 1, 0)), types.ErrStoreDetached)
	_, err := s.History(0, 0)
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Latest()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func TestStore_ReattachKeepsHistory(t *testing.T) {
	cfg := testConfig(t.TempDir())
	s := NewStore()
	require.NoError(t, s.Attach(cfg))
	require.NoError(t, s.Record(run("a", 1, 1, 54, 0)))
	require.NoError(t, s.Detach())

	require.NoError(t, s.Attach(cfg))
	defer s.Detach()
	got, err := s.History(1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 54, got[0].Answer)
}

func TestStore_RecordAndHistory(t *testing.T) {
	s := attached(t)
	failed := run("c", 2, 1, 0, 2*time.Second)
	failed.Err = "parse input line 3: bad cube count"
	require.NoError(t, s.Record(
		run("a", 1, 1, 54, 0),
		run("b", 1, 2, 53, time.Second),
		failed,
	))

	all, err := s.History(0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].RunID, "newest first")
	assert.True(t, all[0].Failed())
	assert.Equal(t, failed.Err, all[0].Err)

	day1, err := s.History(1, 0)
	require.NoError(t, err)
	require.Len(t, day1, 2)
	assert.Equal(t, "b", day1[0].RunID)
	assert.Equal(t, run("a", 1, 1, 54, 0), day1[1])

	limited, err := s.History(0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStore_RecordAssignsRunID(t *testing.T) {
	s := attached(t)
	require.NoError(t, s.Record(run("", 5, 1, 35, 0)))

	got, err := s.History(5, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].RunID, 36)
}

func TestStore_RecordDuplicateFails(t *testing.T) {
	s := attached(t)
	require.NoError(t, s.Record(run("a", 1, 1, 54, 0)))
	assert.Error(t, s.Record(run("b", 1, 1, 54, 0), run("a", 1, 1, 54, 0)))

	// The failed batch is rolled back as a whole.
	got, err := s.History(0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_Latest(t *testing.T) {
	s := attached(t)
	require.NoError(t, s.Record(
		run("old", 2, 1, 7, 0),
		run("new", 2, 1, 8, time.Minute),
		run("p2", 2, 2, 9, 0),
		run("d1", 1, 1, 1, 0),
	))

	got, err := s.Latest()
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.RunID
	}
	assert.Equal(t, []string{"d1", "new", "p2"}, ids)
}
