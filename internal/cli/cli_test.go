// Tests for the aoc commands, run in-process against temp directories.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aoc2023/internal/profile"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
	"github.com/mesh-intelligence/aoc2023/pkg/aoc"
)

const day01Sample = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"

// env is a temporary config, data and input directory layout.
type env struct {
	configDir string
	dataDir   string
	inputDir  string
}

func newEnv(t *testing.T) env {
	t.Helper()
	for _, k := range []string{"AOC_CONFIG_DIR", "AOC_DATA_DIR", "AOC_INPUT_DIR", "AOC_HISTORY", "AOC_WORKERS", "AOC_ANSWERS_FILE"} {
		t.Setenv(k, "")
	}
	root := t.TempDir()
	e := env{
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
		inputDir:  filepath.Join(root, "inputs"),
	}
	require.NoError(t, os.MkdirAll(e.inputDir, 0o755))
	return e
}

func (e env) writeInput(t *testing.T, day int, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(puzzle.InputPath(e.inputDir, day), []byte(text), 0o644))
}

func (e env) writeConfig(t *testing.T, yaml string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte(yaml), 0o644))
}

// exec runs the root command with the env's directories and returns
// stdout and the command error.
func (e env) exec(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{
		"--config-dir", e.configDir,
		"--data-dir", e.dataDir,
		"--input-dir", e.inputDir,
	}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func jsonLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), "line %q", sc.Text())
		lines = append(lines, m)
	}
	return lines
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	out, err := e.exec(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aoc v"+aoc.Version)
}

func TestList(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, 1, day01Sample)

	out, err := e.exec(t, "", "--json", "list")
	require.NoError(t, err)
	lines := jsonLines(t, out)
	require.Len(t, lines, 25)
	assert.Equal(t, true, lines[0]["has_input"])
	assert.Equal(t, false, lines[1]["has_input"])
	assert.Equal(t, []any{float64(1)}, lines[24]["parts"])
}

func TestRun(t *testing.T) {
	t.Run("day from input dir", func(t *testing.T) {
		e := newEnv(t)
		e.writeInput(t, 1, day01Sample)

		out, err := e.exec(t, "", "run", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "day  1 part 1  142")
		assert.Contains(t, out, "day  1 part 2  142")
	})

	t.Run("json output", func(t *testing.T) {
		e := newEnv(t)
		e.writeInput(t, 1, day01Sample)

		out, err := e.exec(t, "", "--json", "run", "1", "--part", "2")
		require.NoError(t, err)
		lines := jsonLines(t, out)
		require.Len(t, lines, 1)
		assert.Equal(t, float64(2), lines[0]["part"])
		assert.Equal(t, float64(142), lines[0]["answer"])
		assert.NotEmpty(t, lines[0]["run_id"])
	})

	t.Run("stdin input", func(t *testing.T) {
		e := newEnv(t)
		out, err := e.exec(t, day01Sample, "run", "1", "--input", "-", "--part", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "142")
	})

	t.Run("input needs one day", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.exec(t, day01Sample, "run", "1", "2", "--input", "-")
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("profile dir", func(t *testing.T) {
		e := newEnv(t)
		e.writeInput(t, 1, day01Sample)
		dir := filepath.Join(t.TempDir(), "prof")
		_, err := e.exec(t, "", "run", "1", "--profile-dir", dir)
		require.NoError(t, err)
		if profile.Enabled {
			assert.FileExists(t, filepath.Join(dir, profile.FileName))
		}
	})

	t.Run("unknown day", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.exec(t, "", "run", "99")
		require.ErrorIs(t, err, puzzle.ErrUnknownDay)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("bad part", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.exec(t, "", "run", "1", "--part", "3")
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("no inputs", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.exec(t, "", "run")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no inputs found")
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("solver error", func(t *testing.T) {
		e := newEnv(t)
		e.writeInput(t, 1, "no digits here\n")
		out, err := e.exec(t, "", "run", "1", "--part", "1")
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
		assert.Contains(t, out, "error:")
	})
}

func TestRunAnswers(t *testing.T) {
	e := newEnv(t)
	e.writeInput(t, 1, day01Sample)

	out, err := e.exec(t, "", "run", "1", "--accept")
	require.NoError(t, err)
	assert.Contains(t, out, "answers saved")

	answers, err := puzzle.LoadAnswers(filepath.Join(e.inputDir, defaultAnswersFile))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Correct, answers.Check(1, 1, 142))
	assert.Equal(t, puzzle.Correct, answers.Check(1, 2, 142))

	out, err = e.exec(t, "", "run", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "correct")

	answers.Set(1, 1, 143)
	require.NoError(t, answers.Save(filepath.Join(e.inputDir, defaultAnswersFile)))
	out, err = e.exec(t, "", "run", "1")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Contains(t, err.Error(), "1 wrong answer(s)")
	assert.Contains(t, out, "WRONG")
}

func TestHistory(t *testing.T) {
	e := newEnv(t)
	e.writeConfig(t, "history: true\n")
	e.writeInput(t, 1, day01Sample)

	_, err := e.exec(t, "", "run", "1")
	require.NoError(t, err)
	_, err = e.exec(t, "", "run", "1", "--part", "1")
	require.NoError(t, err)

	out, err := e.exec(t, "", "--json", "history", "1")
	require.NoError(t, err)
	assert.Len(t, jsonLines(t, out), 3)

	out, err = e.exec(t, "", "--json", "history", "--latest")
	require.NoError(t, err)
	latest := jsonLines(t, out)
	require.Len(t, latest, 2)
	assert.Equal(t, float64(1), latest[0]["part"])
	assert.Equal(t, float64(2), latest[1]["part"])

	out, err = e.exec(t, "", "--json", "history", "--limit", "1")
	require.NoError(t, err)
	assert.Len(t, jsonLines(t, out), 1)

	export := filepath.Join(t.TempDir(), "runs.jsonl")
	out, err = e.exec(t, "", "history", "--export", export)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 3 run(s)")

	out, err = e.exec(t, "", "history", "--import", export)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 0 run(s)")
}

func TestInit(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.Remove(e.inputDir))

	out, err := e.exec(t, "", "init", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")
	assert.DirExists(t, e.inputDir)
	assert.FileExists(t, filepath.Join(e.dataDir, "history.db"))

	path := filepath.Join(e.configDir, configFileExt)
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(first), "history: true")

	out, err = e.exec(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestConfigFile(t *testing.T) {
	e := newEnv(t)
	e.writeConfig(t, "workers: 0\n")
	_, err := e.exec(t, "", "list")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))

	e.writeConfig(t, "workers: [\n")
	_, err = e.exec(t, "", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestBench(t *testing.T) {
	if testing.Short() {
		t.Skip("benchmarks run for about a second")
	}
	e := newEnv(t)
	e.writeInput(t, 1, day01Sample)

	out, err := e.exec(t, "", "--json", "bench", "1", "--part", "1")
	require.NoError(t, err)
	lines := jsonLines(t, out)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(142), lines[0]["answer"])
	assert.Greater(t, lines[0]["iterations"], float64(0))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitSuccess},
		{"user", userError(errors.New("bad")), exitUserError},
		{"system", sysError(errors.New("disk")), exitSysError},
		{"wrapped", fmt.Errorf("ctx: %w", sysError(errors.New("disk"))), exitSysError},
		{"plain", errors.New("unknown flag"), exitUserError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestWatchLoop(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, events, errs, "day01.txt", 20*time.Millisecond, func() error {
			runs.Add(1)
			return nil
		})
	}()

	events <- fsnotify.Event{Name: "/in/day02.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/in/day01.txt", Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: "/in/day01.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/in/day01.txt", Op: fsnotify.Write}
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	events <- fsnotify.Event{Name: "/in/day01.txt", Op: fsnotify.Create}
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatchLoopErrors(t *testing.T) {
	t.Run("watcher error", func(t *testing.T) {
		errs := make(chan error, 1)
		errs <- errors.New("overflow")
		err := watchLoop(context.Background(), nil, errs, "day01.txt", time.Millisecond, func() error { return nil })
		assert.ErrorContains(t, err, "overflow")
	})

	t.Run("rerun failure stops the loop", func(t *testing.T) {
		events := make(chan fsnotify.Event, 1)
		events <- fsnotify.Event{Name: "day01.txt", Op: fsnotify.Write}
		boom := errors.New("boom")
		err := watchLoop(context.Background(), events, nil, "day01.txt", time.Millisecond, func() error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("closed events", func(t *testing.T) {
		events := make(chan fsnotify.Event)
		close(events)
		err := watchLoop(context.Background(), events, nil, "day01.txt", time.Millisecond, func() error { return nil })
		assert.NoError(t, err)
	})
}
