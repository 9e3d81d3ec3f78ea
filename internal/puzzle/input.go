package puzzle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputMissing is returned when a day's input file does not exist.
var ErrInputMissing = errors.New("puzzle input missing")

// InputFile is the file name holding day n's input, e.g. "day07.txt".
func InputFile(n int) string {
	return fmt.Sprintf("day%02d.txt", n)
}

// InputPath joins dir and InputFile(n).
func InputPath(dir string, n int) string {
	return filepath.Join(dir, InputFile(n))
}

// LoadInput reads day n's input from dir.
func LoadInput(dir string, n int) (string, error) {
	return ReadInputFile(InputPath(dir, n))
}

// ReadInputFile reads an input file, normalising line endings and dropping
// trailing blank lines.
func ReadInputFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrInputMissing)
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return Normalize(string(data)), nil
}

// ReadInput reads and normalises input from r.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return Normalize(string(data)), nil
}

// Normalize converts CRLF to LF and trims trailing newlines.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Loader returns the input for a day.
type Loader func(day int) (string, error)

// DirLoader loads inputs from dir.
func DirLoader(dir string) Loader {
	return func(day int) (string, error) {
		return LoadInput(dir, day)
	}
}
