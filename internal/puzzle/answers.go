package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Verdict is the outcome of comparing an answer with a known value.
type Verdict int

// Verdicts.
const (
	Unknown Verdict = iota
	Correct
	Wrong
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Expected holds the accepted answers of one day.
type Expected struct {
	Part1 *int `yaml:"part1,omitempty"`
	Part2 *int `yaml:"part2,omitempty"`
}

// Answers maps day numbers to accepted answers. The file form is:
//
//	1:
//	  part1: 54338
//	  part2: 53389
type Answers map[int]Expected

// LoadAnswers reads an answers file. A missing file yields an empty set.
func LoadAnswers(path string) (Answers, error) {
	if path == "" {
		return Answers{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Answers{}, nil
		}
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes the YAML answers form.
func ParseAnswers(data []byte) (Answers, error) {
	raw := map[string]Expected{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	out := make(Answers, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("answers: day key %q: %w", k, err)
		}
		out[n] = v
	}
	return out, nil
}

// Check compares got with the known answer for day/part.
func (a Answers) Check(day, part, got int) Verdict {
	exp, ok := a[day]
	if !ok {
		return Unknown
	}
	var want *int
	switch part {
	case 1:
		want = exp.Part1
	case 2:
		want = exp.Part2
	}
	if want == nil {
		return Unknown
	}
	if *want == got {
		return Correct
	}
	return Wrong
}

// Set records an accepted answer.
func (a Answers) Set(day, part, answer int) {
	exp := a[day]
	v := answer
	if part == 1 {
		exp.Part1 = &v
	} else {
		exp.Part2 = &v
	}
	a[day] = exp
}

// Save writes the answers back as YAML.
func (a Answers) Save(path string) error {
	raw := make(map[string]Expected, len(a))
	for k, v := range a {
		raw[strconv.Itoa(k)] = v
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
