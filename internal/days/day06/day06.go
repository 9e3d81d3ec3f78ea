// Package day06 solves "Wait For It".
package day06

import (
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/aoc2023/internal/parse"
	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
)

// Race is one boat race: its duration and the distance record to beat.
type Race struct {
	Time, Record int
}

// Distance travelled when the button is held for press milliseconds.
func (r Race) Distance(press int) int {
	return (r.Time - press) * press
}

// WinCount is the number of button hold times that beat the record.
// The winning holds form the open interval between the roots of
// p*(T-p) = D; the float estimate is corrected with exact checks.
func (r Race) WinCount() int {
	t, d := float64(r.Time), float64(r.Record)
	disc := t*t - 4*d
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := int(math.Floor((t - sq) / 2))
	hi := int(math.Ceil((t + sq) / 2))
	for lo <= r.Time && r.Distance(lo) <= r.Record {
		lo++
	}
	for hi >= 0 && r.Distance(hi) <= r.Record {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func rows(input string) (times, records string, err error) {
	lines := parse.Lines(input)
	if len(lines) < 2 {
		return "", "", puzzle.Invalid("want Time and Distance lines")
	}
	var ok bool
	if times, ok = strings.CutPrefix(lines[0], "Time:"); !ok {
		return "", "", puzzle.Errorf(0, "missing Time:")
	}
	if records, ok = strings.CutPrefix(lines[1], "Distance:"); !ok {
		return "", "", puzzle.Errorf(1, "missing Distance:")
	}
	return times, records, nil
}

// ParseRaces reads the table as separate races.
func ParseRaces(input string) ([]Race, error) {
	ts, ds, err := rows(input)
	if err != nil {
		return nil, err
	}
	times, err := parse.Fields(ts)
	if err != nil {
		return nil, err
	}
	records, err := parse.Fields(ds)
	if err != nil {
		return nil, err
	}
	if len(times) != len(records) {
		return nil, puzzle.Invalid("%d times but %d distances", len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races, nil
}

// ParseKerned reads the table as one race, ignoring the spaces between digits.
func ParseKerned(input string) (Race, error) {
	ts, ds, err := rows(input)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.Atoi(strings.Join(strings.Fields(ts), ""))
	if err != nil {
		return Race{}, puzzle.Invalid("bad time %q", ts)
	}
	d, err := strconv.Atoi(strings.Join(strings.Fields(ds), ""))
	if err != nil {
		return Race{}, puzzle.Invalid("bad distance %q", ds)
	}
	return Race{Time: t, Record: d}, nil
}

// Part1 multiplies the win counts of every race.
func Part1(input string) (int, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return 0, err
	}
	prod := 1
	for _, r := range races {
		prod *= r.WinCount()
	}
	return prod, nil
}

// Part2 is the win count of the single kerned race.
func Part2(input string) (int, error) {
	r, err := ParseKerned(input)
	if err != nil {
		return 0, err
	}
	return r.WinCount(), nil
}
