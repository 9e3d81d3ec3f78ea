// JSON form of a stored run, shared by queries and JSONL files.
package sqlite

import (
	"time"

	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

// timeFormat is fixed width so that started_at sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// runJSON is one line of an exported history file. Field names match the
// runs table columns.
type runJSON struct {
	RunID      string `json:"run_id"`
	Day        int    `json:"day"`
	Part       int    `json:"part"`
	Answer     int    `json:"answer"`
	Error      string `json:"error,omitempty"`
	DurationNS int64  `json:"duration_ns"`
	StartedAt  string `json:"started_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

func toRunJSON(r types.Result) runJSON {
	return runJSON{
		RunID:      r.RunID,
		Day:        r.Day,
		Part:       r.Part,
		Answer:     r.Answer,
		Error:      r.Err,
		DurationNS: int64(r.Duration),
		StartedAt:  formatTime(r.StartedAt),
	}
}

func (j runJSON) result() (types.Result, error) {
	started, err := time.Parse(timeFormat, j.StartedAt)
	if err != nil {
		return types.Result{}, err
	}
	return types.Result{
		RunID:     j.RunID,
		Day:       j.Day,
		Part:      j.Part,
		Answer:    j.Answer,
		Err:       j.Error,
		Duration:  time.Duration(j.DurationNS),
		StartedAt: started,
	}, nil
}
