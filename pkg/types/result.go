package types

import "time"

// Result is the outcome of running one part of one day.
type Result struct {
	RunID     string        `json:"run_id"`
	Day       int           `json:"day"`
	Part      int           `json:"part"`
	Answer    int           `json:"answer"`
	Err       string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	StartedAt time.Time     `json:"started_at"`
}

// Failed reports whether the solver returned an error.
func (r Result) Failed() bool {
	return r.Err != ""
}
