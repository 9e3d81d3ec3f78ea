// SQL schema and queries for the runs table.
package sqlite

// Schema DDL for the run history. Statements are idempotent so an existing
// database is reused across runs.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    day INTEGER NOT NULL,
    part INTEGER NOT NULL,
    answer INTEGER NOT NULL,
    error TEXT NOT NULL DEFAULT '',
    duration_ns INTEGER NOT NULL,
    started_at TEXT NOT NULL
);`

	idxRunsDayPart   = `CREATE INDEX IF NOT EXISTS idx_runs_day_part ON runs(day, part);`
	idxRunsStartedAt = `CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`
)

// schemaDDL lists all statements in execution order.
var schemaDDL = []string{
	createRuns,
	idxRunsDayPart,
	idxRunsStartedAt,
}

const runColumns = `run_id, day, part, answer, error, duration_ns, started_at`

const (
	insertRun       = `INSERT INTO runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertRunIgnore = `INSERT OR IGNORE INTO runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectHistory = `SELECT ` + runColumns + ` FROM runs
WHERE (?1 = 0 OR day = ?1)
ORDER BY started_at DESC, part DESC
LIMIT ?2`

	selectLatest = `SELECT ` + runColumns + ` FROM (
    SELECT *, ROW_NUMBER() OVER (
        PARTITION BY day, part ORDER BY started_at DESC, rowid DESC
    ) AS rn FROM runs
) WHERE rn = 1
ORDER BY day, part`

	selectAll = `SELECT ` + runColumns + ` FROM runs ORDER BY started_at, day, part`
)
