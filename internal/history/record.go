package history

import "time"

// RunRecord captures one `fiolog parse` invocation.
type RunRecord struct {
	// Database ID (set after insert)
	ID int64

	// Run identification
	RunID     string
	Directory string
	Mode      string // "standalone" or "client/server"

	// Output
	Format     string
	OutputPath string

	// Shape
	Files          int
	SkippedFiles   int
	SkippedRecords int
	Rows           int
	Columns        int

	// Timing
	StartedAt   time.Time
	CompletedAt time.Time
	DurationMs  int64

	// Host that produced the export
	Hostname string
	Platform string
}
