// Package fio turns fio per-metric log files into a single wide table.
//
// Files are parsed into samples, merged across sources by (row, source,
// metric, direction), converted to human units and pivoted so that every
// sample index becomes one row.
package fio

import "strconv"

// Direction is the I/O direction recorded in each log line.
type Direction int

const (
	Read Direction = iota
	Write
	Trim
	Unknown
)

// String returns the column label used for the direction.
func (d Direction) String() string {
	switch d {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Trim:
		return "Trim"
	default:
		return "Unknown"
	}
}

// ParseDirection maps fio's direction code to a Direction.
// Codes other than 0, 1 and 2 (or text that is not an integer) yield Unknown.
func ParseDirection(code string) Direction {
	n, err := strconv.Atoi(code)
	if err != nil {
		return Unknown
	}
	switch n {
	case 0:
		return Read
	case 1:
		return Write
	case 2:
		return Trim
	default:
		return Unknown
	}
}

// MetricKind is the metric name taken from the log filename, e.g. "clat" or "bw".
type MetricKind string

const (
	CompletionLatency MetricKind = "clat"
	SubmissionLatency MetricKind = "slat"
	TotalLatency      MetricKind = "lat"
	Bandwidth         MetricKind = "bw"
	IOPS              MetricKind = "iops"
)

// IsLatency reports whether values of this kind are nanosecond latencies.
func (k MetricKind) IsLatency() bool {
	switch k {
	case CompletionLatency, SubmissionLatency, TotalLatency:
		return true
	}
	return false
}

// Known reports whether the kind is one fiolog knows how to convert and reduce.
func (k MetricKind) Known() bool {
	return k.IsLatency() || k == Bandwidth || k == IOPS
}

// Sample is one parsed log line.
type Sample struct {
	RowNum    int
	Direction Direction
	Value     float64
	Source    string
	Metric    MetricKind
}

// LogFile is the parsed content of a single log file.
type LogFile struct {
	Name    string
	Source  string
	Metric  MetricKind
	Samples []Sample

	// Skipped counts lines dropped as malformed.
	Skipped int
}
