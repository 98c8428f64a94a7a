package fio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	nameSeparator  = "_"
	fieldSeparator = ","

	fieldValue     = 1
	fieldDirection = 2
)

// ParseFilename splits a log filename such as "jobA_clat.log.1" into its
// source ("jobA") and metric kind ("clat").
func ParseFilename(name string) (string, MetricKind, error) {
	parts := strings.Split(name, nameSeparator)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedFilename, name)
	}
	source := strings.TrimSpace(parts[0])
	metric, _, _ := strings.Cut(parts[1], ".")
	metric = strings.TrimSpace(metric)
	if source == "" || metric == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedFilename, name)
	}
	return source, MetricKind(metric), nil
}

// ParseLog reads the lines of one log file. Malformed lines are skipped and
// counted; they still consume a row position so later samples stay aligned
// with the other sources. Blank lines are ignored.
func ParseLog(name string, r io.Reader, logger *slog.Logger) (*LogFile, error) {
	if logger == nil {
		logger = discardLogger
	}
	source, metric, err := ParseFilename(name)
	if err != nil {
		return nil, err
	}

	lf := &LogFile{Name: name, Source: source, Metric: metric}
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row++
		s, err := parseLine(line)
		if err != nil {
			lf.Skipped++
			logger.Debug("skipping log line", "file", name, "row", row, "error", err)
			continue
		}
		s.RowNum = row
		s.Source = source
		s.Metric = metric
		lf.Samples = append(lf.Samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lf, nil
}

// parseLine extracts value and direction from
// "timestamp, value, direction, block_size, offset, command_priority".
func parseLine(line string) (Sample, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) <= fieldValue {
		return Sample{}, fmt.Errorf("%w: missing value field", ErrMalformedRecord)
	}
	raw := strings.TrimSpace(fields[fieldValue])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Sample{}, fmt.Errorf("%w: value %q", ErrMalformedRecord, raw)
	}
	dir := Unknown
	if len(fields) > fieldDirection {
		dir = ParseDirection(strings.TrimSpace(fields[fieldDirection]))
	}
	return Sample{Direction: dir, Value: v}, nil
}
