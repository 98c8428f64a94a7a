package fio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
)

// FileReport describes how one input file was handled.
type FileReport struct {
	Name    string
	Source  string
	Metric  MetricKind
	Samples int
	Skipped int
	Err     error
}

// Result is the outcome of processing one directory.
type Result struct {
	Mode  Mode
	Files []FileReport
	Table *Table
}

// SkippedRecords returns the total number of malformed lines dropped.
func (r *Result) SkippedRecords() int {
	n := 0
	for _, f := range r.Files {
		n += f.Skipped
	}
	return n
}

// SkippedFiles returns the files that could not be parsed at all.
func (r *Result) SkippedFiles() []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// ListNames returns the regular files at the root of fsys in lexicographic order.
func ListNames(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Process reads every log file in fsys, merges the samples according to
// the detected mode and returns the wide table.
func Process(fsys fs.FS, logger *slog.Logger) (*Result, error) {
	return ProcessWithProgress(fsys, logger, nil)
}

// ProcessWithProgress is Process with a callback invoked with each selected
// filename before it is read. progress may be nil.
func ProcessWithProgress(fsys fs.FS, logger *slog.Logger, progress func(name string)) (*Result, error) {
	if logger == nil {
		logger = discardLogger
	}
	names, err := ListNames(fsys)
	if err != nil {
		return nil, err
	}

	mode := DetectMode(names)
	logger.Info("detected mode", "mode", mode.String())

	res := &Result{Mode: mode}
	agg := NewAggregator(mode, logger)
	parsed := 0
	for _, name := range names {
		if !mode.Selects(name) {
			continue
		}
		logger.Debug("processing file", "file", name)
		if progress != nil {
			progress(name)
		}
		lf, err := parseFile(fsys, name, logger)
		if err != nil {
			if !errors.Is(err, ErrMalformedFilename) {
				return nil, err
			}
			logger.Warn("skipping file", "file", name, "error", err)
			res.Files = append(res.Files, FileReport{Name: name, Err: err})
			continue
		}
		res.Files = append(res.Files, FileReport{
			Name:    name,
			Source:  lf.Source,
			Metric:  lf.Metric,
			Samples: len(lf.Samples),
			Skipped: lf.Skipped,
		})
		if !lf.Metric.Known() {
			logger.Warn("unrecognized metric, values left unconverted", "file", name, "metric", string(lf.Metric))
		}
		agg.Add(lf)
		parsed++
	}
	if parsed == 0 {
		return nil, fmt.Errorf("%w (mode %s)", ErrEmptyInputSet, mode)
	}

	res.Table = Pivot(agg.Records())
	for j, c := range res.Table.Columns {
		if n := res.Table.ZeroFilled[j]; n > 0 {
			logger.Debug("zero-filled cells", "column", c.Name(), "cells", n)
		}
	}
	logger.Info("built table", "rows", res.Table.Len(), "columns", len(res.Table.Columns))
	return res, nil
}

func parseFile(fsys fs.FS, name string, logger *slog.Logger) (*LogFile, error) {
	if _, _, err := ParseFilename(name); err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return ParseLog(name, f, logger)
}
