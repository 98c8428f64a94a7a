package fio

import "errors"

var (
	// ErrMalformedFilename is returned when a filename has no source or metric segment.
	ErrMalformedFilename = errors.New("malformed filename")

	// ErrMalformedRecord is returned for a log line whose value is not numeric.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrEmptyInputSet is returned when no file in the directory matches the detected mode.
	ErrEmptyInputSet = errors.New("no log files to aggregate")

	// ErrEmptyGroup marks an aggregation key with no contributing samples.
	ErrEmptyGroup = errors.New("empty aggregation group")
)
