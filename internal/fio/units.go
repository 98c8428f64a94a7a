package fio

import "math"

const (
	nsPerMs    = 1_000_000
	kibPerMiB  = 1024
	roundScale = 100
)

// ConvertLatency converts nanoseconds to milliseconds rounded to 2 decimals.
func ConvertLatency(ns float64) float64 {
	return round2(ns / nsPerMs)
}

// ConvertBandwidth converts KiB/s to MiB/s rounded to 2 decimals.
func ConvertBandwidth(kib float64) float64 {
	return round2(kib / kibPerMiB)
}

// Convert applies the conversion for kind. iops and unknown kinds pass through.
func Convert(kind MetricKind, v float64) float64 {
	switch {
	case kind.IsLatency():
		return ConvertLatency(v)
	case kind == Bandwidth:
		return ConvertBandwidth(v)
	default:
		return v
	}
}

// round2 rounds half to even at two decimal places.
func round2(v float64) float64 {
	return math.RoundToEven(v*roundScale) / roundScale
}
