package fio

import (
	"cmp"
	"log/slog"
	"slices"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Key identifies one cell of the long-format table.
type Key struct {
	RowNum    int
	Source    string
	Metric    MetricKind
	Direction Direction
}

// MergedRecord is the converted, reduced value for one Key.
type MergedRecord struct {
	Key
	Value float64
}

// Reducer combines the values that share a key. values is never empty.
type Reducer func(values []float64) float64

func reduceFirst(values []float64) float64 { return values[0] }

func reduceSum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

func reduceMean(values []float64) float64 {
	return reduceSum(values) / float64(len(values))
}

// clientServerReducers averages latency seen by each client and sums
// throughput across clients. Kinds missing here fall back to reduceFirst.
var clientServerReducers = map[MetricKind]Reducer{
	CompletionLatency: reduceMean,
	SubmissionLatency: reduceMean,
	TotalLatency:      reduceMean,
	Bandwidth:         reduceSum,
	IOPS:              reduceSum,
}

// ReducerFor returns the reduction used for kind under mode.
func ReducerFor(mode Mode, kind MetricKind) Reducer {
	if mode != ClientServer {
		return reduceFirst
	}
	if r, ok := clientServerReducers[kind]; ok {
		return r
	}
	return reduceFirst
}

// Aggregator collects samples from many files and reduces them per Key.
// Files must be added in filename order; in standalone mode the first
// sample seen for a key wins.
type Aggregator struct {
	mode   Mode
	logger *slog.Logger
	groups map[Key][]float64
	order  []Key
}

// NewAggregator creates an Aggregator for mode. A nil logger discards output.
func NewAggregator(mode Mode, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = discardLogger
	}
	return &Aggregator{
		mode:   mode,
		logger: logger,
		groups: make(map[Key][]float64),
	}
}

// Add converts the samples of lf to human units and groups them by key.
func (a *Aggregator) Add(lf *LogFile) {
	for _, s := range lf.Samples {
		k := Key{RowNum: s.RowNum, Source: s.Source, Metric: s.Metric, Direction: s.Direction}
		if _, ok := a.groups[k]; !ok {
			a.order = append(a.order, k)
		}
		a.groups[k] = append(a.groups[k], Convert(s.Metric, s.Value))
	}
}

// Records reduces every group and returns one record per key, sorted by
// row, source, metric and direction.
func (a *Aggregator) Records() []MergedRecord {
	records := make([]MergedRecord, 0, len(a.order))
	duplicates := 0
	for _, k := range a.order {
		values := a.groups[k]
		if len(values) == 0 {
			a.logger.Warn("skipping aggregation key", "row", k.RowNum, "source", k.Source,
				"metric", string(k.Metric), "direction", k.Direction.String(), "error", ErrEmptyGroup)
			continue
		}
		if len(values) > 1 {
			duplicates++
		}
		reduce := ReducerFor(a.mode, k.Metric)
		records = append(records, MergedRecord{Key: k, Value: reduce(values)})
	}
	if duplicates > 0 {
		a.logger.Debug("merged duplicate keys", "mode", a.mode.String(), "keys", duplicates)
	}
	slices.SortFunc(records, func(x, y MergedRecord) int {
		return compareKeys(x.Key, y.Key)
	})
	return records
}

func compareKeys(x, y Key) int {
	return cmp.Or(
		cmp.Compare(x.RowNum, y.RowNum),
		cmp.Compare(x.Source, y.Source),
		cmp.Compare(x.Metric, y.Metric),
		cmp.Compare(x.Direction.String(), y.Direction.String()),
	)
}
