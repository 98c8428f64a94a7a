package fio

import "testing"

func logFile(source string, metric MetricKind, dir Direction, values ...float64) *LogFile {
	lf := &LogFile{Name: source + "_" + string(metric) + ".log", Source: source, Metric: metric}
	for i, v := range values {
		lf.Samples = append(lf.Samples, Sample{RowNum: i + 1, Direction: dir, Value: v, Source: source, Metric: metric})
	}
	return lf
}

func TestAggregatorClientServerMeanLatency(t *testing.T) {
	agg := NewAggregator(ClientServer, nil)
	agg.Add(logFile("jobA", CompletionLatency, Read, 10_000_000))
	agg.Add(logFile("jobA", CompletionLatency, Read, 20_000_000))

	recs := agg.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Value != 15.0 {
		t.Errorf("merged latency = %v, want 15.0", recs[0].Value)
	}
}

func TestAggregatorClientServerSumThroughput(t *testing.T) {
	agg := NewAggregator(ClientServer, nil)
	agg.Add(logFile("jobA", Bandwidth, Write, 5*1024))
	agg.Add(logFile("jobA", Bandwidth, Write, 7*1024))
	agg.Add(logFile("jobA", IOPS, Write, 100))
	agg.Add(logFile("jobA", IOPS, Write, 250))

	recs := agg.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	for _, r := range recs {
		switch r.Metric {
		case Bandwidth:
			if r.Value != 12.0 {
				t.Errorf("merged bw = %v, want 12.0", r.Value)
			}
		case IOPS:
			if r.Value != 350 {
				t.Errorf("merged iops = %v, want 350", r.Value)
			}
		default:
			t.Errorf("unexpected metric %q", r.Metric)
		}
	}
}

func TestAggregatorStandaloneFirstWins(t *testing.T) {
	agg := NewAggregator(Standalone, nil)
	agg.Add(logFile("jobA", Bandwidth, Read, 1024))
	agg.Add(logFile("jobA", Bandwidth, Read, 4096))

	recs := agg.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Value != 1.0 {
		t.Errorf("standalone value = %v, want first file's 1.0", recs[0].Value)
	}
}

func TestAggregatorKeepsDistinctSources(t *testing.T) {
	agg := NewAggregator(ClientServer, nil)
	agg.Add(logFile("jobA", CompletionLatency, Read, 10_000_000))
	agg.Add(logFile("jobB", CompletionLatency, Read, 20_000_000))

	recs := agg.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (one per source)", len(recs))
	}
	if recs[0].Source != "jobA" || recs[0].Value != 10 {
		t.Errorf("record 0 = %+v, want jobA 10", recs[0])
	}
	if recs[1].Source != "jobB" || recs[1].Value != 20 {
		t.Errorf("record 1 = %+v, want jobB 20", recs[1])
	}
}

func TestAggregatorUnknownMetricFirstWins(t *testing.T) {
	agg := NewAggregator(ClientServer, nil)
	agg.Add(logFile("jobA", MetricKind("foo"), Read, 3))
	agg.Add(logFile("jobA", MetricKind("foo"), Read, 9))

	recs := agg.Records()
	if len(recs) != 1 || recs[0].Value != 3 {
		t.Fatalf("records = %+v, want single value 3", recs)
	}
}

func TestAggregatorSkipsEmptyGroup(t *testing.T) {
	agg := NewAggregator(ClientServer, nil)
	agg.Add(logFile("jobA", IOPS, Read, 1))
	k := Key{RowNum: 9, Source: "ghost", Metric: IOPS, Direction: Read}
	agg.groups[k] = nil
	agg.order = append(agg.order, k)

	recs := agg.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Source != "jobA" {
		t.Errorf("unexpected record %+v", recs[0])
	}
}

func TestAggregatorRecordsSorted(t *testing.T) {
	agg := NewAggregator(Standalone, nil)
	agg.Add(logFile("jobB", IOPS, Write, 1, 2))
	agg.Add(logFile("jobA", IOPS, Read, 3, 4))

	recs := agg.Records()
	want := []Key{
		{1, "jobA", IOPS, Read},
		{1, "jobB", IOPS, Write},
		{2, "jobA", IOPS, Read},
		{2, "jobB", IOPS, Write},
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i, k := range want {
		if recs[i].Key != k {
			t.Errorf("record %d key = %+v, want %+v", i, recs[i].Key, k)
		}
	}
}

func TestReducerFor(t *testing.T) {
	vals := []float64{2, 4}
	tests := []struct {
		mode Mode
		kind MetricKind
		want float64
	}{
		{Standalone, CompletionLatency, 2},
		{Standalone, Bandwidth, 2},
		{ClientServer, SubmissionLatency, 3},
		{ClientServer, TotalLatency, 3},
		{ClientServer, Bandwidth, 6},
		{ClientServer, IOPS, 6},
		{ClientServer, MetricKind("other"), 2},
	}
	for _, tt := range tests {
		if got := ReducerFor(tt.mode, tt.kind)(vals); got != tt.want {
			t.Errorf("ReducerFor(%v, %s) = %v, want %v", tt.mode, tt.kind, got, tt.want)
		}
	}
}
