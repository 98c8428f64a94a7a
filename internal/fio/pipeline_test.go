package fio

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
)

func file(lines ...string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(strings.Join(lines, "\n") + "\n")}
}

func TestProcessStandalone(t *testing.T) {
	fsys := fstest.MapFS{
		"jobA_bw.log":   file("100, 1024, 0, 4096, 0, 0", "200, 2048, 0, 4096, 0, 0", "300, 3072, 0, 4096, 0, 0"),
		"jobA_iops.log": file("100, 10, 0, 4096, 0, 0", "200, 20, 0, 4096, 0, 0", "300, 30, 0, 4096, 0, 0"),
		"notes.txt":     file("ignored"),
	}

	res, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Mode != Standalone {
		t.Errorf("Mode = %v, want standalone", res.Mode)
	}
	tbl := res.Table
	if tbl.Len() != 3 {
		t.Fatalf("rows = %d, want 3", tbl.Len())
	}
	wantHeader := []string{"row_num", "jobA_bw_Read", "jobA_iops_Read"}
	if !slices.Equal(tbl.Header(), wantHeader) {
		t.Fatalf("Header() = %v, want %v", tbl.Header(), wantHeader)
	}
	want := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	if !reflect.DeepEqual(tbl.Values, want) {
		t.Errorf("Values = %v, want %v", tbl.Values, want)
	}
	for j, n := range tbl.ZeroFilled {
		if n != 0 {
			t.Errorf("column %s zero-filled %d cells, want 0", tbl.Columns[j].Name(), n)
		}
	}
}

func TestProcessClientServerKeepsSourcesApart(t *testing.T) {
	fsys := fstest.MapFS{
		"jobA_clat.log.1": file("1, 10000000, 0, 4096, 0, 0", "2, 30000000, 0, 4096, 0, 0"),
		"jobA_clat.log.2": file("1, 20000000, 0, 4096, 0, 0", "2, 50000000, 0, 4096, 0, 0"),
		"jobB_clat.log.1": file("1, 40000000, 0, 4096, 0, 0"),
		"jobA_bw.log":     file("1, 1024, 0, 4096, 0, 0"),
	}

	res, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Mode != ClientServer {
		t.Fatalf("Mode = %v, want client/server", res.Mode)
	}
	if len(res.Files) != 3 {
		t.Errorf("processed %d files, want 3 (plain .log excluded)", len(res.Files))
	}
	tbl := res.Table
	wantHeader := []string{"row_num", "jobA_clat_Read", "jobB_clat_Read"}
	if !slices.Equal(tbl.Header(), wantHeader) {
		t.Fatalf("Header() = %v, want %v", tbl.Header(), wantHeader)
	}
	want := [][]float64{{15, 40}, {40, 0}}
	if !reflect.DeepEqual(tbl.Values, want) {
		t.Errorf("Values = %v, want %v", tbl.Values, want)
	}
}

func TestProcessClientServerSumsBandwidth(t *testing.T) {
	fsys := fstest.MapFS{
		"jobA_bw.log.1": file("1, 5120, 1, 4096, 0, 0"),
		"jobA_bw.log.2": file("1, 7168, 1, 4096, 0, 0"),
	}
	res, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := res.Table.Values[0][0]; got != 12.0 {
		t.Errorf("merged bandwidth = %v, want 12.0", got)
	}
}

func TestProcessMalformedLine(t *testing.T) {
	fsys := fstest.MapFS{
		"jobA_iops.log": file("1, 10, 0, 4096, 0, 0", "2, bad,value, 0, 4096, 0", "3, 30, 0, 4096, 0, 0"),
	}
	res, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.SkippedRecords() != 1 {
		t.Errorf("SkippedRecords() = %d, want 1", res.SkippedRecords())
	}
	if !slices.Equal(res.Table.RowNums, []int{1, 3}) {
		t.Errorf("RowNums = %v, want [1 3]", res.Table.RowNums)
	}
	if !reflect.DeepEqual(res.Table.Values, [][]float64{{10}, {30}}) {
		t.Errorf("Values = %v", res.Table.Values)
	}
}

func TestProcessDropsNonFiniteValues(t *testing.T) {
	fsys := fstest.MapFS{
		"jobA_iops.log": file("1, 10, 0, 4096, 0, 0", "2, nan, 0, 4096, 0, 0", "3, inf, 0, 4096, 0, 0", "4, 40, 0, 4096, 0, 0"),
	}

	res, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.SkippedRecords() != 2 {
		t.Errorf("SkippedRecords() = %d, want 2", res.SkippedRecords())
	}
	if !slices.Equal(res.Table.RowNums, []int{1, 4}) {
		t.Errorf("RowNums = %v, want [1 4]", res.Table.RowNums)
	}
	if !reflect.DeepEqual(res.Table.Values, [][]float64{{10}, {40}}) {
		t.Errorf("Values = %v", res.Table.Values)
	}
}

func TestProcessStandaloneFirstFileWins(t *testing.T) {
	// Both names parse to source jobA, metric bw; "jobA_bw.log" sorts first.
	fsys := fstest.MapFS{
		"jobA_bw_x.log": file("1, 4096, 0, 4096, 0, 0", "2, 4096, 0, 4096, 0, 0"),
		"jobA_bw.log":   file("1, 2048, 0, 4096, 0, 0"),
	}

	res, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Mode != Standalone {
		t.Fatalf("Mode = %v, want standalone", res.Mode)
	}
	if !slices.Equal(res.Table.Header(), []string{"row_num", "jobA_bw_Read"}) {
		t.Fatalf("Header() = %v", res.Table.Header())
	}
	want := [][]float64{{2}, {4}}
	if !reflect.DeepEqual(res.Table.Values, want) {
		t.Errorf("Values = %v, want %v", res.Table.Values, want)
	}
}

func TestProcessWithProgressReportsSelectedFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"jobB_iops.log.1": file("1, 7, 0, 0, 0, 0"),
		"jobA_iops.log.2": file("1, 5, 0, 0, 0, 0"),
		"jobA_iops.log":   file("1, 9, 0, 0, 0, 0"),
	}
	var seen []string
	if _, err := ProcessWithProgress(fsys, nil, func(name string) { seen = append(seen, name) }); err != nil {
		t.Fatalf("ProcessWithProgress: %v", err)
	}
	want := []string{"jobA_iops.log.2", "jobB_iops.log.1"}
	if !slices.Equal(seen, want) {
		t.Errorf("progress saw %v, want %v", seen, want)
	}
}

func TestProcessSkipsMalformedFilename(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	fsys := fstest.MapFS{
		"broken.log":    file("1, 1, 0, 0, 0, 0"),
		"jobA_iops.log": file("1, 5, 0, 0, 0, 0"),
	}

	res, err := Process(fsys, logger)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	skipped := res.SkippedFiles()
	if len(skipped) != 1 || skipped[0].Name != "broken.log" {
		t.Fatalf("SkippedFiles() = %+v, want broken.log", skipped)
	}
	if !errors.Is(skipped[0].Err, ErrMalformedFilename) {
		t.Errorf("skip error = %v, want ErrMalformedFilename", skipped[0].Err)
	}
	if !strings.Contains(buf.String(), "skipping file") {
		t.Errorf("expected warning in log output, got %q", buf.String())
	}
	if len(res.Table.Columns) != 1 {
		t.Errorf("columns = %d, want 1", len(res.Table.Columns))
	}
}

func TestProcessEmptyInputSet(t *testing.T) {
	tests := []fstest.MapFS{
		{},
		{"readme.txt": file("nothing here")},
		{"broken.log": file("1, 1, 0, 0, 0, 0")},
	}
	for i, fsys := range tests {
		if _, err := Process(fsys, nil); !errors.Is(err, ErrEmptyInputSet) {
			t.Errorf("case %d: error = %v, want ErrEmptyInputSet", i, err)
		}
	}
}

func TestProcessIdempotent(t *testing.T) {
	fsys := fstest.MapFS{
		"jobA_clat.log.1": file("1, 1000000, 0, 0, 0, 0", "2, 2000000, 1, 0, 0, 0"),
		"jobA_clat.log.2": file("1, 3000000, 0, 0, 0, 0"),
		"jobB_iops.log.1": file("1, 7, 2, 0, 0, 0", "2, 9, 5, 0, 0, 0"),
	}
	first, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	second, err := Process(fsys, nil)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !reflect.DeepEqual(first.Table, second.Table) {
		t.Errorf("tables differ between runs")
	}
}
