package fio

import "testing"

func TestDetectMode(t *testing.T) {
	tests := []struct {
		names []string
		want  Mode
	}{
		{nil, Standalone},
		{[]string{"jobA_bw.log", "jobA_iops.log"}, Standalone},
		{[]string{"jobA_clat.log.1", "jobB_clat.log.1"}, ClientServer},
		{[]string{"jobA_bw.log", "readme.txt", "jobA_bw.log.2"}, ClientServer},
	}
	for _, tt := range tests {
		if got := DetectMode(tt.names); got != tt.want {
			t.Errorf("DetectMode(%v) = %v, want %v", tt.names, got, tt.want)
		}
	}
}

func TestModeSelects(t *testing.T) {
	if !Standalone.Selects("jobA_bw.log") {
		t.Error("standalone should select .log files")
	}
	if Standalone.Selects("notes.txt") {
		t.Error("standalone should not select .txt files")
	}
	if Standalone.Selects("jobA_bw.log.1") {
		t.Error("standalone should not select numbered logs")
	}
	if !ClientServer.Selects("jobA_bw.log.1") {
		t.Error("client/server should select numbered logs")
	}
	if ClientServer.Selects("jobA_bw.log") {
		t.Error("client/server should not select plain .log files")
	}
}

func TestModeString(t *testing.T) {
	if Standalone.String() != "standalone" {
		t.Errorf("Standalone.String() = %q", Standalone.String())
	}
	if ClientServer.String() != "client/server" {
		t.Errorf("ClientServer.String() = %q", ClientServer.String())
	}
}
