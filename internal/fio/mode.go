package fio

import "strings"

// Mode selects how log files are chosen and how duplicate keys are combined.
type Mode int

const (
	// Standalone means a single fio instance wrote one log per job and metric.
	Standalone Mode = iota
	// ClientServer means several fio clients wrote numbered logs that must be merged.
	ClientServer
)

const (
	clientServerMarker = ".log."
	standaloneSuffix   = ".log"
)

func (m Mode) String() string {
	if m == ClientServer {
		return "client/server"
	}
	return "standalone"
}

// DetectMode returns ClientServer if any filename carries the ".log." infix.
func DetectMode(names []string) Mode {
	for _, name := range names {
		if strings.Contains(name, clientServerMarker) {
			return ClientServer
		}
	}
	return Standalone
}

// Selects reports whether name is an input file under this mode.
func (m Mode) Selects(name string) bool {
	if m == ClientServer {
		return strings.Contains(name, clientServerMarker)
	}
	return strings.HasSuffix(name, standaloneSuffix)
}
