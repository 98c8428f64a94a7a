package history

import (
	"os"
	"strings"

	"github.com/aceteam-ai/fiolog/internal/platform"
	"github.com/shirou/gopsutil/v3/host"
)

// HostFacts returns the hostname and a short platform description such as
// "ubuntu 22.04 (linux)". If host info is unavailable it falls back to
// os.Hostname and the Go OS name.
func HostFacts() (hostname, desc string) {
	info, err := host.Info()
	if err != nil {
		hostname, _ = os.Hostname()
		return hostname, platform.OS()
	}
	return info.Hostname, describePlatform(info.Platform, info.PlatformVersion, info.OS)
}

func describePlatform(name, version, osName string) string {
	if osName == "" {
		osName = platform.OS()
	}
	desc := strings.TrimSpace(name + " " + version)
	if desc == "" {
		return osName
	}
	return desc + " (" + osName + ")"
}
