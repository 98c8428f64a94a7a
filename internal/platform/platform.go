package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// HomeEnv overrides the directory returned by ConfigDir.
const HomeEnv = "FIOLOG_HOME"

// OS returns the current operating system (linux, darwin or windows)
func OS() string {
	return runtime.GOOS
}

// IsDarwin returns true if running on macOS
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// IsRoot reports whether the process runs as root. Always false on Windows.
func IsRoot() bool {
	if IsWindows() {
		return false
	}
	return os.Geteuid() == 0
}

// ConfigDir returns the directory holding config.yaml and the run history.
// FIOLOG_HOME wins when set; otherwise root gets a system-wide path and
// everyone else ~/.fiolog.
func ConfigDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	if !IsRoot() {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".fiolog")
		}
	}
	if IsDarwin() {
		return "/usr/local/etc/fiolog"
	}
	if IsWindows() {
		return `C:\ProgramData\fiolog`
	}
	return "/etc/fiolog"
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// HistoryFile returns the default run history database path.
func HistoryFile() string {
	return filepath.Join(ConfigDir(), "history.db")
}
