package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOS(t *testing.T) {
	if got := OS(); got != runtime.GOOS {
		t.Errorf("OS() = %s, want %s", got, runtime.GOOS)
	}
}

func TestIsDarwin(t *testing.T) {
	result := IsDarwin()
	expected := runtime.GOOS == "darwin"
	if result != expected {
		t.Errorf("IsDarwin() = %v, want %v", result, expected)
	}
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %s, want %s", got, dir)
	}
	if got := ConfigFile(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("ConfigFile() = %s", got)
	}
	if got := HistoryFile(); got != filepath.Join(dir, "history.db") {
		t.Errorf("HistoryFile() = %s", got)
	}
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv(HomeEnv, "")
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir() returned empty string")
	}

	// When not running as root, ConfigDir returns ~/.fiolog
	if !IsRoot() {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Fatalf("Failed to get home dir: %v", err)
		}
		if expected := filepath.Join(home, ".fiolog"); dir != expected {
			t.Errorf("ConfigDir() = %s, want %s", dir, expected)
		}
	}
}
