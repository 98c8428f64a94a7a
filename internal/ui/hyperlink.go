// internal/ui/hyperlink.go
package ui

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Hyperlink wraps text in an OSC 8 escape so terminals that support it
// (iTerm2, Windows Terminal, GNOME Terminal, Konsole) make it clickable.
func Hyperlink(target, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", target, text)
}

// FileLink returns path as a clickable file:// link showing the path itself.
// If the path cannot be made absolute it is returned unchanged.
func FileLink(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return Hyperlink(u.String(), path)
}
