// internal/ui/spinner.go
package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status message while a batch step runs. On writers that
// are not terminals it prints nothing until Stop.
type Spinner struct {
	mu        sync.Mutex
	message   string
	detail    string
	running   bool
	animated  bool
	done      chan struct{}
	stopped   chan struct{}
	writer    io.Writer
	startTime time.Time
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		writer:   w,
		animated: IsTerminal(w),
	}
}

// Start begins the spinner animation with a message
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.message = message
	s.detail = ""
	s.running = true
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	s.startTime = time.Now()
	animated := s.animated
	s.mu.Unlock()

	if animated {
		go s.animate()
	} else {
		close(s.stopped)
	}
}

// UpdateDetail sets additional detail text (shown after message)
func (s *Spinner) UpdateDetail(detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = detail
}

// Stop stops the spinner and prints finalMessage if it is not empty.
func (s *Spinner) Stop(finalMessage string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	stopped := s.stopped
	animated := s.animated
	s.mu.Unlock()

	<-stopped
	if animated {
		s.clearLine()
	}
	if finalMessage != "" {
		fmt.Fprintln(s.writer, finalMessage)
	}
}

// Success stops with a green checkmark
func (s *Spinner) Success(message string) {
	s.Stop(color.GreenString("✓") + " " + message)
}

// Fail stops with a red X
func (s *Spinner) Fail(message string) {
	s.Stop(color.RedString("✗") + " " + message)
}

func (s *Spinner) animate() {
	defer close(s.stopped)
	frameIndex := 0
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := spinnerFrames[frameIndex%len(spinnerFrames)]
			message := s.message
			detail := s.detail
			elapsed := time.Since(s.startTime)
			s.mu.Unlock()

			s.clearLine()
			s.renderFrame(frame, message, detail, elapsed)
			frameIndex++
		}
	}
}

func (s *Spinner) clearLine() {
	fmt.Fprint(s.writer, "\r\033[K")
}

func (s *Spinner) renderFrame(frame, message, detail string, elapsed time.Duration) {
	var timeStr string
	if elapsed > time.Second {
		timeStr = color.HiBlackString(" (%s)", formatDuration(elapsed))
	}

	var detailStr string
	if detail != "" {
		detailStr = color.HiBlackString(" %s", detail)
	}

	fmt.Fprintf(s.writer, "%s %s%s%s", color.CyanString(frame), message, detailStr, timeStr)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// StatusLine prints one-line status updates without animation
type StatusLine struct {
	writer io.Writer
}

// NewStatusLine creates a status line writer on w
func NewStatusLine(w io.Writer) *StatusLine {
	return &StatusLine{writer: w}
}

// Success prints a success status
func (sl *StatusLine) Success(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.GreenString("✓"), message)
}

// Fail prints a failure status
func (sl *StatusLine) Fail(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.RedString("✗"), message)
}

// Warning prints a warning status
func (sl *StatusLine) Warning(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.YellowString("⚠"), message)
}

// Info prints an info status
func (sl *StatusLine) Info(message string) {
	fmt.Fprintf(sl.writer, "%s %s\n", color.BlueString("ℹ"), message)
}

// Step prints a step in a process (e.g., "[1/3] Parsing logs")
func (sl *StatusLine) Step(current, total int, message string) {
	progress := color.HiBlackString("[%d/%d]", current, total)
	fmt.Fprintf(sl.writer, "%s %s %s\n", color.CyanString("▸"), progress, message)
}

// RunWithSpinner executes fn while showing a spinner on w
func RunWithSpinner(w io.Writer, message string, fn func() error) error {
	return RunWithProgress(w, message, func(*Spinner) error { return fn() })
}

// RunWithProgress is RunWithSpinner for work that reports its own progress
// through the spinner's detail text.
func RunWithProgress(w io.Writer, message string, fn func(s *Spinner) error) error {
	spinner := NewSpinner(w)
	spinner.Start(message)
	err := fn(spinner)
	if err != nil {
		spinner.Fail(message + " - failed")
		return err
	}
	spinner.Success(message)
	return nil
}
