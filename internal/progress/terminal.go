// Package progress provides terminal capability detection and a spinner
// for longer-running operations like repository scans.
package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// DetectTerminalCapabilities detects terminal features.
// Checks: stdout isatty, NO_COLOR env, CHLOG_ASCII env, terminal width.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("CHLOG_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
		Width:           width,
	}
}

// NewSpinner returns a started spinner with the given suffix message, or
// nil when stdout is not a terminal. Callers must handle the nil case.
// Unicode terminals get braille dots (set 14), others |/-\ (set 9).
func NewSpinner(message string) *spinner.Spinner {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return nil
	}

	set := 9
	if caps.SupportsUnicode {
		set = 14
	}

	s := spinner.New(spinner.CharSets[set], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	return s
}

// StopSpinner stops a spinner if one is running.
func StopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}
