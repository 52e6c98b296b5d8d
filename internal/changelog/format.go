package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// typeStyle defines the terminal color for a change type.
type typeStyle struct {
	Color *color.Color
}

var typeStyles = map[Type]typeStyle{
	TypeBreaking: {Color: color.New(color.FgRed, color.Bold)},
	TypeFeat:     {Color: color.New(color.FgGreen)},
	TypeFix:      {Color: color.New(color.FgYellow)},
	TypePerf:     {Color: color.New(color.FgCyan)},
	TypeRefactor: {Color: color.New(color.FgBlue)},
	TypeDocs:     {Color: color.New(color.FgMagenta)},
	TypeChore:    {Color: color.New(color.FgWhite)},
}

// FormatOptions controls terminal output formatting.
type FormatOptions struct {
	Plain    bool // disable colors
	MaxWidth int  // maximum line width (0 = auto-detect)
}

// FormatMatches writes search results to the writer, one line per match:
//
//	[feat] myapp@1.2.0: Add dark mode toggle (#123)
func FormatMatches(matches []Match, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	for _, m := range matches {
		line := fmt.Sprintf("%s@%s: %s", m.Project, m.Version, m.Change.Summary)
		if m.Change.PR != "" {
			line += fmt.Sprintf(" (%s)", formatPRRef(m.Change.PR))
		}
		line = truncateText(line, width-len(m.Change.Type)-3)

		tag := fmt.Sprintf("[%s]", m.Change.Type)
		if !opts.Plain {
			if style, ok := typeStyles[m.Change.Type]; ok {
				tag = style.Color.Sprint(tag)
			}
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", tag, line); err != nil {
			return err
		}
	}

	return nil
}

// FormatProjectList writes each project with its versions and a
// draft/finalized marker:
//
//	myapp: 1.0.0 ✓, 1.1.0 …
func FormatProjectList(s *Store, w io.Writer, opts FormatOptions) error {
	bold := color.New(color.Bold).SprintFunc()

	for _, name := range s.ListProjects() {
		versions := s.ListVersions(name)
		parts := make([]string, 0, len(versions))
		for _, v := range versions {
			marker := "…"
			if v.IsFinalized() {
				marker = "✓"
			}
			parts = append(parts, fmt.Sprintf("%s %s", v.Name, marker))
		}

		display := name
		if !opts.Plain {
			display = bold(name)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", display, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	return nil
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// truncateText truncates text to maxLen, adding ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if maxLen < 8 || len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}
