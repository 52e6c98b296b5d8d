package changelog

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// RenderOptions controls changelog rendering.
type RenderOptions struct {
	// MaxVersions caps how many versions are rendered (0 = all).
	MaxVersions int
	// Ascending renders versions oldest-first instead of the default
	// newest-first.
	Ascending bool
}

// RenderMarkdown writes a project's changelog as Markdown. Versions render
// newest-first (reverse insertion order) unless opts.Ascending is set.
// Within a version, changes group by type in canonical severity order and
// keep insertion order inside each group.
//
// Rendering never mutates the store; given the same state it produces
// byte-identical output.
func RenderMarkdown(p *Project, w io.Writer, opts RenderOptions) error {
	if _, err := fmt.Fprintf(w, "# Changelog — %s\n", p.Name); err != nil {
		return err
	}

	for _, v := range orderedVersions(p, opts) {
		if err := renderVersionMarkdown(v, w); err != nil {
			return fmt.Errorf("rendering version %s: %w", v.Name, err)
		}
	}

	return nil
}

// RenderMarkdownString is a convenience wrapper that renders to a string.
func RenderMarkdownString(p *Project, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(p, &b, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderVersionMarkdown(v *Version, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n## %s\n", formatVersionHeading(v)); err != nil {
		return err
	}

	if v.Highlights != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", v.Highlights); err != nil {
			return err
		}
	}

	grouped := v.ByType()
	for _, t := range CanonicalOrder() {
		changes := grouped[t]
		if len(changes) == 0 {
			continue
		}
		if err := renderTypeSection(t, changes, w); err != nil {
			return err
		}
	}

	return nil
}

func formatVersionHeading(v *Version) string {
	if v.IsFinalized() && v.FinalizedAt != nil {
		return fmt.Sprintf("[%s] - %s", v.Name, v.FinalizedAt.Format("2006-01-02"))
	}
	return fmt.Sprintf("[%s] (draft)", v.Name)
}

func renderTypeSection(t Type, changes []*Change, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n### %s %s\n\n", t.Icon(), t.Section()); err != nil {
		return err
	}
	for _, c := range changes {
		if _, err := fmt.Fprintf(w, "- %s\n", formatChangeLine(c)); err != nil {
			return err
		}
	}
	return nil
}

// formatChangeLine renders "summary (#123) by @author" with the PR and
// author parts present only when recorded. Numeric PR refs get a "#".
func formatChangeLine(c *Change) string {
	var b strings.Builder
	b.WriteString(c.Summary)
	if c.PR != "" {
		b.WriteString(" (")
		b.WriteString(formatPRRef(c.PR))
		b.WriteString(")")
	}
	if c.Author != "" {
		b.WriteString(" by @")
		b.WriteString(c.Author)
	}
	return b.String()
}

func formatPRRef(pr string) string {
	if _, err := strconv.Atoi(pr); err == nil {
		return "#" + pr
	}
	return pr
}

// jsonVersion mirrors Version for JSON output. Absent optional fields are
// omitted rather than rendered as null, keeping output compact and
// diff-friendly.
type jsonVersion struct {
	Version     string             `json:"version"`
	Status      Status             `json:"status"`
	Highlights  string             `json:"highlights,omitempty"`
	FinalizedAt *time.Time         `json:"finalizedAt,omitempty"`
	Changes     map[Type][]*Change `json:"changes"`
}

type jsonDocument struct {
	Project  string        `json:"project"`
	Versions []jsonVersion `json:"versions"`
}

// RenderJSON writes a project's changelog as an indented JSON document:
// a version list (same ordering rules as RenderMarkdown), each with status,
// optional highlights, and a change-type → ordered change list mapping.
func RenderJSON(p *Project, w io.Writer, opts RenderOptions) error {
	doc := jsonDocument{
		Project:  p.Name,
		Versions: make([]jsonVersion, 0, len(p.Versions)),
	}

	for _, v := range orderedVersions(p, opts) {
		doc.Versions = append(doc.Versions, jsonVersion{
			Version:     v.Name,
			Status:      v.Status,
			Highlights:  v.Highlights,
			FinalizedAt: v.FinalizedAt,
			Changes:     v.ByType(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// orderedVersions applies ordering and the MaxVersions cap.
func orderedVersions(p *Project, opts RenderOptions) []*Version {
	versions := make([]*Version, len(p.Versions))
	copy(versions, p.Versions)

	if !opts.Ascending {
		for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
			versions[i], versions[j] = versions[j], versions[i]
		}
	}

	if opts.MaxVersions > 0 && len(versions) > opts.MaxVersions {
		versions = versions[:opts.MaxVersions]
	}

	return versions
}
