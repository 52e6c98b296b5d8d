// Package gitimport records change entries from a git repository's history.
// Commit subjects following the conventional commit format are mapped onto
// chlog change types; anything else is skipped.
package gitimport

import (
	"regexp"
	"strings"

	"github.com/blackroad/chlog/internal/changelog"
)

// subjectPattern matches "type(scope)!: summary" conventional subjects.
var subjectPattern = regexp.MustCompile(`^([a-zA-Z]+)(\([^)]*\))?(!)?:\s*(.+)$`)

// commitTypes maps conventional commit types onto changelog types.
// Build, ci, style, and test commits all land in chore.
var commitTypes = map[string]changelog.Type{
	"feat":     changelog.TypeFeat,
	"fix":      changelog.TypeFix,
	"perf":     changelog.TypePerf,
	"refactor": changelog.TypeRefactor,
	"docs":     changelog.TypeDocs,
	"chore":    changelog.TypeChore,
	"build":    changelog.TypeChore,
	"ci":       changelog.TypeChore,
	"style":    changelog.TypeChore,
	"test":     changelog.TypeChore,
}

// ParseSubject parses a commit subject (and full message body, for the
// BREAKING CHANGE footer) into a change type and summary. The second return
// is false when the subject is not a recognizable conventional commit.
//
// A "!" after the type/scope or a "BREAKING CHANGE:" footer overrides the
// type to breaking, regardless of the declared commit type.
func ParseSubject(subject, body string) (changelog.Type, string, bool) {
	m := subjectPattern.FindStringSubmatch(strings.TrimSpace(subject))
	if m == nil {
		return "", "", false
	}

	typ, ok := commitTypes[strings.ToLower(m[1])]
	if !ok {
		return "", "", false
	}

	if m[3] == "!" || hasBreakingFooter(body) {
		typ = changelog.TypeBreaking
	}

	return typ, strings.TrimSpace(m[4]), true
}

func hasBreakingFooter(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "BREAKING CHANGE:") || strings.HasPrefix(line, "BREAKING-CHANGE:") {
			return true
		}
	}
	return false
}
