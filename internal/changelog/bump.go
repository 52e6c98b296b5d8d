package changelog

import (
	"fmt"
	"regexp"
	"strconv"
)

// BumpCategory is the semantic version component a bump increments.
type BumpCategory string

const (
	BumpMajor BumpCategory = "major"
	BumpMinor BumpCategory = "minor"
	BumpPatch BumpCategory = "patch"
)

// BumpResult explains a suggested version bump: the next version, which
// component was incremented, and the change types that justified it.
type BumpResult struct {
	Current  string
	Next     string
	Category BumpCategory
	Triggers []Type
}

// semverPattern matches exactly MAJOR.MINOR.PATCH. Pre-release or build
// suffixes are rejected; the bump policy only reasons about the three
// numeric components.
var semverPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// SuggestBump computes the next semantic version from the current version
// and the set of pending change types. Precedence: breaking increments
// major, else feat increments minor, else any remaining type increments
// patch. An empty type set fails with ErrNoChangesToBump.
//
// SuggestBump is a pure function: it performs no I/O and holds no state.
func SuggestBump(current string, types []Type) (*BumpResult, error) {
	m := semverPattern.FindStringSubmatch(current)
	if m == nil {
		return nil, &InvalidVersionError{Input: current}
	}
	if len(types) == 0 {
		return nil, ErrNoChangesToBump
	}

	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	present := make(map[Type]bool, len(types))
	for _, t := range types {
		present[t] = true
	}

	result := &BumpResult{Current: current}
	switch {
	case present[TypeBreaking]:
		result.Category = BumpMajor
		result.Next = fmt.Sprintf("%d.0.0", major+1)
		result.Triggers = []Type{TypeBreaking}
	case present[TypeFeat]:
		result.Category = BumpMinor
		result.Next = fmt.Sprintf("%d.%d.0", major, minor+1)
		result.Triggers = []Type{TypeFeat}
	default:
		result.Category = BumpPatch
		result.Next = fmt.Sprintf("%d.%d.%d", major, minor, patch+1)
		for _, t := range CanonicalOrder() {
			if present[t] {
				result.Triggers = append(result.Triggers, t)
			}
		}
	}

	return result, nil
}
