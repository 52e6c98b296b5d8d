package changelog

import "time"

// Type classifies a change entry. The seven types follow the conventional
// commit vocabulary rather than Keep a Changelog categories, since entries
// are recorded per commit-sized unit of work.
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypeBreaking Type = "breaking"
	TypePerf     Type = "perf"
	TypeRefactor Type = "refactor"
	TypeDocs     Type = "docs"
	TypeChore    Type = "chore"
)

// CanonicalOrder returns the seven change types in rendering order.
// The order is severity-based (breaking first), not alphabetical.
func CanonicalOrder() []Type {
	return []Type{
		TypeBreaking,
		TypeFeat,
		TypeFix,
		TypePerf,
		TypeRefactor,
		TypeDocs,
		TypeChore,
	}
}

// typeSections maps each change type to its section heading.
var typeSections = map[Type]string{
	TypeFeat:     "Features",
	TypeFix:      "Bug Fixes",
	TypeBreaking: "Breaking Changes",
	TypePerf:     "Performance",
	TypeRefactor: "Refactoring",
	TypeDocs:     "Documentation",
	TypeChore:    "Chores",
}

// typeIcons maps each change type to its section icon.
var typeIcons = map[Type]string{
	TypeFeat:     "✨",
	TypeFix:      "🐛",
	TypeBreaking: "💥",
	TypePerf:     "⚡",
	TypeRefactor: "♻️",
	TypeDocs:     "📝",
	TypeChore:    "🔧",
}

// ParseType validates a raw type string. Returns InvalidChangeTypeError
// for anything outside the seven known types.
func ParseType(raw string) (Type, error) {
	t := Type(raw)
	switch t {
	case TypeFeat, TypeFix, TypeBreaking, TypePerf, TypeRefactor, TypeDocs, TypeChore:
		return t, nil
	}
	return "", &InvalidChangeTypeError{Type: raw}
}

// Section returns the display heading for the type (e.g. "Bug Fixes").
func (t Type) Section() string {
	if s, ok := typeSections[t]; ok {
		return s
	}
	return string(t)
}

// Icon returns the display icon for the type.
func (t Type) Icon() string {
	return typeIcons[t]
}

// Status marks where a version is in its lifecycle. A version starts as a
// draft and transitions to finalized exactly once.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
)

// Change is a single recorded unit of work against a version.
// Changes are immutable once created and are never deleted.
type Change struct {
	Type      Type      `yaml:"type" json:"type"`
	Summary   string    `yaml:"summary" json:"summary"`
	Author    string    `yaml:"author,omitempty" json:"author,omitempty"`
	PR        string    `yaml:"pr,omitempty" json:"pr,omitempty"`
	CreatedAt time.Time `yaml:"createdAt" json:"createdAt"`
}

// Version is a release (or release-in-progress) of a project. Changes keep
// insertion order so rendering stays deterministic.
type Version struct {
	Name        string     `yaml:"-"`
	Status      Status     `yaml:"status"`
	Highlights  string     `yaml:"highlights,omitempty"`
	FinalizedAt *time.Time `yaml:"finalizedAt,omitempty"`
	Changes     []*Change  `yaml:"changes"`
}

// IsFinalized reports whether the version's change set is frozen.
func (v *Version) IsFinalized() bool {
	return v.Status == StatusFinalized
}

// Types returns the set of change types present in the version,
// in canonical order.
func (v *Version) Types() []Type {
	present := make(map[Type]bool, len(v.Changes))
	for _, c := range v.Changes {
		present[c.Type] = true
	}
	types := make([]Type, 0, len(present))
	for _, t := range CanonicalOrder() {
		if present[t] {
			types = append(types, t)
		}
	}
	return types
}

// ByType groups the version's changes by type, preserving insertion order
// within each group.
func (v *Version) ByType() map[Type][]*Change {
	grouped := make(map[Type][]*Change)
	for _, c := range v.Changes {
		grouped[c.Type] = append(grouped[c.Type], c)
	}
	return grouped
}

// Project owns an ordered collection of versions. Projects are created
// implicitly on the first write that references them.
type Project struct {
	Name     string     `yaml:"-"`
	Versions []*Version `yaml:"-"`
}

// Version looks up a version by name. Returns nil if absent.
func (p *Project) Version(name string) *Version {
	for _, v := range p.Versions {
		if v.Name == name {
			return v
		}
	}
	return nil
}
