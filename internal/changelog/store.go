// Package changelog implements the chlog data model: a file-backed store of
// projects, versions, and change entries, plus the pure operations over it
// (version bump policy, Markdown/JSON rendering, summary search).
//
// The store is read once per command invocation and written back after each
// mutating command. Saves use a temp-file + rename so a failed write never
// leaves a half-written store behind.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store is the durable project → version → change mapping.
// It is not safe for concurrent use; chlog is a one-command-per-process CLI.
type Store struct {
	path string
	doc  document

	// Now supplies change and finalization timestamps.
	// Tests override it with a fixed clock.
	Now func() time.Time
}

// Open loads the store at path. A missing file yields an empty store;
// any other read or parse failure is a PersistenceError.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		Now:  func() time.Time { return time.Now().UTC() },
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	return s, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store atomically: marshal, write to a temp file in the
// same directory, then rename over the previous file.
func (s *Store) Save() error {
	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // best effort cleanup
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	return nil
}

// AddChange appends a change to (project, version), creating both lazily.
// The raw type is validated against the seven known types, the summary must
// be non-empty, and the target version must not be finalized. Validation
// happens before any lazy creation, so a failed add leaves the store
// unmodified.
func (s *Store) AddChange(project, version, rawType, summary, author, pr string) (*Change, error) {
	typ, err := ParseType(rawType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(summary) == "" {
		return nil, ErrEmptySummary
	}

	if v := s.lookupVersion(project, version); v != nil && v.IsFinalized() {
		return nil, &VersionFinalizedError{Project: project, Version: version}
	}

	v := s.ensureVersion(project, version)
	change := &Change{
		Type:      typ,
		Summary:   summary,
		Author:    author,
		PR:        pr,
		CreatedAt: s.Now(),
	}
	v.Changes = append(v.Changes, change)
	return change, nil
}

// FinalizeVersion freezes (project, version): status becomes finalized, a
// finalization timestamp is recorded, and further AddChange calls are
// rejected. Finalizing an unknown version fails with VersionNotFound
// (writes fail loud); finalizing twice fails with AlreadyFinalized.
//
// If highlights is empty, highlights are derived from up to five feat and
// breaking change summaries, one per line.
func (s *Store) FinalizeVersion(project, version, highlights string) (*Version, error) {
	p := s.lookupProject(project)
	if p == nil {
		return nil, &ProjectNotFoundError{Project: project}
	}
	v := p.Version(version)
	if v == nil {
		return nil, &VersionNotFoundError{Project: project, Version: version}
	}
	if v.IsFinalized() {
		return nil, &AlreadyFinalizedError{Project: project, Version: version}
	}

	if highlights == "" {
		highlights = deriveHighlights(v.Changes)
	}

	now := s.Now()
	v.Status = StatusFinalized
	v.Highlights = highlights
	v.FinalizedAt = &now
	return v, nil
}

// deriveHighlights builds a highlights block from the most interesting
// changes (feat and breaking), capped at five lines.
func deriveHighlights(changes []*Change) string {
	var lines []string
	for _, c := range changes {
		if c.Type == TypeFeat || c.Type == TypeBreaking {
			lines = append(lines, c.Summary)
			if len(lines) == 5 {
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Project returns the named project or ProjectNotFoundError.
// Used by the render path, which fails loud on an unknown project.
func (s *Store) Project(name string) (*Project, error) {
	if p := s.lookupProject(name); p != nil {
		return p, nil
	}
	return nil, &ProjectNotFoundError{Project: name}
}

// GetVersion returns the named version or a typed not-found error.
func (s *Store) GetVersion(project, version string) (*Version, error) {
	p := s.lookupProject(project)
	if p == nil {
		return nil, &ProjectNotFoundError{Project: project}
	}
	v := p.Version(version)
	if v == nil {
		return nil, &VersionNotFoundError{Project: project, Version: version}
	}
	return v, nil
}

// ListVersions returns a project's versions in insertion order.
// A missing project yields an empty slice, not an error: nothing recorded
// yet is a normal state for reads.
func (s *Store) ListVersions(project string) []*Version {
	p := s.lookupProject(project)
	if p == nil {
		return nil
	}
	return p.Versions
}

// ListProjects returns all tracked project names in insertion order.
func (s *Store) ListProjects() []string {
	names := make([]string, 0, len(s.doc.Projects))
	for _, p := range s.doc.Projects {
		names = append(names, p.Name)
	}
	return names
}

// PendingTypes returns the set of change types across the project's draft
// versions, in canonical order. An unknown project yields an empty set.
func (s *Store) PendingTypes(project string) []Type {
	p := s.lookupProject(project)
	if p == nil {
		return nil
	}
	present := make(map[Type]bool)
	for _, v := range p.Versions {
		if v.IsFinalized() {
			continue
		}
		for _, c := range v.Changes {
			present[c.Type] = true
		}
	}
	types := make([]Type, 0, len(present))
	for _, t := range CanonicalOrder() {
		if present[t] {
			types = append(types, t)
		}
	}
	return types
}

func (s *Store) lookupProject(name string) *Project {
	for _, p := range s.doc.Projects {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (s *Store) lookupVersion(project, version string) *Version {
	p := s.lookupProject(project)
	if p == nil {
		return nil
	}
	return p.Version(version)
}

// ensureVersion creates the project and version on demand, appending in
// insertion order. New versions start as drafts.
func (s *Store) ensureVersion(project, version string) *Version {
	p := s.lookupProject(project)
	if p == nil {
		p = &Project{Name: project}
		s.doc.Projects = append(s.doc.Projects, p)
	}
	v := p.Version(version)
	if v == nil {
		v = &Version{Name: version, Status: StatusDraft}
		p.Versions = append(p.Versions, v)
	}
	return v
}

// DefaultStorePath returns the default store location, ~/.chlog/store.yaml.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".chlog", "store.yaml"), nil
}
