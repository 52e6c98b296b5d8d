// Package testutil provides shared helpers for chlog tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/blackroad/chlog/internal/changelog"
)

// FixedTime is the deterministic clock value used by test stores.
var FixedTime = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

// TempStore opens an empty store in a temp directory with a fixed clock.
func TempStore(t *testing.T) *changelog.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.yaml")
	s, err := changelog.Open(path)
	if err != nil {
		t.Fatalf("opening temp store: %v", err)
	}
	s.Now = func() time.Time { return FixedTime }
	return s
}

// SeededStore returns a temp store preloaded with two projects:
//
//	myapp   1.0.0 (finalized), 1.1.0 (draft)
//	webapp  2.0.0 (draft)
func SeededStore(t *testing.T) *changelog.Store {
	t.Helper()

	s := TempStore(t)
	mustAdd(t, s, "myapp", "1.0.0", "feat", "Add dark mode toggle", "alice", "123")
	mustAdd(t, s, "myapp", "1.0.0", "fix", "Fix auth token refresh", "bob", "")
	if _, err := s.FinalizeVersion("myapp", "1.0.0", ""); err != nil {
		t.Fatalf("finalizing seed version: %v", err)
	}
	mustAdd(t, s, "myapp", "1.1.0", "perf", "Cache session lookups", "", "130")
	mustAdd(t, s, "webapp", "2.0.0", "breaking", "Drop legacy auth endpoint", "carol", "7")
	return s
}

func mustAdd(t *testing.T, s *changelog.Store, project, version, typ, summary, author, pr string) {
	t.Helper()
	if _, err := s.AddChange(project, version, typ, summary, author, pr); err != nil {
		t.Fatalf("seeding change: %v", err)
	}
}
