package gitimport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad/chlog/internal/changelog"
)

// seedRepo builds a throwaway repository with one commit per message,
// oldest-first, and returns the commit hashes in the same order.
func seedRepo(t *testing.T, messages []string) (string, []string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	hashes := make([]string, 0, len(messages))
	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		name := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(name, []byte(msg), 0o644))
		_, err = wt.Add("file.txt")
		require.NoError(t, err)

		hash, err := wt.Commit(msg, &git.CommitOptions{
			Author: &object.Signature{
				Name:  "alice",
				Email: "alice@example.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
		})
		require.NoError(t, err)
		hashes = append(hashes, hash.String())
	}

	return dir, hashes
}

func TestScan(t *testing.T) {
	dir, _ := seedRepo(t, []string{
		"feat: add export command",
		"update readme",
		"fix(auth): refresh expired tokens",
		"feat!: drop v1 endpoints",
	})

	result, err := Scan(Options{RepoPath: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Entries, 3)

	// Oldest-first despite the log walking newest-first.
	assert.Equal(t, changelog.TypeFeat, result.Entries[0].Type)
	assert.Equal(t, "add export command", result.Entries[0].Summary)
	assert.Equal(t, changelog.TypeFix, result.Entries[1].Type)
	assert.Equal(t, changelog.TypeBreaking, result.Entries[2].Type)

	for _, e := range result.Entries {
		assert.Equal(t, "alice", e.Author)
		assert.Len(t, e.Hash, 7)
	}
}

func TestScanSince(t *testing.T) {
	dir, hashes := seedRepo(t, []string{
		"feat: before the cutoff",
		"fix: at the cutoff",
		"feat: after the cutoff",
	})

	// The Since commit itself is excluded.
	result, err := Scan(Options{RepoPath: dir, Since: hashes[1]})
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "after the cutoff", result.Entries[0].Summary)
}

func TestScanLimit(t *testing.T) {
	dir, _ := seedRepo(t, []string{
		"feat: first",
		"fix: second",
		"fix: third",
	})

	// Limit counts examined commits from HEAD backwards.
	result, err := Scan(Options{RepoPath: dir, Limit: 2})
	require.NoError(t, err)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, "second", result.Entries[0].Summary)
	assert.Equal(t, "third", result.Entries[1].Summary)
}

func TestScanNotARepository(t *testing.T) {
	_, err := Scan(Options{RepoPath: t.TempDir()})
	require.Error(t, err)
}
