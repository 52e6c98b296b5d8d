package cli

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

func seedCommits(t *testing.T, messages []string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte(msg), 0o644))
		_, err = wt.Add("file.txt")
		require.NoError(t, err)
		_, err = wt.Commit(msg, &git.CommitOptions{
			Author: &object.Signature{
				Name:  "alice",
				Email: "alice@example.com",
				When:  when.Add(time.Duration(i) * time.Minute),
			},
		})
		require.NoError(t, err)
	}
	return dir
}

func TestImport(t *testing.T) {
	store := setupEnv(t)
	repo := seedCommits(t, []string{
		"feat: add export command",
		"update readme",
		"fix: refresh expired tokens",
	})

	out, err := runCLI(t, "import", "myapp", "1.2.0", "--repo", repo, "--store", store)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Imported 2 change(s) into myapp@1.2.0 (1 commit(s) skipped).")

	s, err := changelog.Open(store)
	require.NoError(t, err)
	v, err := s.GetVersion("myapp", "1.2.0")
	require.NoError(t, err)
	require.Len(t, v.Changes, 2)

	// Oldest commit records first.
	assert.Equal(t, changelog.TypeFeat, v.Changes[0].Type)
	assert.Equal(t, "add export command", v.Changes[0].Summary)
	assert.Equal(t, "alice", v.Changes[0].Author)
	assert.Equal(t, changelog.TypeFix, v.Changes[1].Type)
}

func TestImportNoConventionalCommits(t *testing.T) {
	store := setupEnv(t)
	repo := seedCommits(t, []string{"update readme", "wip"})

	out, err := runCLI(t, "import", "myapp", "1.2.0", "--repo", repo, "--store", store)
	require.NoError(t, err)
	assert.Contains(t, out, "No conventional commits found (2 commit(s) examined).")

	_, statErr := os.Stat(store)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportIntoFinalizedVersion(t *testing.T) {
	setupEnv(t)
	store := seededStorePath(t)
	repo := seedCommits(t, []string{"feat: late arrival"})

	_, err := runCLI(t, "import", "myapp", "1.0.0", "--repo", repo, "--store", store)
	require.Error(t, err)
	assert.Equal(t, ExitInvariantViolation, exitCode(err))
}

func TestImportNotARepository(t *testing.T) {
	store := setupEnv(t)

	_, err := runCLI(t, "import", "myapp", "1.2.0", "--repo", t.TempDir(), "--store", store)
	require.Error(t, err)
}
