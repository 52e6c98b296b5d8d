package gitimport

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/blackroad/chlog/internal/changelog"
)

// Options controls a repository scan.
type Options struct {
	// RepoPath is the repository to scan. Empty means the current
	// directory; parent directories are searched for .git.
	RepoPath string
	// Since stops the scan when this revision (tag, branch, or hash) is
	// reached. The commit itself is excluded. Empty scans all of HEAD's
	// history, subject to Limit.
	Since string
	// Limit caps how many commits are examined (0 = no cap).
	Limit int
}

// Entry is one importable change parsed from a commit.
type Entry struct {
	Type    changelog.Type
	Summary string
	Author  string
	Hash    string
}

// Result summarizes a scan: the parsed entries plus how many commits were
// skipped for not following the conventional format.
type Result struct {
	Entries []Entry
	Skipped int
}

// Scan walks the repository history from HEAD and parses conventional
// commit subjects into change entries. Entries are returned oldest-first so
// recording them preserves chronological insertion order.
func Scan(opts Options) (*Result, error) {
	repo, err := git.PlainOpenWithOptions(opts.RepoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %q: %w", opts.RepoPath, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	var stopAt plumbing.Hash
	if opts.Since != "" {
		rev, err := repo.ResolveRevision(plumbing.Revision(opts.Since))
		if err != nil {
			return nil, fmt.Errorf("resolving revision %q: %w", opts.Since, err)
		}
		stopAt = *rev
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	result := &Result{}
	examined := 0

	var errStop = errors.New("stop iteration")
	err = iter.ForEach(func(c *object.Commit) error {
		if opts.Since != "" && c.Hash == stopAt {
			return errStop
		}
		if opts.Limit > 0 && examined >= opts.Limit {
			return errStop
		}
		examined++

		subject, body := splitMessage(c.Message)
		typ, summary, ok := ParseSubject(subject, body)
		if !ok {
			result.Skipped++
			return nil
		}

		result.Entries = append(result.Entries, Entry{
			Type:    typ,
			Summary: summary,
			Author:  c.Author.Name,
			Hash:    c.Hash.String()[:7],
		})
		return nil
	})
	if err != nil && !errors.Is(err, errStop) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("walking commit log: %w", err)
	}

	// repo.Log walks newest-first; reverse so entries record oldest-first.
	for i, j := 0, len(result.Entries)-1; i < j; i, j = i+1, j-1 {
		result.Entries[i], result.Entries[j] = result.Entries[j], result.Entries[i]
	}

	return result, nil
}

// splitMessage separates a commit message into subject and body.
func splitMessage(message string) (string, string) {
	for i := 0; i < len(message); i++ {
		if message[i] == '\n' {
			return message[:i], message[i+1:]
		}
	}
	return message, ""
}
