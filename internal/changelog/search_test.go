package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	mustAddChange(t, s, "myapp", "1.0.0", "feat", "Add dark mode toggle")
	mustAddChange(t, s, "myapp", "1.0.0", "fix", "Fix auth token refresh")
	mustAddChange(t, s, "myapp", "1.1.0", "fix", "Dark theme contrast fix")
	mustAddChange(t, s, "webapp", "2.0.0", "breaking", "Drop legacy auth endpoint")
	return s
}

func TestSearch(t *testing.T) {
	s := searchFixture(t)

	tests := map[string]struct {
		query   string
		project string
		want    []string
	}{
		"substring match": {
			query: "dark mode",
			want:  []string{"Add dark mode toggle"},
		},
		"case insensitive": {
			query: "DARK",
			want:  []string{"Add dark mode toggle", "Dark theme contrast fix"},
		},
		"across projects": {
			query: "auth",
			want:  []string{"Fix auth token refresh", "Drop legacy auth endpoint"},
		},
		"scoped to project": {
			query:   "auth",
			project: "webapp",
			want:    []string{"Drop legacy auth endpoint"},
		},
		"unknown project scope": {
			query:   "auth",
			project: "ghost",
			want:    nil,
		},
		"no hits": {
			query: "kubernetes",
			want:  nil,
		},
		"empty query matches nothing": {
			query: "",
			want:  nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			matches := s.Search(tc.query, tc.project)
			var got []string
			for _, m := range matches {
				got = append(got, m.Change.Summary)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearchMatchContext(t *testing.T) {
	s := searchFixture(t)

	matches := s.Search("contrast", "")
	require.Len(t, matches, 1)
	assert.Equal(t, "myapp", matches[0].Project)
	assert.Equal(t, "1.1.0", matches[0].Version)
	assert.Equal(t, TypeFix, matches[0].Change.Type)
}
