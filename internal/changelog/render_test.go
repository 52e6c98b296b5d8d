package changelog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderFixture(t *testing.T) *Project {
	t.Helper()
	s := newTestStore(t)
	mustAddChange(t, s, "myapp", "1.0.0", "feat", "Add dark mode toggle")
	_, err := s.AddChange("myapp", "1.0.0", "fix", "Fix auth token refresh", "bob", "123")
	require.NoError(t, err)
	_, err = s.FinalizeVersion("myapp", "1.0.0", "Dark mode ships.")
	require.NoError(t, err)
	mustAddChange(t, s, "myapp", "1.1.0", "perf", "Cache session lookups")
	mustAddChange(t, s, "myapp", "1.1.0", "breaking", "Drop legacy auth endpoint")

	p, err := s.Project("myapp")
	require.NoError(t, err)
	return p
}

func TestRenderMarkdown(t *testing.T) {
	p := renderFixture(t)

	out, err := RenderMarkdownString(p, RenderOptions{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Changelog — myapp\n"))

	// Newest version first.
	draft := strings.Index(out, "## [1.1.0] (draft)")
	final := strings.Index(out, "## [1.0.0] - 2026-08-24")
	require.GreaterOrEqual(t, draft, 0)
	require.GreaterOrEqual(t, final, 0)
	assert.Less(t, draft, final)

	// Breaking outranks perf inside the draft version.
	breaking := strings.Index(out, "### 💥 Breaking Changes")
	perf := strings.Index(out, "### ⚡ Performance")
	require.GreaterOrEqual(t, breaking, 0)
	require.GreaterOrEqual(t, perf, 0)
	assert.Less(t, breaking, perf)

	assert.Contains(t, out, "\nDark mode ships.\n")
	assert.Contains(t, out, "- Add dark mode toggle\n")
	assert.Contains(t, out, "- Fix auth token refresh (#123) by @bob\n")
	assert.NotContains(t, out, "Chores")
}

func TestRenderMarkdownAscending(t *testing.T) {
	p := renderFixture(t)

	out, err := RenderMarkdownString(p, RenderOptions{Ascending: true})
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "[1.0.0]"), strings.Index(out, "[1.1.0]"))
}

func TestRenderMarkdownMaxVersions(t *testing.T) {
	p := renderFixture(t)

	out, err := RenderMarkdownString(p, RenderOptions{MaxVersions: 1})
	require.NoError(t, err)

	assert.Contains(t, out, "[1.1.0]")
	assert.NotContains(t, out, "[1.0.0]")
}

func TestRenderMarkdownIdempotent(t *testing.T) {
	p := renderFixture(t)

	first, err := RenderMarkdownString(p, RenderOptions{})
	require.NoError(t, err)
	second, err := RenderMarkdownString(p, RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderMarkdownEmptyProject(t *testing.T) {
	out, err := RenderMarkdownString(&Project{Name: "empty"}, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "# Changelog — empty\n", out)
}

func TestFormatChangeLine(t *testing.T) {
	tests := map[string]struct {
		change *Change
		want   string
	}{
		"summary only": {
			change: &Change{Summary: "Fix crash"},
			want:   "Fix crash",
		},
		"numeric pr gets hash": {
			change: &Change{Summary: "Fix crash", PR: "42"},
			want:   "Fix crash (#42)",
		},
		"non-numeric pr kept verbatim": {
			change: &Change{Summary: "Fix crash", PR: "GH-42"},
			want:   "Fix crash (GH-42)",
		},
		"author only": {
			change: &Change{Summary: "Fix crash", Author: "alice"},
			want:   "Fix crash by @alice",
		},
		"pr and author": {
			change: &Change{Summary: "Fix crash", PR: "42", Author: "alice"},
			want:   "Fix crash (#42) by @alice",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatChangeLine(tc.change))
		})
	}
}

func TestRenderJSON(t *testing.T) {
	p := renderFixture(t)

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(p, &buf, RenderOptions{}))

	var doc struct {
		Project  string `json:"project"`
		Versions []struct {
			Version     string               `json:"version"`
			Status      string               `json:"status"`
			Highlights  string               `json:"highlights"`
			FinalizedAt *time.Time           `json:"finalizedAt"`
			Changes     map[string][]*Change `json:"changes"`
		} `json:"versions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "myapp", doc.Project)
	require.Len(t, doc.Versions, 2)

	draft := doc.Versions[0]
	assert.Equal(t, "1.1.0", draft.Version)
	assert.Equal(t, "draft", draft.Status)
	assert.Nil(t, draft.FinalizedAt)

	final := doc.Versions[1]
	assert.Equal(t, "1.0.0", final.Version)
	assert.Equal(t, "finalized", final.Status)
	assert.Equal(t, "Dark mode ships.", final.Highlights)
	require.NotNil(t, final.FinalizedAt)
	assert.True(t, testClock.Equal(*final.FinalizedAt))

	fixes := final.Changes["fix"]
	require.Len(t, fixes, 1)
	assert.Equal(t, "Fix auth token refresh", fixes[0].Summary)
	assert.Equal(t, "bob", fixes[0].Author)
	assert.Equal(t, "123", fixes[0].PR)

	// Absent optional fields stay out of the payload entirely.
	assert.NotContains(t, buf.String(), `"highlights": ""`)
	assert.NotContains(t, buf.String(), "null")
}
