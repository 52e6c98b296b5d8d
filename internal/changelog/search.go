package changelog

import "strings"

// Match is one search hit: the change plus its project and version context.
type Match struct {
	Project string
	Version string
	Change  *Change
}

// Search scans change summaries for query as a case-insensitive substring,
// optionally scoped to one project. Results follow store order: projects in
// insertion order, versions in insertion order, changes in insertion order.
//
// An empty query matches nothing. An unknown project scope yields no
// matches rather than an error; search reads fail soft.
func (s *Store) Search(query, project string) []Match {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []Match
	for _, p := range s.doc.Projects {
		if project != "" && p.Name != project {
			continue
		}
		for _, v := range p.Versions {
			for _, c := range v.Changes {
				if strings.Contains(strings.ToLower(c.Summary), needle) {
					matches = append(matches, Match{
						Project: p.Name,
						Version: v.Name,
						Change:  c,
					})
				}
			}
		}
	}
	return matches
}
