// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import "strings"

// SearchResult is one group of matching component names.
type SearchResult struct {
	Category   string   `json:"category"`
	Components []string `json:"components"`
}

// Search matches query against the snapshot.
//
// The query is lowercased. When it names a category exactly, that category is
// emitted first with all its components. Every category is then scanned
// independently for names containing the query. A category matched by both
// passes appears twice; the groups are not merged.
//
// Parameters:
//   - s: Snapshot to search
//   - query: Category tag or name fragment
//
// Returns:
//   - []SearchResult: Matching groups, never nil
func Search(s Snapshot, query string) []SearchResult {
	query = strings.ToLower(query)
	results := make([]SearchResult, 0)

	if components, ok := s.Group(query); ok {
		results = append(results, SearchResult{Category: query, Components: names(components)})
	}

	for _, group := range s {
		var matches []Component
		for _, c := range group.Components {
			if strings.Contains(strings.ToLower(c.Name), query) {
				matches = append(matches, c)
			}
		}
		if len(matches) > 0 {
			results = append(results, SearchResult{Category: group.Category, Components: names(matches)})
		}
	}

	return results
}

func names(components []Component) []string {
	out := make([]string, 0, len(components))
	for _, c := range components {
		out = append(out, c.Name)
	}
	return out
}
