// Package catalog implements the service filtering and search engine: the
// category toggle set, substring filtering, and the natural-language search
// delegation to the semantic-match collaborator.
package catalog

import (
	"strings"

	"tumy/models"
)

// Filter computes the visible subset of the catalog.
//
// When aiMatchIDs is non-nil the result is exactly the catalog entries whose
// id appears in it, in catalog order; category and text filters are bypassed
// entirely. Otherwise a service is included iff its category is selected (or
// "ALL" is) and the query, lowercased, is a substring of its title or
// description.
func Filter(services []models.Service, selected []string, query string, aiMatchIDs []string) []models.Service {
	if aiMatchIDs != nil {
		matched := make(map[string]struct{}, len(aiMatchIDs))
		for _, id := range aiMatchIDs {
			matched[id] = struct{}{}
		}
		out := make([]models.Service, 0, len(matched))
		for _, s := range services {
			if _, ok := matched[s.ID]; ok {
				out = append(out, s)
			}
		}
		return out
	}

	q := strings.ToLower(query)
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if !categoryMatches(selected, s.Category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Title), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func categoryMatches(selected []string, category models.ServiceCategory) bool {
	for _, c := range selected {
		if c == CategoryAll || c == string(category) {
			return true
		}
	}
	return false
}
