package catalog

import (
	"context"
	"strings"

	"tumy/models"
)

// Matcher resolves a natural-language query to service ids. It never fails:
// collaborator errors already degrade to an empty list.
type Matcher interface {
	SemanticMatch(ctx context.Context, query string, services []models.Service) []string
}

// Searcher decides when a query warrants the semantic-match collaborator.
type Searcher struct {
	matcher Matcher
}

func NewSearcher(matcher Matcher) *Searcher {
	return &Searcher{matcher: matcher}
}

// Search returns the aiMatchIDs for a query. Queries of two or fewer
// whitespace-separated tokens never trigger the collaborator and return nil,
// which clears any previous match set. Longer queries always return a
// non-nil id list — empty when the collaborator finds nothing or fails.
func (s *Searcher) Search(ctx context.Context, query string, services []models.Service) []string {
	if len(strings.Fields(query)) <= 2 {
		return nil
	}
	ids := s.matcher.SemanticMatch(ctx, query, services)
	if ids == nil {
		ids = []string{}
	}
	return ids
}
