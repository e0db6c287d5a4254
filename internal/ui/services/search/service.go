package search

import (
	"strings"
	"unicode/utf8"

	"dirjump/internal/domain"
	"dirjump/internal/fuzzy"
)

// Service picks the entry a query should jump to
type Service struct {
	scorer fuzzy.Scorer
}

// NewService creates a new search service
func NewService(scorer fuzzy.Scorer) *Service {
	return &Service{scorer: scorer}
}

// Select returns the index of the best matching directory for query.
// The boolean is false when no directory matches; callers keep their
// previous selection in that case.
func (s *Service) Select(query string, entries []domain.Entry) (int, bool) {
	var best candidate
	found := false

	for i, e := range entries {
		if !Selectable(e) {
			continue
		}

		name := strings.ToLower(e.Name())
		score, ok := s.scorer.Score(query, name)
		if !ok {
			continue
		}

		c := candidate{index: i, score: score, nameLen: utf8.RuneCountInString(name)}
		if !found || c.better(best) {
			best = c
			found = true
		}
	}

	if !found {
		return 0, false
	}
	return best.index, true
}
