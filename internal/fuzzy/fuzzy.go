// Package fuzzy scores how well a typed query matches a directory name
package fuzzy

import (
	"fmt"
	"math"

	sahilm "github.com/sahilm/fuzzy"
)

// Scorer names accepted in the config file
const (
	ScorerFuzzy = "fuzzy"
	ScorerGaps  = "gaps"
)

// Scorer rates a candidate against a query. Lower scores are better and
// ok is false when the candidate does not match at all. An empty query
// matches nothing.
type Scorer interface {
	Score(query, candidate string) (score int, ok bool)
}

// New returns the scorer registered under name
func New(name string) (Scorer, error) {
	switch name {
	case "", ScorerFuzzy:
		return SubsequenceScorer{}, nil
	case ScorerGaps:
		return GapScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want %q or %q)", name, ScorerFuzzy, ScorerGaps)
	}
}

// SubsequenceScorer uses sahilm/fuzzy, which rewards first-character,
// word-boundary and adjacent matches. Its higher-is-better score is negated.
type SubsequenceScorer struct{}

func (SubsequenceScorer) Score(query, candidate string) (int, bool) {
	if query == "" {
		return 0, false
	}
	matches := sahilm.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return -matches[0].Score, true
}

// GapScorer requires the query to be a subsequence of the candidate and
// scores the fewest breaks between contiguous matched runs, so "be" scores
// 0 against "beta" and 1 against "b_e".
type GapScorer struct{}

func (GapScorer) Score(query, candidate string) (int, bool) {
	q := []rune(query)
	c := []rune(candidate)
	if len(q) == 0 || len(q) > len(c) {
		return 0, false
	}

	const inf = math.MaxInt32

	// prev[j] is the fewest gaps with the previous query rune matched at c[j]
	prev := make([]int, len(c))
	for j := range c {
		prev[j] = inf
		if c[j] == q[0] {
			prev[j] = 0
		}
	}

	cur := make([]int, len(c))
	for i := 1; i < len(q); i++ {
		best := inf // min of prev[0..j-2]
		for j := range c {
			cur[j] = inf
			if j >= 2 && prev[j-2] < best {
				best = prev[j-2]
			}
			if c[j] != q[i] || j == 0 {
				continue
			}
			if prev[j-1] < cur[j] {
				cur[j] = prev[j-1]
			}
			if best < inf && best+1 < cur[j] {
				cur[j] = best + 1
			}
		}
		prev, cur = cur, prev
	}

	score := inf
	for _, s := range prev {
		if s < score {
			score = s
		}
	}
	if score == inf {
		return 0, false
	}
	return score, true
}
