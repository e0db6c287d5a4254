package search

import "dirjump/internal/domain"

// Selectable reports whether an entry may be chosen by a typed query.
// Only directories qualify: a query jumps to a place to go, and a file is
// never one. Files stay reachable with the movement keys.
func Selectable(e domain.Entry) bool {
	return e.IsDir
}

// candidate is a scored directory entry
type candidate struct {
	index   int
	score   int
	nameLen int
}

// better orders candidates by score, then name length, then list order
func (c candidate) better(o candidate) bool {
	if c.score != o.score {
		return c.score < o.score
	}
	if c.nameLen != o.nameLen {
		return c.nameLen < o.nameLen
	}
	return c.index < o.index
}
