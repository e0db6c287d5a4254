package domain

import "path/filepath"

// Entry represents one child of the directory being browsed
type Entry struct {
	Path  string
	IsDir bool // true for directories and symlinks that resolve to one
}

// Name returns the last path element, the text shown in the list
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// IndexOf returns the position of path in entries, or -1
func IndexOf(entries []Entry, path string) int {
	for i, e := range entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}
