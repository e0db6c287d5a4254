package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dirjump/internal/domain"
)

// Lister reads directories for the navigator
type Lister interface {
	List(path string) ([]domain.Entry, error)
	Parent(path string) string
	Canonicalize(path string) (string, error)
}

// FSLister is the concrete implementation backed by the local filesystem
type FSLister struct {
	ShowHidden bool
}

// NewFSLister creates a new filesystem lister
func NewFSLister(showHidden bool) *FSLister {
	return &FSLister{ShowHidden: showHidden}
}

// List returns the children of path, directories first, then by path
func (l *FSLister) List(path string) ([]domain.Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, &domain.ListError{Path: path, Err: err}
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if !l.ShowHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}

		entryPath := filepath.Join(path, d.Name())
		isDir := d.IsDir()

		// Symlinks count as whatever they point at
		if d.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(entryPath); err == nil {
				isDir = info.IsDir()
			}
		}

		entries = append(entries, domain.Entry{Path: entryPath, IsDir: isDir})
	}

	SortEntries(entries)
	return entries, nil
}

// Parent returns the parent directory; the parent of a root is the root
func (l *FSLister) Parent(path string) string {
	return filepath.Dir(path)
}

// Canonicalize returns an absolute path with symlinks resolved
func (l *FSLister) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// SortEntries orders directories before files and each group by path
func SortEntries(entries []domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Path < entries[j].Path
	})
}
