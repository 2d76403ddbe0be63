package gamsang

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// docExt is the review document extension the store lists.
const docExt = ".md"

// Source yields candidate review filenames and their raw text. The
// document pipeline does not care how the listing or the text is
// obtained, only that both are strings.
type Source interface {
	// List returns the deduplicated set of review filenames.
	List() ([]string, error)
	// Fetch returns the raw text of one review document.
	Fetch(name string) (string, error)
}

// Store is a Source backed by a flat directory of review documents.
type Store struct {
	root string // absolute path to the reviews directory
}

// NewStore creates a Store rooted at the given directory. The directory
// must already exist.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("store: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: root is not a directory: %s", abs)
	}
	return &Store{root: abs}, nil
}

// List returns the sorted set of document filenames in the reviews
// directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), docExt) {
			continue
		}
		set[e.Name()] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Fetch returns the raw text of one document. The name must be a bare
// filename; anything that could escape the reviews directory is
// rejected.
func (s *Store) Fetch(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("store: invalid document name: %s", name)
	}
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", name, err)
	}
	return string(data), nil
}
