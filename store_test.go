package gamsang

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStoreListFiltersByExtension(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"2024-01-15_a.md": "a",
		"2024-02-01_b.md": "b",
		"notes.txt":       "skip",
		".hidden.md":      "skip",
	})
	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// .hidden.md still ends in .md; Fetch rejects it, but List keeps the
	// filter purely extension-based.
	want := []string{".hidden.md", "2024-01-15_a.md", "2024-02-01_b.md"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestStoreFetch(t *testing.T) {
	s := newTestStore(t, map[string]string{"2024-01-15_a.md": "the text"})
	got, err := s.Fetch("2024-01-15_a.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "the text" {
		t.Errorf("Fetch = %q", got)
	}
}

func TestStoreFetchRejectsEscapes(t *testing.T) {
	s := newTestStore(t, nil)
	for _, name := range []string{"", "../secrets.md", "sub/dir.md", ".hidden.md"} {
		if _, err := s.Fetch(name); err == nil {
			t.Errorf("Fetch(%q) succeeded, want error", name)
		}
	}
}

func TestStoreFetchMissingFile(t *testing.T) {
	s := newTestStore(t, nil)
	if _, err := s.Fetch("gone.md"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewStoreRequiresDirectory(t *testing.T) {
	if _, err := NewStore(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
