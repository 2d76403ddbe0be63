package gamsang

import (
	"errors"
	"testing"
)

// fakeSource is an in-memory Source for catalog tests. Names listed in
// unavailable are returned by List but fail to fetch.
type fakeSource struct {
	docs        map[string]string
	unavailable []string
	listErr     error
}

func (f *fakeSource) List() ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	names := make([]string, 0, len(f.docs)+len(f.unavailable))
	for name := range f.docs {
		names = append(names, name)
	}
	names = append(names, f.unavailable...)
	return names, nil
}

func (f *fakeSource) Fetch(name string) (string, error) {
	raw, ok := f.docs[name]
	if !ok {
		return "", errors.New("unavailable")
	}
	return raw, nil
}

func TestBuildCatalogOrdersNewestFirst(t *testing.T) {
	src := &fakeSource{docs: map[string]string{
		"2024-01-01_first.md":  "a",
		"2024-03-01_third.md":  "b",
		"2024-02-01_second.md": "c",
	}}
	reviews := BuildCatalog(src)
	if len(reviews) != 3 {
		t.Fatalf("got %d reviews, want 3", len(reviews))
	}
	wantDates := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	for i, want := range wantDates {
		if reviews[i].Date != want {
			t.Errorf("reviews[%d].Date = %q, want %q", i, reviews[i].Date, want)
		}
	}
}

func TestBuildCatalogMetadataOverridesFilename(t *testing.T) {
	src := &fakeSource{docs: map[string]string{
		"2024-01-01_old.md": "---\ndate: 2024-12-31\n---\nbody",
		"2024-06-01_new.md": "body",
	}}
	reviews := BuildCatalog(src)
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	if reviews[0].SourceFile != "2024-01-01_old.md" {
		t.Errorf("front-matter date should win ordering, got %q first", reviews[0].SourceFile)
	}
}

func TestBuildCatalogExcludesIncompleteRecords(t *testing.T) {
	src := &fakeSource{docs: map[string]string{
		"2024-01-15_kept.md": "body",
		"no-date-here.md":    "body without any date",
	}}
	reviews := BuildCatalog(src)
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1: %+v", len(reviews), reviews)
	}
	if reviews[0].SourceFile != "2024-01-15_kept.md" {
		t.Errorf("kept %q", reviews[0].SourceFile)
	}
}

func TestBuildCatalogExcludesEmptyTitle(t *testing.T) {
	// "2024-01-15_.md" yields a date but an empty slug, so the record
	// fails the non-empty-triple check without crashing anything.
	src := &fakeSource{docs: map[string]string{
		"2024-01-15_.md":     "body",
		"2024-01-15_kept.md": "body",
	}}
	reviews := BuildCatalog(src)
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1: %+v", len(reviews), reviews)
	}
	if reviews[0].SourceFile != "2024-01-15_kept.md" {
		t.Errorf("kept %q", reviews[0].SourceFile)
	}
}

func TestBuildCatalogUnparseableDateDegradesLexically(t *testing.T) {
	src := &fakeSource{docs: map[string]string{
		"a.md": "---\ntitle: a\ndate: later\npermalink: a\n---\n",
		"b.md": "---\ntitle: b\ndate: 2024-01-01\npermalink: b\n---\n",
	}}
	reviews := BuildCatalog(src)
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	// "later" > "2024-01-01" lexically, so it sorts first; no crash.
	if reviews[0].Date != "later" {
		t.Errorf("reviews[0].Date = %q", reviews[0].Date)
	}
}

func TestBuildCatalogListFailureYieldsEmpty(t *testing.T) {
	src := &fakeSource{listErr: errors.New("transport down")}
	if reviews := BuildCatalog(src); len(reviews) != 0 {
		t.Errorf("got %d reviews, want 0", len(reviews))
	}
}

func TestBuildCatalogEmptySourceIsValid(t *testing.T) {
	src := &fakeSource{docs: map[string]string{}}
	if reviews := BuildCatalog(src); len(reviews) != 0 {
		t.Errorf("got %d reviews, want 0", len(reviews))
	}
}

func TestBuildCatalogFetchFailureExcludesOnlyThatDocument(t *testing.T) {
	src := &fakeSource{
		docs:        map[string]string{"2024-01-15_ok.md": "body"},
		unavailable: []string{"2024-02-01_gone.md"},
	}
	reviews := BuildCatalog(src)
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1: %+v", len(reviews), reviews)
	}
	if reviews[0].SourceFile != "2024-01-15_ok.md" {
		t.Errorf("kept %q", reviews[0].SourceFile)
	}
}
