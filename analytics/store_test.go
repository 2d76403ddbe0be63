package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if got, err := s.GetSetting("missing"); err != nil || got != "" {
		t.Fatalf("GetSetting(missing) = (%q, %v), want empty", got, err)
	}
	if err := s.SetSetting("hash_salt", "abc"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := s.SetSetting("hash_salt", "def"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}
	got, err := s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if got != "def" {
		t.Errorf("GetSetting = %q, want %q", got, "def")
	}
}

func TestSummarize(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	visits := []struct {
		path string
		at   time.Time
	}{
		{"/", now},
		{"/", now},
		{"/review/", now},
		{"/", now.AddDate(0, 0, -1)},
		{"/review/", now.AddDate(0, 0, -40)},
	}
	for _, v := range visits {
		if err := s.RecordVisit(v.path, "hash", v.at); err != nil {
			t.Fatalf("RecordVisit: %v", err)
		}
	}

	sum, err := s.Summarize(now, 10, 30)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Total != 5 {
		t.Errorf("Total = %d, want 5", sum.Total)
	}
	if sum.Today != 3 {
		t.Errorf("Today = %d, want 3", sum.Today)
	}
	if len(sum.TopPaths) != 2 || sum.TopPaths[0].Path != "/" || sum.TopPaths[0].Count != 3 {
		t.Errorf("TopPaths = %+v", sum.TopPaths)
	}
	// The 40-day-old visit falls outside the 30-day trail.
	for _, d := range sum.Days {
		if d.Day == now.AddDate(0, 0, -40).Format("2006-01-02") {
			t.Errorf("Days includes out-of-window day: %+v", sum.Days)
		}
	}
	if len(sum.Days) != 2 {
		t.Errorf("Days = %+v, want 2 entries", sum.Days)
	}
}
