package document

import "testing"

func TestSplitWithFrontMatter(t *testing.T) {
	raw := "---\ntitle: Dune\ndate: 2024-01-15\n---\nThe body."
	fm, body := Split(raw)
	if fm != "title: Dune\ndate: 2024-01-15" {
		t.Errorf("front matter = %q", fm)
	}
	if body != "The body." {
		t.Errorf("body = %q", body)
	}
}

func TestSplitConsumesOneLineBreakAfterDelimiter(t *testing.T) {
	fm, body := Split("---\na: b\n---\n\nbody")
	if fm != "a: b" {
		t.Errorf("front matter = %q", fm)
	}
	if body != "\nbody" {
		t.Errorf("body = %q, want leading blank line preserved", body)
	}
}

func TestSplitWithoutFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no delimiter at all", "just text\nmore text"},
		{"delimiter not on first line", "intro\n---\na: b\n---\n"},
		{"unclosed delimiter", "---\ntitle: x\nno closing line"},
	}
	for _, tt := range tests {
		fm, body := Split(tt.raw)
		if fm != "" {
			t.Errorf("%s: front matter = %q, want empty", tt.name, fm)
		}
		if body != tt.raw {
			t.Errorf("%s: body = %q, want full text", tt.name, body)
		}
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	raw := "---\ntitle: Dune\n---\nbody line"
	fm, body := Split(raw)
	fm2, body2 := Split("---\n" + fm + "\n---\n" + body)
	if fm2 != fm || body2 != body {
		t.Errorf("re-split = (%q, %q), want (%q, %q)", fm2, body2, fm, body)
	}
}

func TestParseMeta(t *testing.T) {
	meta := ParseMeta("title: Dune\nauthor: 'Frank Herbert'\npublication_year: \"1965\"\nnot a pair\n: no key\nurl: https://example.com/x")
	want := map[string]string{
		"title":            "Dune",
		"author":           "Frank Herbert",
		"publication_year": "1965",
		"url":              "https://example.com/x",
	}
	if len(meta) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(meta), len(want), meta)
	}
	for k, v := range want {
		if meta[k] != v {
			t.Errorf("meta[%q] = %q, want %q", k, meta[k], v)
		}
	}
}

func TestParseMetaLastDuplicateWins(t *testing.T) {
	meta := ParseMeta("title: first\ntitle: second")
	if meta["title"] != "second" {
		t.Errorf("title = %q, want %q", meta["title"], "second")
	}
}

func TestParseMetaEmptyInput(t *testing.T) {
	if meta := ParseMeta(""); len(meta) != 0 {
		t.Errorf("expected empty map, got %v", meta)
	}
}

func TestParseMetaUnmatchedQuotesKept(t *testing.T) {
	meta := ParseMeta("a: 'half open\nb: \"mixed'")
	if meta["a"] != "'half open" {
		t.Errorf("a = %q", meta["a"])
	}
	if meta["b"] != "\"mixed'" {
		t.Errorf("b = %q", meta["b"])
	}
}

func TestInfer(t *testing.T) {
	tests := []struct {
		filename  string
		title     string
		date      string
		permalink string
	}{
		{"2024-01-15_my-review.md", "my-review", "2024-01-15", "my-review"},
		{"2024-01-15-my-review.md", "my-review", "2024-01-15", "my-review"},
		{"20240115-slug.md", "slug", "2024-01-15", "slug"},
		{"20240115_my_review.md", "my_review", "2024-01-15", "my_review"},
		{"notes_on_dune.md", "on_dune", "", "on_dune"},
		{"plain.md", "plain", "", "plain"},
		{"2024_01_15_dune.md", "01_15_dune", "2024-01-15", "01_15_dune"},
	}
	for _, tt := range tests {
		got := Infer(tt.filename)
		if got.Title != tt.title {
			t.Errorf("Infer(%q).Title = %q, want %q", tt.filename, got.Title, tt.title)
		}
		if got.Date != tt.date {
			t.Errorf("Infer(%q).Date = %q, want %q", tt.filename, got.Date, tt.date)
		}
		if got.Permalink != tt.permalink {
			t.Errorf("Infer(%q).Permalink = %q, want %q", tt.filename, got.Permalink, tt.permalink)
		}
	}
}

func TestResolveMetadataWinsOverFilename(t *testing.T) {
	raw := "---\ntitle: Real Title\ndate: 2023-12-01\n---\nbody"
	r := Resolve("2024-01-15_slug.md", raw)
	if r.Title != "Real Title" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Date != "2023-12-01" {
		t.Errorf("Date = %q", r.Date)
	}
	if r.Permalink != "slug" {
		t.Errorf("Permalink = %q, want filename fallback", r.Permalink)
	}
	if r.Body != "body" {
		t.Errorf("Body = %q", r.Body)
	}
}

func TestResolveNoFrontMatterFallsBackToFilename(t *testing.T) {
	r := Resolve("2024-01-15_my-review.md", "just a body")
	if r.Title != "my-review" || r.Date != "2024-01-15" || r.Permalink != "my-review" {
		t.Errorf("got %+v", r)
	}
	if !r.Complete() {
		t.Error("expected record to be complete")
	}
}

func TestResolveIncompleteRecord(t *testing.T) {
	r := Resolve("plain.md", "no date anywhere")
	if r.Date != "" {
		t.Errorf("Date = %q, want empty", r.Date)
	}
	if r.Complete() {
		t.Error("record without date should not be complete")
	}
}
