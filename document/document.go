// Package document turns raw review files into normalized records.
// It splits front matter from the body, parses the permissive key: value
// metadata block, and falls back to filename-derived values when the
// metadata is missing or incomplete. Nothing in this package returns an
// error: malformed input always degrades to a best-effort result.
package document

import (
	"regexp"
	"strings"
)

const delimiter = "---"

// Split separates raw text into a front-matter block and a body.
// A front-matter block is recognized only when the very first line is
// exactly "---" and a matching closing "---" line follows; both delimiter
// lines are excluded from the result. Anything else (no opening line,
// no closing line) makes the whole text the body.
func Split(text string) (frontMatter, body string) {
	lines := strings.Split(text, "\n")
	if strings.TrimRight(lines[0], "\r") != delimiter {
		return "", text
	}
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return "", text
	}
	frontMatter = strings.Join(lines[1:end], "\n")
	body = strings.Join(lines[end+1:], "\n")
	return frontMatter, body
}

// ParseMeta parses a front-matter block into a key→value map.
// Each line is split on its first colon; lines without a colon and lines
// with an empty key are skipped. Values lose one matching pair of
// surrounding quotes. A later duplicate key overwrites an earlier one.
func ParseMeta(frontMatter string) map[string]string {
	meta := make(map[string]string)
	for _, line := range strings.Split(frontMatter, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		meta[key] = unquote(strings.TrimSpace(line[idx+1:]))
	}
	return meta
}

// unquote strips one matching pair of single or double quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '\'' || first == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

var (
	reDatedName   = regexp.MustCompile(`^(?:\d{4}-\d{2}-\d{2}|\d{8})[-_](.+)$`)
	reLeadingISO  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	reLeading8    = regexp.MustCompile(`^\d{8}`)
	reNonDateChar = regexp.MustCompile(`[^0-9-]`)
)

// Inferred holds best-effort values derived from a filename. Any field
// may be empty; callers treat empty as "missing".
type Inferred struct {
	Title     string
	Date      string
	Permalink string
}

// Infer derives title, date, and permalink from a review filename such as
// "2024-01-15_my-review.md" or "20240115-slug.md". The date precedence is
// a compatibility contract with existing filenames: leading YYYY-MM-DD
// first, then the 8-digit compact form, then the stripped first token.
func Infer(filename string) Inferred {
	name := strings.TrimSuffix(filename, ".md")
	slug := inferSlug(name)
	return Inferred{
		Title:     slug,
		Date:      inferDate(name),
		Permalink: slug,
	}
}

func inferSlug(name string) string {
	if m := reDatedName.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	if i := strings.Index(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}

func inferDate(name string) string {
	normalized := strings.ReplaceAll(name, "_", "-")
	if m := reLeadingISO.FindString(normalized); m != "" {
		return m
	}
	if m := reLeading8.FindString(name); m != "" {
		return m[:4] + "-" + m[4:6] + "-" + m[6:8]
	}
	token := name
	if i := strings.IndexAny(name, "_-"); i >= 0 {
		token = name[:i]
	}
	return reNonDateChar.ReplaceAllString(token, "")
}

// Review is the normalized projection of one review document.
type Review struct {
	Title      string
	Date       string
	Permalink  string
	SourceFile string
	Body       string
	Meta       map[string]string
}

// Resolve builds a Review from raw document text, filling metadata gaps
// from the filename. It never fails; fields the fallback chain cannot
// produce stay empty.
func Resolve(filename, raw string) Review {
	frontMatter, body := Split(raw)
	meta := ParseMeta(frontMatter)
	inferred := Infer(filename)

	r := Review{
		Title:      meta["title"],
		Date:       meta["date"],
		Permalink:  meta["permalink"],
		SourceFile: filename,
		Body:       body,
		Meta:       meta,
	}
	if r.Title == "" {
		r.Title = inferred.Title
	}
	if r.Date == "" {
		r.Date = inferred.Date
	}
	if r.Permalink == "" {
		r.Permalink = inferred.Permalink
	}
	return r
}

// Complete reports whether the review carries the non-empty triple
// required for the list view. Incomplete reviews are silently excluded
// from the catalog; the detail view tolerates them.
func (r Review) Complete() bool {
	return r.Title != "" && r.Date != "" && r.Permalink != ""
}
