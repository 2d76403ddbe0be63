package views

// Site holds the site-wide values every page renders: branding, the
// canonical URL, and the page language.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	Lang        string // two-letter-prefix language tag; "en*" is English, anything else Korean
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// ReviewItem is one row of the list view: the review title, the link to
// its detail page, and the already-formatted relative date.
type ReviewItem struct {
	Title string
	Link  string
	When  string
}

// ReviewPage carries one resolved review into the detail template.
// Title and When may be empty; empty values are simply not shown.
type ReviewPage struct {
	Title  string
	Date   string
	When   string
	Author string
	Year   string
	URL    string
	Body   string // pre-rendered HTML from the markdown package
}
