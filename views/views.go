// Package views renders the site's pages as templ components. The
// components are written by hand against templ.ComponentFunc so the
// markup stays plain Go with explicit escaping.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/haneul/gamsang/analytics"
)

// esc escapes text nodes and attribute values.
func esc(s string) string {
	return html.EscapeString(s)
}

// page wraps body markup in the shared HTML shell.
func page(site Site, meta PageMeta, body func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		lang := site.Lang
		if lang == "" {
			lang = "ko"
		}
		title := site.Name
		if meta.Title != "" {
			title = meta.Title + " · " + site.Name
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		buf.WriteString("<!DOCTYPE html>")
		buf.WriteString(`<html lang="` + esc(lang) + `">`)
		buf.WriteString("<head>")
		buf.WriteString(`<meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		buf.WriteString("<title>" + esc(title) + "</title>")
		if meta.Description != "" {
			buf.WriteString(`<meta name="description" content="` + esc(meta.Description) + `"/>`)
		}
		if meta.URL != "" {
			buf.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
			buf.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		}
		buf.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
		buf.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
		buf.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"/>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/style.css"/>`)
		buf.WriteString("</head>")
		buf.WriteString("<body>")
		buf.WriteString(`<header class="site-header"><a href="/">` + esc(site.Name) + `</a></header>`)
		buf.WriteString(`<main>`)
		body(&buf)
		buf.WriteString("</main>")
		buf.WriteString(`<footer class="site-footer">`)
		if site.Author != "" {
			buf.WriteString(`<span>` + esc(site.Author) + `</span>`)
		}
		buf.WriteString("</footer>")
		buf.WriteString("</body></html>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Home renders the list view: review titles with relative dates, newest
// first.
func Home(site Site, items []ReviewItem) templ.Component {
	meta := PageMeta{
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
	}
	return page(site, meta, func(buf *bytes.Buffer) {
		buf.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(site) + `</script>`)
		buf.WriteString(`<ul class="review-list">`)
		for _, item := range items {
			buf.WriteString(`<li class="review-item">`)
			buf.WriteString(`<a href="` + esc(item.Link) + `">` + esc(item.Title) + `</a>`)
			if item.When != "" {
				buf.WriteString(`<span class="review-date">` + esc(item.When) + `</span>`)
			}
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")
	})
}

// Review renders the detail view. Empty title or date rows are omitted;
// the body HTML comes pre-rendered from the markdown package.
func Review(site Site, p ReviewPage) templ.Component {
	msgs := messagesFor(site.Lang)
	meta := PageMeta{
		Title:  p.Title,
		URL:    p.URL,
		OGType: "article",
	}
	return page(site, meta, func(buf *bytes.Buffer) {
		buf.WriteString(`<script type="application/ld+json">` + ReviewJsonLD(site, p) + `</script>`)
		buf.WriteString(`<article class="review">`)
		if p.Title != "" {
			buf.WriteString("<h1>" + esc(p.Title) + "</h1>")
		}
		buf.WriteString(`<div class="review-meta">`)
		if p.When != "" {
			buf.WriteString(`<time datetime="` + esc(p.Date) + `">` + esc(p.When) + `</time>`)
		}
		if p.Author != "" {
			buf.WriteString(`<span class="review-author">` + esc(p.Author) + `</span>`)
		}
		if p.Year != "" {
			buf.WriteString(`<span class="review-year">` + esc(p.Year) + `</span>`)
		}
		buf.WriteString("</div>")
		buf.WriteString(`<div class="review-body">` + p.Body + `</div>`)
		buf.WriteString("</article>")
		buf.WriteString(`<p class="back-link"><a href="/">` + esc(msgs.BackToList) + `</a></p>`)
	})
}

// errorPage renders a single localized message with a link home.
func errorPage(site Site, message string) templ.Component {
	return page(site, PageMeta{}, func(buf *bytes.Buffer) {
		msgs := messagesFor(site.Lang)
		buf.WriteString(`<section class="error-page">`)
		buf.WriteString("<p>" + esc(message) + "</p>")
		buf.WriteString(`<p><a href="/">` + esc(msgs.BackToList) + `</a></p>`)
		buf.WriteString("</section>")
	})
}

// MissingDocument is the detail-view precondition error: the request
// carried no document parameter.
func MissingDocument(site Site) templ.Component {
	return errorPage(site, messagesFor(site.Lang).MissingParam)
}

// NotFound renders the localized 404 page.
func NotFound(site Site) templ.Component {
	return errorPage(site, messagesFor(site.Lang).NotFound)
}

// ServerError renders the localized 500 page.
func ServerError(site Site) templ.Component {
	return errorPage(site, messagesFor(site.Lang).ServerError)
}

// StatsLogin renders the stats dashboard login form.
func StatsLogin(site Site, showError bool, csrfToken string) templ.Component {
	msgs := messagesFor(site.Lang)
	return page(site, PageMeta{Title: msgs.StatsTitle}, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="stats-login">`)
		buf.WriteString("<h1>" + esc(msgs.StatsTitle) + "</h1>")
		if showError {
			buf.WriteString(`<p class="error">` + esc(msgs.LoginFailed) + `</p>`)
		}
		buf.WriteString(`<form method="post" action="/stats/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<label>` + esc(msgs.Password) + ` <input type="password" name="password" autofocus/></label>`)
		buf.WriteString(`<button type="submit">` + esc(msgs.LogIn) + `</button>`)
		buf.WriteString("</form>")
		buf.WriteString("</section>")
	})
}

// Stats renders the page-view dashboard.
func Stats(site Site, summary analytics.Summary, csrfToken string) templ.Component {
	msgs := messagesFor(site.Lang)
	return page(site, PageMeta{Title: msgs.StatsTitle}, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="stats">`)
		buf.WriteString("<h1>" + esc(msgs.StatsTitle) + "</h1>")
		buf.WriteString(`<dl class="stats-totals">`)
		buf.WriteString("<dt>" + esc(msgs.TotalVisits) + "</dt><dd>" + fmt.Sprint(summary.Total) + "</dd>")
		buf.WriteString("<dt>" + esc(msgs.TodayVisits) + "</dt><dd>" + fmt.Sprint(summary.Today) + "</dd>")
		buf.WriteString("</dl>")
		buf.WriteString("<h2>" + esc(msgs.TopPages) + "</h2>")
		buf.WriteString(`<table class="stats-table">`)
		for _, p := range summary.TopPaths {
			buf.WriteString("<tr><td>" + esc(p.Path) + "</td><td>" + fmt.Sprint(p.Count) + "</td></tr>")
		}
		buf.WriteString("</table>")
		buf.WriteString("<h2>" + esc(msgs.RecentDays) + "</h2>")
		buf.WriteString(`<table class="stats-table">`)
		for _, d := range summary.Days {
			buf.WriteString("<tr><td>" + esc(d.Day) + "</td><td>" + fmt.Sprint(d.Count) + "</td></tr>")
		}
		buf.WriteString("</table>")
		buf.WriteString(`<form method="post" action="/stats/logout/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<button type="submit">` + esc(msgs.LogOut) + `</button>`)
		buf.WriteString("</form>")
		buf.WriteString("</section>")
	})
}
