package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the site.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      buildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ReviewJsonLD produces a Schema.org Review JSON-LD block for one review.
func ReviewJsonLD(site Site, page ReviewPage) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Review",
		"name":     page.Title,
		"url":      page.URL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   page.URL,
		},
	}
	if page.Date != "" {
		data["datePublished"] = page.Date
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if page.Author != "" {
		data["itemReviewed"] = map[string]interface{}{
			"@type": "Book",
			"name":  page.Title,
			"author": map[string]string{
				"@type": "Person",
				"name":  page.Author,
			},
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
