package gamsang

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
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

// Excerpt returns the first non-blank, non-markup line of a review body,
// truncated to max runes, for use as a feed item description.
func Excerpt(body string, max int) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.NewReplacer("**", "", "__", "", "*", "", "_", "", "`", "", "> ", "").Replace(line)
		runes := []rune(line)
		if len(runes) > max {
			return string(runes[:max]) + "…"
		}
		return line
	}
	return ""
}
