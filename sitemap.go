package gamsang

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haneul/gamsang/document"
	"github.com/haneul/gamsang/reldate"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) renderSitemap(c echo.Context, reviews []document.Review) error {
	urls := []sitemapURL{{Loc: BuildURL(a.Config.URL)}}
	for _, r := range reviews {
		u := sitemapURL{Loc: a.reviewURL(r.SourceFile)}
		if t, ok := reldate.Parse(r.Date); ok {
			u.LastMod = t.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(set)
}
