package gamsang

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/haneul/gamsang/analytics"
	"github.com/haneul/gamsang/document"
	"github.com/haneul/gamsang/markdown"
	"github.com/haneul/gamsang/reldate"
	"github.com/haneul/gamsang/views"
)

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Lang:        a.Config.Lang,
	}
}

// reviewLink is the relative detail-view address for a document. The
// document is referenced by its filename in the query string.
func reviewLink(name string) string {
	return "/review/?file=" + url.QueryEscape(name)
}

func (a *App) reviewURL(name string) string {
	return strings.TrimSuffix(a.Config.URL, "/") + reviewLink(name)
}

func (a *App) handleHome(c echo.Context) error {
	a.trackVisit(c, "/")

	reviews := BuildCatalog(a.Store)
	loc := reldate.LocaleFrom(a.Config.Lang)
	now := time.Now()

	items := make([]views.ReviewItem, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, views.ReviewItem{
			Title: r.Title,
			Link:  reviewLink(r.SourceFile),
			When:  reldate.Format(r.Date, loc, now),
		})
	}
	return Render(c, views.Home(a.site(), items))
}

func (a *App) handleReview(c echo.Context) error {
	file := c.QueryParam("file")
	if file == "" {
		return RenderStatus(c, http.StatusBadRequest, views.MissingDocument(a.site()))
	}

	raw, err := a.Store.Fetch(file)
	if err != nil {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
	}
	a.trackVisit(c, reviewLink(file))

	r := document.Resolve(file, raw)
	loc := reldate.LocaleFrom(a.Config.Lang)
	page := views.ReviewPage{
		Title:  r.Title,
		Date:   r.Date,
		When:   reldate.Format(r.Date, loc, time.Now()),
		Author: r.Meta["author"],
		Year:   r.Meta["publication_year"],
		URL:    a.reviewURL(file),
		Body:   markdown.Render(r.Body),
	}
	return Render(c, views.Review(a.site(), page))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, BuildCatalog(a.Store))
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, BuildCatalog(a.Store))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

// trackVisit records a page view when analytics is enabled. A failed
// write never affects the response.
func (a *App) trackVisit(c echo.Context, path string) {
	if a.analyticsStore == nil {
		return
	}
	if err := a.analyticsStore.RecordVisit(path, analytics.HashIP(c.RealIP()), time.Now()); err != nil {
		c.Logger().Warnf("record visit: %v", err)
	}
}

func (a *App) handleStats(c echo.Context) error {
	if !IsStatsAuthed(c) {
		return Render(c, views.StatsLogin(a.site(), false, CsrfToken(c)))
	}
	var summary analytics.Summary
	if a.analyticsStore != nil {
		var err error
		summary, err = a.analyticsStore.Summarize(time.Now(), 10, 30)
		if err != nil {
			return err
		}
	}
	return Render(c, views.Stats(a.site(), summary, CsrfToken(c)))
}

func (a *App) handleStatsLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many attempts. Try again later.")
	}
	password := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.Config.StatsPassword)) != 1 {
		a.loginLimiter.Record(ip)
		return RenderStatus(c, http.StatusUnauthorized, views.StatsLogin(a.site(), true, CsrfToken(c)))
	}
	if err := setStatsSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/stats/")
}

func (a *App) handleStatsLogout(c echo.Context) error {
	if err := clearStatsSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
