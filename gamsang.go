// Package gamsang is a personal review archive server built with Go,
// Echo, and templ. It renders a directory of plain-text review documents
// as a list view (titles with relative dates, newest first) and a detail
// view (the rendered document body), with an RSS feed, a sitemap, and an
// optional privacy-first page-view counter.
//
// Documents are re-read and re-resolved on every page load; the archive
// keeps no derived state.
package gamsang

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/haneul/gamsang/analytics"
)

// App is the central gamsang application. It wires together the review
// store, handlers, middleware, and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new gamsang App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, middleware, and routes, then starts the
// server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.statsEnabled() && a.Config.SessionSecret == "" {
		return fmt.Errorf("gamsang: SessionSecret is required when StatsPassword is set")
	}

	store, err := NewStore(a.Config.ReviewsDir)
	if err != nil {
		return fmt.Errorf("gamsang: init store: %w", err)
	}
	a.Store = store

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("gamsang: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
		if err := analytics.InitSalt(analyticsStore); err != nil {
			return fmt.Errorf("gamsang: init analytics salt: %w", err)
		}
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/review/", a.handleReview)

	if a.Config.statsEnabled() {
		e.GET("/stats/", a.handleStats)
		e.POST("/stats/login/", a.handleStatsLogin)
		e.POST("/stats/logout/", a.handleStatsLogout)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback
// if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("gamsang: required environment variable %s is not set", key)
	}
	return v
}
