package gamsang

// SiteConfig holds all configuration for a gamsang site.
type SiteConfig struct {
	Name        string // Site name (default "감상")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD
	Lang        string // Page language tag; "en" prefix selects English, anything else Korean

	Addr       string // Listen address (default ":3000")
	ReviewsDir string // Directory of review documents (default "reviews")

	AnalyticsEnabled      bool   // Enable the page-view counter
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")

	StatsPassword string // Password for the stats dashboard; empty disables it
	SessionSecret string // Session encryption secret, required when StatsPassword is set
	CookieSecure  bool   // Set true for HTTPS
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "감상"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Lang == "" {
		c.Lang = "ko"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ReviewsDir == "" {
		c.ReviewsDir = "reviews"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
}

func (c *SiteConfig) statsEnabled() bool {
	return c.StatsPassword != ""
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
