package main

import (
	"log"
	"os"

	"github.com/haneul/gamsang"
)

func main() {
	cfg := gamsang.SiteConfig{
		Name:        gamsang.EnvOr("SITE_NAME", "감상"),
		URL:         gamsang.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),
		Lang:        gamsang.EnvOr("SITE_LANG", "ko"),

		Addr:       gamsang.EnvOr("ADDR", ":3000"),
		ReviewsDir: gamsang.EnvOr("REVIEWS_DIR", "reviews"),

		AnalyticsEnabled:      os.Getenv("ANALYTICS_ENABLED") == "true",
		AnalyticsDatabasePath: gamsang.EnvOr("ANALYTICS_DB_PATH", "data/analytics.db"),

		StatsPassword: os.Getenv("STATS_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
	}

	app := gamsang.New(cfg, gamsang.WithStaticDir(gamsang.EnvOr("STATIC_DIR", "public")))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
