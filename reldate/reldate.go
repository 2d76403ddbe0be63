// Package reldate formats review dates as human-readable relative
// phrases ("3일 전", "2 weeks ago"). The locale is passed in explicitly
// so the formatter stays pure and testable.
package reldate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Locale selects the phrasing language.
type Locale int

const (
	Korean Locale = iota
	English
)

// LocaleFrom maps a language tag to a Locale. Only the "en" prefix is
// distinguished; everything else, including an empty tag, is Korean.
func LocaleFrom(tag string) Locale {
	if strings.HasPrefix(strings.ToLower(tag), "en") {
		return English
	}
	return Korean
}

var reCompact = regexp.MustCompile(`^\d{8}$`)

// dateLayouts are tried in order after separator normalization.
var dateLayouts = []string{"2006-01-02", "2006-1-2"}

// Parse attempts to read value as a calendar date. Dots and slashes are
// treated as dashes; a bare 8-digit value is reinterpreted positionally
// as YYYY-MM-DD.
func Parse(value string) (time.Time, bool) {
	cleaned := strings.NewReplacer(".", "-", "/", "-").Replace(strings.TrimSpace(value))
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, cleaned, time.Local); err == nil {
			return t, true
		}
	}
	if reCompact.MatchString(cleaned) {
		sliced := cleaned[:4] + "-" + cleaned[4:6] + "-" + cleaned[6:8]
		if t, err := time.ParseInLocation("2006-01-02", sliced, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders value as a relative phrase against now. An empty value
// yields an empty string; an unparseable value is returned unchanged.
// The comparison is by calendar day at local midnight, and the week,
// month, and year buckets use flat divisors (7, 30, 365), so boundary
// months and years are approximate.
func Format(value string, loc Locale, now time.Time) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	target, ok := Parse(value)
	if !ok {
		return value
	}

	days := int(midnight(now).Sub(midnight(target)).Hours() / 24)
	switch {
	case days <= 0:
		return phrase(loc, "today", 0)
	case days < 7:
		return phrase(loc, "days", days)
	case days/7 < 4:
		return phrase(loc, "weeks", days/7)
	case days/30 < 12:
		return phrase(loc, "months", days/30)
	default:
		return phrase(loc, "years", days/365)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func phrase(loc Locale, unit string, n int) string {
	if loc == English {
		switch unit {
		case "today":
			return "today"
		case "days":
			return fmt.Sprintf("%d days ago", n)
		case "weeks":
			return fmt.Sprintf("%d weeks ago", n)
		case "months":
			return fmt.Sprintf("%d months ago", n)
		default:
			return fmt.Sprintf("%d years ago", n)
		}
	}
	switch unit {
	case "today":
		return "오늘"
	case "days":
		return fmt.Sprintf("%d일 전", n)
	case "weeks":
		return fmt.Sprintf("%d주 전", n)
	case "months":
		return fmt.Sprintf("%d개월 전", n)
	default:
		return fmt.Sprintf("%d년 전", n)
	}
}
