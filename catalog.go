package gamsang

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/haneul/gamsang/document"
	"github.com/haneul/gamsang/reldate"
)

// catalogWorkers bounds the number of documents resolved concurrently.
const catalogWorkers = 8

// BuildCatalog fetches and resolves every document the source lists and
// returns the complete records, newest first. Documents are independent,
// so they are resolved in parallel; the sort is the barrier. A document
// that cannot be fetched or that lacks a title, date, or permalink after
// the fallback chain is silently excluded — the catalog cannot fail,
// only be smaller.
func BuildCatalog(src Source) []document.Review {
	names, err := src.List()
	if err != nil {
		return nil
	}

	resolved := make([]*document.Review, len(names))
	var g errgroup.Group
	g.SetLimit(catalogWorkers)
	for i, name := range names {
		g.Go(func() error {
			raw, err := src.Fetch(name)
			if err != nil {
				return nil
			}
			r := document.Resolve(name, raw)
			if r.Complete() {
				resolved[i] = &r
			}
			return nil
		})
	}
	_ = g.Wait()

	reviews := make([]document.Review, 0, len(names))
	for _, r := range resolved {
		if r != nil {
			reviews = append(reviews, *r)
		}
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return dateKey(reviews[i].Date) > dateKey(reviews[j].Date)
	})
	return reviews
}

// dateKey normalizes a date to YYYY-MM-DD so lexical descending order is
// chronological. Unparseable dates keep their raw text and degrade to
// plain string comparison.
func dateKey(date string) string {
	if t, ok := reldate.Parse(date); ok {
		return t.Format("2006-01-02")
	}
	return date
}
