package domain

import (
	"sort"
	"strings"
)

// SortNewestFirst orders articles by publication date, newest first.
// Articles with unknown dates go last; equal dates fall back to the lowercased title.
// The sort is stable and works in place.
func SortNewestFirst(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := &articles[i], &articles[j]
		if a.HasPublished() != b.HasPublished() {
			return a.HasPublished()
		}
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}
