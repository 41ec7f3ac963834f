// ABOUTME: Deduplicator merges the articles of one topic into a duplicate-free list
// ABOUTME: Exact canonical-link matching first, then fuzzy title matching against accepted titles

package dedup

import (
	"sports-news-api/core/domain"
)

// DefaultThreshold is the similarity score at or above which titles are duplicates
const DefaultThreshold = 85

// Result is the outcome of a deduplication pass
type Result struct {
	Articles       []domain.Article
	DroppedByLink  int
	DroppedByTitle int
}

// Deduplicator removes repeated articles while keeping first-seen order
type Deduplicator struct {
	scorer Scorer
}

// NewDeduplicator creates a deduplicator; a nil scorer falls back to exact matching
func NewDeduplicator(scorer Scorer) *Deduplicator {
	if scorer == nil {
		scorer = ExactScorer{}
	}
	return &Deduplicator{scorer: scorer}
}

// Scorer returns the similarity strategy in use
func (d *Deduplicator) Scorer() Scorer {
	return d.scorer
}

// FuzzyAvailable reports whether approximate matching is active
func (d *Deduplicator) FuzzyAvailable() bool {
	_, exact := d.scorer.(ExactScorer)
	return !exact
}

// Dedupe returns articles with duplicates removed. The earliest article wins
// every tie. threshold is clamped to [0,100]. The exact scorer ignores it:
// only equal normalized titles are duplicates.
func (d *Deduplicator) Dedupe(articles []domain.Article, threshold int) Result {
	threshold = ClampThreshold(threshold)
	if !d.FuzzyAvailable() {
		threshold = 100
	}

	seenLinks := make(map[string]struct{}, len(articles))
	accepted := make([]domain.Article, 0, len(articles))
	acceptedTitles := make([]string, 0, len(articles))
	result := Result{}

	for _, article := range articles {
		link := CanonicalLink(article.Link)
		if _, seen := seenLinks[link]; seen {
			result.DroppedByLink++
			continue
		}
		seenLinks[link] = struct{}{}

		title := NormalizeTitle(article.Title)
		if d.isDuplicateTitle(title, acceptedTitles, threshold) {
			result.DroppedByTitle++
			continue
		}

		accepted = append(accepted, article)
		acceptedTitles = append(acceptedTitles, title)
	}

	result.Articles = accepted
	return result
}

func (d *Deduplicator) isDuplicateTitle(title string, pool []string, threshold int) bool {
	for _, other := range pool {
		if d.scorer.Score(title, other) >= threshold {
			return true
		}
	}
	return false
}

// ClampThreshold bounds a similarity threshold to [0,100]
func ClampThreshold(threshold int) int {
	return min(max(threshold, 0), 100)
}
