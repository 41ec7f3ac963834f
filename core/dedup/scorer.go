// ABOUTME: Title similarity scorers used by the deduplicator
// ABOUTME: Token-set fuzzy scoring with an exact-equality fallback behind one interface

package dedup

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer compares two normalized titles.
// Scores are symmetric and lie in [0,100]; 100 means identical.
type Scorer interface {
	Score(a, b string) int
	Name() string
}

// ExactScorer treats titles as duplicates only when they are equal
type ExactScorer struct{}

// Score returns 100 for equal titles and 0 otherwise
func (ExactScorer) Score(a, b string) int {
	if a == b {
		return 100
	}
	return 0
}

// Name identifies the scorer in logs and debug output
func (ExactScorer) Name() string { return "exact" }

// TokenSetScorer scores titles by comparing their word sets.
// Shared words are sorted and compared against each side's leftovers, so word
// order and repeated words do not matter and a title that is a word-subset of
// the other scores 99. Pairwise strings are compared with a Levenshtein ratio.
type TokenSetScorer struct{}

// Score implements Scorer
func (TokenSetScorer) Score(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	setA := tokenSet(a)
	setB := tokenSet(b)

	var shared, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			shared = append(shared, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(shared, " ")
	combinedA := joinNonEmpty(base, strings.Join(onlyA, " "))
	combinedB := joinNonEmpty(base, strings.Join(onlyB, " "))

	best := ratio(combinedA, combinedB)
	if base != "" {
		best = max(best, ratio(base, combinedA), ratio(base, combinedB))
	}
	// Only identical titles may reach 100.
	return min(best, 99)
}

// Name identifies the scorer in logs and debug output
func (TokenSetScorer) Name() string { return "token_set" }

// ratio is 100 * (1 - distance / longer length), rounded down
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (longest - dist) / longest
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

// SelectScorer picks the scorer once at startup.
// When fuzzy matching is unavailable the exact scorer keeps the same
// no-false-duplicate guarantee instead of accepting or rejecting everything.
func SelectScorer(fuzzyAvailable bool) Scorer {
	if fuzzyAvailable {
		return TokenSetScorer{}
	}
	return ExactScorer{}
}
