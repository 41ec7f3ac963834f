// ABOUTME: Normalization helpers that make links and titles comparable
// ABOUTME: Canonical links feed the exact pass, normalized titles feed the fuzzy pass

package dedup

import (
	"net/url"
	"strings"
	"unicode"
)

// NormalizeTitle lowercases a title, strips punctuation and collapses whitespace
func NormalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// CanonicalLink normalizes scheme, host and trailing slash so equivalent URLs compare equal.
// Path and query keep their case. Unparseable links are only trimmed.
func CanonicalLink(link string) string {
	link = strings.TrimSpace(link)
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "http" {
		scheme = "https"
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if port := u.Port(); port != "" && port != "80" && port != "443" {
		host += ":" + port
	}

	path := strings.TrimRight(u.EscapedPath(), "/")

	canonical := scheme + "://" + host + path
	if u.RawQuery != "" {
		canonical += "?" + u.RawQuery
	}
	return canonical
}
