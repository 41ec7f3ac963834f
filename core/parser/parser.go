// ABOUTME: Feed parser converts raw RSS/Atom/JSON feed bytes into normalized articles
// ABOUTME: Tolerates partial feeds by skipping entries without a title or link

package parser

import (
	"bytes"
	"errors"
	"iter"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"sports-news-api/core/domain"
	coreerrors "sports-news-api/core/errors"
	"sports-news-api/core/interfaces"
	htmlutil "sports-news-api/pkg/utils/html"
	timeutil "sports-news-api/pkg/utils/time"
)

// Parser turns feed documents into articles
type Parser struct {
	logger interfaces.Logger
}

// NewParser creates a parser that reports skipped data through logger
func NewParser(logger interfaces.Logger) *Parser {
	return &Parser{logger: interfaces.LoggerOrNop(logger)}
}

// Parse decodes raw and returns a one-pass sequence of valid articles plus the
// number of entries the feed declared. Unsupported or corrupt documents return
// a *coreerrors.ParseError and zero entries.
func (p *Parser) Parse(raw []byte, source domain.FeedSource) (iter.Seq[domain.Article], int, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, 0, &coreerrors.ParseError{URL: source.URL, Err: errors.New("empty feed content")}
	}

	// gofeed parsers keep state between calls, so each parse gets its own.
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, &coreerrors.ParseError{URL: source.URL, Err: err}
	}

	items := feed.Items
	seq := func(yield func(domain.Article) bool) {
		for _, item := range items {
			if item == nil {
				continue
			}
			article, ok := p.convertItem(item, source)
			if !ok {
				continue
			}
			if !yield(article) {
				return
			}
		}
	}

	return seq, len(items), nil
}

// convertItem maps a gofeed item to an article; false means the entry is dropped
func (p *Parser) convertItem(item *gofeed.Item, source domain.FeedSource) (domain.Article, bool) {
	article := domain.Article{
		Title:   htmlutil.StripHTML(item.Title),
		Link:    itemLink(item),
		Topic:   source.Topic,
		FeedURL: source.URL,
	}
	if !article.IsValid() {
		return domain.Article{}, false
	}

	if item.Description != "" {
		article.Summary = htmlutil.StripHTML(item.Description)
	} else if item.Content != "" {
		article.Summary = htmlutil.StripHTML(item.Content)
	}

	article.PublishedAt = p.publishedAt(item, article.Link)
	article.Source = itemSource(item, article.Link)

	return article, true
}

// publishedAt normalizes the entry's raw date, falling back to gofeed's own parse
func (p *Parser) publishedAt(item *gofeed.Item, link string) time.Time {
	raw := item.Published
	if raw == "" {
		raw = item.Updated
	}

	if t, ok := timeutil.Normalize(raw); ok {
		return t
	}

	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}

	if strings.TrimSpace(raw) != "" {
		p.logger.Warn("Could not parse date", map[string]interface{}{
			"link": link,
			"raw":  raw,
		})
	}
	return time.Time{}
}

// itemLink returns the entry URL, falling back to other links and a URL-shaped GUID
func itemLink(item *gofeed.Item) string {
	if link := strings.TrimSpace(item.Link); link != "" {
		return link
	}
	for _, link := range item.Links {
		if link = strings.TrimSpace(link); link != "" {
			return link
		}
	}
	if isAbsoluteURL(item.GUID) {
		return strings.TrimSpace(item.GUID)
	}
	return ""
}

// itemSource prefers a feed-declared source and falls back to the link's domain
func itemSource(item *gofeed.Item, link string) string {
	if dc := item.DublinCoreExt; dc != nil {
		for _, candidates := range [][]string{dc.Source, dc.Publisher} {
			for _, c := range candidates {
				if c = strings.TrimSpace(c); c != "" && !isAbsoluteURL(c) {
					return c
				}
			}
		}
	}
	return domain.DomainOf(link)
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Limit caps seq at n articles while preserving order. n <= 0 means no cap.
func Limit(seq iter.Seq[domain.Article], n int) iter.Seq[domain.Article] {
	if n <= 0 {
		return seq
	}
	return func(yield func(domain.Article) bool) {
		count := 0
		for article := range seq {
			if count >= n {
				return
			}
			count++
			if !yield(article) {
				return
			}
		}
	}
}
