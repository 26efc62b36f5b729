// Package goquery provides the DOM-heuristic half of extraction:
// metadata lookup, the density-based main-content fallback, and the
// node stream builder that walks a selected content subtree.
package goquery

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/pressclip"
)

// Ordered metadata-tag candidates per field. Each list is tried in
// order against both the name and property attributes; the first
// non-empty content wins and later sources are never consulted.
var (
	authorMetaKeys = []string{"author", "article:author", "og:article:author", "byline"}
	dateMetaKeys   = []string{"article:published_time", "pubdate", "publishdate", "date"}
)

// authorSelectors are the DOM fallbacks tried when no author meta tag
// matches.
var authorSelectors = []string{"[rel=author]", ".author", ".byline", "[itemprop=author]"}

// maxLeadImageScan caps how many <img> elements are considered when no
// og:image tag exists.
const maxLeadImageScan = 30

// ExtractMetadata pulls article metadata from the document's meta tags,
// falling back to DOM heuristics per field. All resolution is
// first-match-wins. Relative URLs are resolved against baseURL.
func ExtractMetadata(html string, baseURL string) (pressclip.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return pressclip.Metadata{}, pressclip.Errorf(pressclip.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var meta pressclip.Metadata

	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	meta.Author = extractAuthor(doc)
	meta.PublishedDate = normalizeDate(extractDate(doc))
	meta.Tags = metaContent(doc, "keywords")
	meta.LeadImageURL = extractLeadImage(doc, base)
	meta.CanonicalURL = extractCanonical(doc, base, baseURL)

	return meta, nil
}

// metaContent returns the content of the first meta tag whose name or
// property attribute equals key.
func metaContent(doc *goquery.Document, key string) string {
	sel := doc.Find(fmt.Sprintf("meta[name=%q], meta[property=%q]", key, key)).First()
	return strings.TrimSpace(sel.AttrOr("content", ""))
}

func extractAuthor(doc *goquery.Document) string {
	for _, key := range authorMetaKeys {
		if v := metaContent(doc, key); v != "" {
			return v
		}
	}
	for _, selector := range authorSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			if v := strings.TrimSpace(sel.Text()); v != "" {
				return v
			}
		}
	}
	return ""
}

func extractDate(doc *goquery.Document) string {
	for _, key := range dateMetaKeys {
		if v := metaContent(doc, key); v != "" {
			return v
		}
	}
	timeTag := doc.Find("time").First()
	if timeTag.Length() == 0 {
		return ""
	}
	if v := strings.TrimSpace(timeTag.AttrOr("datetime", "")); v != "" {
		return v
	}
	return strings.TrimSpace(timeTag.Text())
}

// normalizeDate converts a recognizable date to RFC 3339 form.
// Unparseable values pass through verbatim rather than being dropped.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format(time.RFC3339)
}

func extractLeadImage(doc *goquery.Document, base *url.URL) string {
	if v := metaContent(doc, "og:image"); v != "" {
		return resolveURL(base, v)
	}

	var lead string
	doc.Find("img").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxLeadImageScan {
			return false
		}
		src := imageSource(sel)
		if src == "" {
			return true
		}
		lead = resolveURL(base, src)
		return lead == ""
	})
	return lead
}

func extractCanonical(doc *goquery.Document, base *url.URL, baseURL string) string {
	if href := strings.TrimSpace(doc.Find("link[rel=canonical]").First().AttrOr("href", "")); href != "" {
		if resolved := resolveURL(base, href); resolved != "" {
			return resolved
		}
	}
	return baseURL
}

// resolveURL resolves a possibly-relative reference against base.
// Returns the reference unchanged when base is nil, and empty when the
// reference itself cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
