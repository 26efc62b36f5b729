package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pressclip"
)

// noiseSelectors are removed before measuring candidate text density;
// script and style text would otherwise inflate a container's score.
var noiseSelectors = []string{"script", "style", "noscript"}

// SelectContent picks the main-content subtree of a full document using
// density heuristics and returns its HTML. Preference order: the first
// <article>, then the first <main>, then the div/section with the most
// visible text (first-encountered wins ties), then <body>.
//
// This is the fallback strategy used when no readability-style
// extractor is available or the one configured fails.
func SelectContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", pressclip.Errorf(pressclip.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, tag := range []string{"article", "main"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			return outerHTML(sel.First())
		}
	}

	best := doc.Find("body").First()
	maxLen := 0
	doc.Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		// Strictly greater keeps the first-encountered candidate on ties.
		if n := len(strings.TrimSpace(sel.Text())); n > maxLen {
			maxLen = n
			best = sel
		}
	})

	if best.Length() == 0 {
		return "", pressclip.Errorf(pressclip.ENOTFOUND, "no content container found")
	}

	return outerHTML(best)
}

func outerHTML(sel *goquery.Selection) (string, error) {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", err
	}
	return html, nil
}
