package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pressclip"
)

// ImageSourceAttrs is the ordered list of attributes probed for an
// image's source, first match wins. Lazy-loading themes stash the real
// URL in data attributes and leave src as a placeholder or absent.
var ImageSourceAttrs = []string{"src", "data-src", "data-original"}

// headingLevels maps heading tag names to node levels.
var headingLevels = map[string]int{"h1": 1, "h2": 2, "h3": 3, "h4": 4}

// nodeSelector matches every element that can produce a content node,
// in document order.
const nodeSelector = "h1, h2, h3, h4, p, blockquote, li, img"

// paragraphKinds matches paragraph-producing elements; used to flatten
// nesting (a blockquote wrapping list items yields one node per item,
// not a concatenated blob for the blockquote itself).
const paragraphKinds = "p, blockquote, li"

// BuildNodes walks the selected content subtree depth-first in document
// order and emits the flat node stream. Image sources are resolved to
// absolute form against baseURL; captions come from a sibling
// figcaption, then the alt attribute.
func BuildNodes(contentHTML string, baseURL string) ([]pressclip.Node, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, pressclip.Errorf(pressclip.EINVALID, "failed to parse content HTML: %v", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var nodes []pressclip.Node
	doc.Find(nodeSelector).Each(func(_ int, sel *goquery.Selection) {
		name := goquery.NodeName(sel)

		if level, ok := headingLevels[name]; ok {
			if node, ok := pressclip.Heading(sel.Text(), level); ok {
				nodes = append(nodes, node)
			}
			return
		}

		switch name {
		case "p", "blockquote", "li":
			// Defer to nested paragraph-producing elements.
			if sel.Find(paragraphKinds).Length() > 0 {
				return
			}
			if node, ok := pressclip.Paragraph(sel.Text()); ok {
				nodes = append(nodes, node)
			}
		case "img":
			src := imageSource(sel)
			if src == "" {
				return
			}
			if node, ok := pressclip.Image(resolveURL(base, src), caption(sel)); ok {
				nodes = append(nodes, node)
			}
		}
	})

	return nodes, nil
}

// imageSource probes ImageSourceAttrs in order and returns the first
// non-empty value.
func imageSource(sel *goquery.Selection) string {
	for _, attr := range ImageSourceAttrs {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return ""
}

// caption resolves an image's caption: a figcaption under the image's
// parent first, the alt attribute second, empty otherwise.
func caption(sel *goquery.Selection) string {
	if fig := sel.Parent().Find("figcaption").First(); fig.Length() > 0 {
		if v := strings.TrimSpace(fig.Text()); v != "" {
			return v
		}
	}
	return strings.TrimSpace(sel.AttrOr("alt", ""))
}
