package scrape

import (
	"net/url"
	"strings"
)

const (
	// minStaticBytes is the smallest trimmed static document treated as
	// a full server-side render. Anything shorter is assumed to be an
	// application shell that needs a browser.
	minStaticBytes = 800

	// minRenderedBytes is the smallest trimmed rendered document worth
	// adopting over the static one.
	minRenderedBytes = 200
)

// DefaultScriptHosts lists sites known to serve useless markup without
// JavaScript. A matching host always goes through the rendered fetcher.
var DefaultScriptHosts = []string{
	"tesla.com",
	"twitter.com",
	"instagram.com",
	"facebook.com",
	"youtube.com",
}

// NeedsRendering reports whether statically fetched markup looks like
// it needs a JavaScript-capable fetch: it is empty or tiny, it carries
// a noscript marker, or the page host is on the script-heavy list.
func NeedsRendering(html string, pageURL string, hosts []string) bool {
	trimmed := strings.TrimSpace(html)
	if len(trimmed) < minStaticBytes {
		return true
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "<noscript") || strings.Contains(lower, "javascript required") {
		return true
	}

	return scriptHeavyHost(pageURL, hosts)
}

func scriptHeavyHost(pageURL string, hosts []string) bool {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
