package pressclip

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML together
	// with the final URL after redirects. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, finalURL string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
