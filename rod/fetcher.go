// Package rod provides a browser-based implementation of pressclip.Fetcher
// for pages that require JavaScript execution to produce their content.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pressclip"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Rendered fetch defaults.
const (
	// DefaultFetchTimeout bounds navigation and load for one fetch.
	DefaultFetchTimeout = 20 * time.Second
	// DefaultIdleGrace bounds the secondary network-idle wait after load.
	DefaultIdleGrace = 2 * time.Second
	// requestIdleWindow is how long the network must stay quiet to
	// count as idle.
	requestIdleWindow = 300 * time.Millisecond
)

// Ensure Fetcher implements pressclip.Fetcher at compile time.
var _ pressclip.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome automation.
//
// Each Fetch call launches its own browser and tears it down before
// returning, success or failure. The fallback path is rare by design,
// so per-call launch latency is an acceptable price for never leaking
// a browser process past the request that needed it.
type Fetcher struct {
	timeout   time.Duration
	idleGrace time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the navigation/load timeout for each fetch.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithIdleGrace sets the secondary network-idle wait after page load.
// Defaults to DefaultIdleGrace (2s) if not specified.
func WithIdleGrace(d time.Duration) Option {
	return func(f *Fetcher) {
		f.idleGrace = d
	}
}

// NewFetcher creates a new browser-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		idleGrace: DefaultIdleGrace,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch launches a headless browser, navigates to the URL, waits for
// load plus a bounded network-idle window, and returns the rendered
// HTML and final URL. Browser and launcher are always torn down before
// Fetch returns.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", url, err
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return "", url, fmt.Errorf("launching browser: %w", err)
	}
	defer lnchr.Kill()

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", url, fmt.Errorf("connecting to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", url, err
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(navCtx)

	if err := page.Navigate(url); err != nil {
		return "", url, err
	}
	if err := page.WaitLoad(); err != nil {
		return "", url, err
	}

	// Secondary idle wait. Pages that never go network-idle (analytics
	// beacons, long polling) just run out the grace period; that is not
	// a fetch failure.
	wait := page.Timeout(f.idleGrace).WaitRequestIdle(requestIdleWindow, nil, nil, nil)
	wait()

	html, err := page.HTML()
	if err != nil {
		return "", url, err
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return html, finalURL, nil
}

// Close releases resources. Each Fetch owns its own browser lifecycle,
// so there is nothing held between calls.
func (f *Fetcher) Close() error {
	return nil
}
