package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/pressclip"
	"golang.org/x/sync/errgroup"
)

// Image downloader defaults.
const (
	// DefaultImageWorkers bounds concurrent image downloads per request.
	DefaultImageWorkers = 4
	// DefaultImageTimeout bounds each individual image download.
	DefaultImageTimeout = 20 * time.Second
	// defaultImageRPS limits download rate per host.
	defaultImageRPS = 4.0
)

// Ensure ImageDownloader implements pressclip.ImageFetcher at compile time.
var _ pressclip.ImageFetcher = (*ImageDownloader)(nil)

// ImageDownloader fetches article images into a local directory so the
// renderer can embed them. Downloads run concurrently up to a bounded
// worker count, but results are index-keyed so callers can still draw
// in node-stream order.
type ImageDownloader struct {
	client  *http.Client
	limiter *HostLimiter
	workers int
	timeout time.Duration
}

// ImageOption configures an ImageDownloader.
type ImageOption func(*ImageDownloader)

// WithImageWorkers sets the concurrent download limit.
// Defaults to DefaultImageWorkers (4) if not specified.
func WithImageWorkers(n int) ImageOption {
	return func(d *ImageDownloader) {
		d.workers = n
	}
}

// WithImageTimeout sets the per-image download timeout.
// Defaults to DefaultImageTimeout (20s) if not specified.
func WithImageTimeout(t time.Duration) ImageOption {
	return func(d *ImageDownloader) {
		d.timeout = t
	}
}

// WithImageClient sets the HTTP client used for downloads. The client's
// lifetime is owned by the caller (the request, not the process).
func WithImageClient(c *http.Client) ImageOption {
	return func(d *ImageDownloader) {
		d.client = c
	}
}

// NewImageDownloader creates a new ImageDownloader.
func NewImageDownloader(opts ...ImageOption) *ImageDownloader {
	d := &ImageDownloader{
		limiter: NewHostLimiter(defaultImageRPS),
		workers: DefaultImageWorkers,
		timeout: DefaultImageTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.client == nil {
		d.client = &http.Client{}
	}

	return d
}

// DownloadAll fetches each URL into dir and returns a map from input
// index to local file path. Individual failures (network error, bad
// status, canceled context) drop that index from the result; they are
// never reported as errors because a missing image is a non-fatal
// degradation of the rendered document.
//
// Files are named by input index (img_0003.png), so names cannot
// collide even when distinct URLs share a basename.
func (d *ImageDownloader) DownloadAll(ctx context.Context, urls []string, dir string) map[int]string {
	paths := make(map[int]string, len(urls))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, rawURL := range urls {
		g.Go(func() error {
			path, err := d.download(ctx, rawURL, dir, i)
			if err != nil {
				// Absorbed: the renderer skips this image.
				return nil
			}
			mu.Lock()
			paths[i] = path
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only flushes the group.
	_ = g.Wait()

	return paths
}

// download fetches a single image into dir under an index-based name.
func (d *ImageDownloader) download(ctx context.Context, rawURL, dir string, index int) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if err := d.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	path := filepath.Join(dir, fmt.Sprintf("img_%04d%s", index, extensionFor(resp.Header.Get("Content-Type"))))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	return path, nil
}

// extensionFor maps a content type to a file extension, defaulting to
// .jpg for anything unrecognized.
func extensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	default:
		return ".jpg"
	}
}
