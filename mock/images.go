package mock

import (
	"context"

	"github.com/fwojciec/pressclip"
)

var _ pressclip.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of pressclip.ImageFetcher.
type ImageFetcher struct {
	DownloadAllFn func(ctx context.Context, urls []string, dir string) map[int]string
}

func (f *ImageFetcher) DownloadAll(ctx context.Context, urls []string, dir string) map[int]string {
	return f.DownloadAllFn(ctx, urls, dir)
}
