package pdf

import (
	"context"
	"os"

	"github.com/fwojciec/pressclip"
)

// imageSet maps node indexes to downloaded local files for one render.
// The backing directory is scoped to the render and removed on every
// exit path.
type imageSet struct {
	dir   string
	paths map[int]string
}

// path returns the local file for the node at index i, or empty when
// the image was never downloaded. Safe on a nil set.
func (s *imageSet) path(i int) string {
	if s == nil {
		return ""
	}
	return s.paths[i]
}

func (s *imageSet) cleanup() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

// downloadImages fetches all image nodes concurrently ahead of layout,
// so drawing can stay strictly sequential in node-stream order.
// Returns nil when no fetcher is configured or there is nothing to
// download; both mean every image is skipped.
func (r *Renderer) downloadImages(ctx context.Context, ex *pressclip.Extraction) *imageSet {
	if r.images == nil {
		return nil
	}

	var indexes []int
	var urls []string
	for i, node := range ex.Nodes {
		if node.Type == pressclip.NodeImage {
			indexes = append(indexes, i)
			urls = append(urls, node.SourceURL)
		}
	}
	if len(urls) == 0 {
		return nil
	}

	dir, err := os.MkdirTemp("", "pressclip-imgs-")
	if err != nil {
		r.logger.Warn("image directory unavailable, skipping images", "err", err)
		return nil
	}

	set := &imageSet{dir: dir, paths: make(map[int]string, len(urls))}
	for i, path := range r.images.DownloadAll(ctx, urls, dir) {
		set.paths[indexes[i]] = path
	}
	return set
}
