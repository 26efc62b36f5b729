package pressclip

import "context"

// Renderer serializes an extraction into a paginated document artifact.
type Renderer interface {
	// Render paginates the extraction's metadata and node stream onto
	// fixed-size pages and returns the finished artifact bytes. The
	// context bounds any per-image network work performed during
	// rendering; individual image failures are absorbed, not returned.
	Render(ctx context.Context, ex *Extraction) ([]byte, error)
}

// ImageFetcher downloads remote images to local files for embedding.
type ImageFetcher interface {
	// DownloadAll fetches each URL into dir and returns a map from
	// input index to local file path. Downloads may run concurrently;
	// failed downloads are simply absent from the result.
	DownloadAll(ctx context.Context, urls []string, dir string) map[int]string
}

// Converter converts the selected content subtree's HTML to Markdown.
type Converter interface {
	// Convert transforms clean content HTML (e.g. from an Extractor)
	// into its Markdown representation.
	Convert(html string) (string, error)
}
