package pressclip

// Parser turns raw HTML into domain values. It covers the three
// DOM-level operations the scrape pipeline needs: reading document
// metadata, picking a fallback content region when no Extractor
// result is available, and flattening a content subtree into an
// ordered node list.
type Parser interface {
	// ExtractMetadata reads article metadata from the full document.
	// Relative URLs are resolved against baseURL.
	ExtractMetadata(html string, baseURL string) (Metadata, error)

	// SelectContent picks the most plausible content region from the
	// full document and returns it as an HTML fragment.
	SelectContent(html string) (string, error)

	// BuildNodes flattens a content HTML fragment into nodes in
	// document order. Relative image URLs are resolved against baseURL.
	BuildNodes(contentHTML string, baseURL string) ([]Node, error)
}
