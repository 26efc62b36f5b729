package pressclip

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the article title as judged by the extraction
	// algorithm. When non-empty it overrides the metadata title.
	Title string

	// ContentHTML is the main content subtree as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts the main content subtree from HTML, removing
// boilerplate. Implementations are readability-style algorithms; a
// failing or absent Extractor triggers the density-heuristic fallback
// selection, never an error surfaced to the caller.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The pageURL is used to resolve relative references.
	Extract(html string, pageURL string) (*ExtractResult, error)
}
