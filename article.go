package pressclip

// Metadata holds article metadata. All fields are optional and default
// to empty. Each field is populated from document metadata tags first,
// DOM heuristics second; the first successful source wins and values
// are never merged across sources.
type Metadata struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"publishedDate"`
	Tags          string `json:"tags"`
	LeadImageURL  string `json:"leadImageUrl"`
	CanonicalURL  string `json:"canonicalUrl"`
}

// Extraction is the result of scraping one URL: article metadata plus
// the ordered node stream of the main content. ContentHTML holds the
// selected content subtree for serializers that work on markup rather
// than nodes (e.g. the markdown converter).
//
// An Extraction is produced once per scrape request, is immutable after
// construction, and is consumed independently by each serializer. It is
// never cached across requests.
type Extraction struct {
	Metadata    Metadata `json:"metadata"`
	Nodes       []Node   `json:"nodes"`
	ContentHTML string   `json:"-"`
}

// Empty reports whether the extraction carries no metadata and no
// content. An empty extraction is the pipeline's failure signal; the
// pipeline itself never returns errors.
func (ex *Extraction) Empty() bool {
	return ex.Metadata == (Metadata{}) && len(ex.Nodes) == 0
}
