package pressclip

import "strings"

// ComposeText serializes an extraction to linear plain text: metadata
// lines first (title, byline, date, tags, each only when present),
// then one entry per node with a blank line separating every node.
// Headings are upper-cased, paragraphs verbatim, images become a
// bracketed source-URL marker optionally followed by a caption line.
//
// ComposeText is a pure function of the extraction; it performs no I/O.
func ComposeText(ex *Extraction) string {
	var lines []string

	if ex.Metadata.Title != "" {
		lines = append(lines, ex.Metadata.Title, "")
	}

	var info []string
	if ex.Metadata.Author != "" {
		info = append(info, "By "+ex.Metadata.Author)
	}
	if ex.Metadata.PublishedDate != "" {
		info = append(info, "Published: "+ex.Metadata.PublishedDate)
	}
	if ex.Metadata.Tags != "" {
		info = append(info, "Tags: "+ex.Metadata.Tags)
	}
	if len(info) > 0 {
		lines = append(lines, info...)
		lines = append(lines, "")
	}

	for _, node := range ex.Nodes {
		switch node.Type {
		case NodeHeading:
			lines = append(lines, strings.ToUpper(node.Text))
		case NodeParagraph:
			lines = append(lines, node.Text)
		case NodeImage:
			lines = append(lines, "[Image: "+node.SourceURL+"]")
			if node.Caption != "" {
				lines = append(lines, "Caption: "+node.Caption)
			}
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
