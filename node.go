package pressclip

import "strings"

// NodeType discriminates the kinds of content nodes.
type NodeType string

// Content node types.
const (
	NodeHeading   NodeType = "heading"
	NodeParagraph NodeType = "paragraph"
	NodeImage     NodeType = "image"
)

// MinParagraphLen is the minimum trimmed length for paragraph text.
// Shorter fragments are treated as noise (menu labels, share buttons)
// caught by a loose selector and are never emitted.
const MinParagraphLen = 10

// Node is one typed content unit in an article's node stream. Exactly
// one shape is populated depending on Type:
//
//   - NodeHeading:   Text and Level (1-4)
//   - NodeParagraph: Text
//   - NodeImage:     SourceURL (absolute) and optional Caption
//
// Node order equals the in-document traversal order of the selected
// content subtree.
type Node struct {
	Type      NodeType `json:"type"`
	Text      string   `json:"text,omitempty"`
	Level     int      `json:"level,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	Caption   string   `json:"caption,omitempty"`
}

// Heading returns a heading node, or false if the trimmed text is empty.
// Levels outside 1-4 are clamped.
func Heading(text string, level int) (Node, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Node{}, false
	}
	if level < 1 {
		level = 1
	} else if level > 4 {
		level = 4
	}
	return Node{Type: NodeHeading, Text: text, Level: level}, true
}

// Paragraph returns a paragraph node, or false if the trimmed text is
// not longer than MinParagraphLen.
func Paragraph(text string) (Node, bool) {
	text = strings.TrimSpace(text)
	if len(text) <= MinParagraphLen {
		return Node{}, false
	}
	return Node{Type: NodeParagraph, Text: text}, true
}

// Image returns an image node, or false if the source URL is empty.
func Image(sourceURL, caption string) (Node, bool) {
	if sourceURL == "" {
		return Node{}, false
	}
	return Node{Type: NodeImage, SourceURL: sourceURL, Caption: strings.TrimSpace(caption)}, true
}
