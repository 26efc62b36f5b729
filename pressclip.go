// Package pressclip converts a web page into a structured article and
// renders it as a paginated PDF or plain text. It fetches a URL (with a
// headless-browser fallback for script-gated pages), extracts metadata
// and a flat ordered stream of content nodes, and serializes that
// stream through independent output formats.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// readability/, pdf/).
package pressclip
