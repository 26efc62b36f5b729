package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/pressclip"
)

// Scraper produces a structured extraction for a URL.
type Scraper interface {
	Scrape(ctx context.Context, url string) *pressclip.Extraction
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper   Scraper
	Renderer  pressclip.Renderer
	Converter pressclip.Converter
}

// ClipCmd fetches one article and writes the requested renditions.
// When no format flag is set, PDF and plain text are written.
type ClipCmd struct {
	URL      string
	Out      string
	PDF      bool
	Text     bool
	Markdown bool
}

// Run executes the clip operation. A failure to write one rendition
// does not stop the others; all failures are reported together.
func (c *ClipCmd) Run(deps *Dependencies) error {
	ex := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if ex.Empty() {
		return fmt.Errorf("nothing could be extracted from %s", c.URL)
	}

	base := c.Out
	if base == "" {
		base = deriveBasename(c.URL)
	}

	pdf, text, markdown := c.PDF, c.Text, c.Markdown
	if !pdf && !text && !markdown {
		pdf, text = true, true
	}

	var errs []error
	if pdf {
		errs = append(errs, c.writePDF(deps, ex, base+".pdf"))
	}
	if text {
		errs = append(errs, c.writeText(deps, ex, base+".txt"))
	}
	if markdown {
		errs = append(errs, c.writeMarkdown(deps, ex, base+".md"))
	}
	return errors.Join(errs...)
}

func (c *ClipCmd) writePDF(deps *Dependencies, ex *pressclip.Extraction, path string) error {
	out, err := deps.Renderer.Render(deps.Ctx, ex)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return c.writeFile(deps, path, out)
}

func (c *ClipCmd) writeText(deps *Dependencies, ex *pressclip.Extraction, path string) error {
	return c.writeFile(deps, path, []byte(pressclip.ComposeText(ex)+"\n"))
}

func (c *ClipCmd) writeMarkdown(deps *Dependencies, ex *pressclip.Extraction, path string) error {
	md, err := deps.Converter.Convert(ex.ContentHTML)
	if err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	var b strings.Builder
	if ex.Metadata.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", ex.Metadata.Title)
	}
	b.WriteString(strings.TrimSpace(md))
	b.WriteString("\n")
	return c.writeFile(deps, path, []byte(b.String()))
}

func (c *ClipCmd) writeFile(deps *Dependencies, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(deps.Stdout, "wrote %s (%d bytes)\n", path, len(data))
	return nil
}

// deriveBasename builds a filesystem-safe basename from the page URL,
// e.g. https://example.com/news/1 becomes example.com-news-1.
func deriveBasename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "article"
	}
	slug := strings.ToLower(u.Hostname() + u.Path)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-.")
	if slug == "" {
		return "article"
	}
	return slug
}
