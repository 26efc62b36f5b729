// Package scrape orchestrates the page-to-article pipeline. It
// coordinates static and rendered fetching, metadata extraction, and
// content structuring, degrading step by step instead of failing: a
// page that yields nothing produces an empty extraction, never an
// error.
package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/pressclip"
	"github.com/google/uuid"
)

// Scraper turns a URL into a structured extraction.
type Scraper struct {
	// Static fetches pages over plain HTTP. Required.
	Static pressclip.Fetcher

	// Rendered fetches pages through a headless browser. Optional;
	// when nil, pages that would need rendering fall back to whatever
	// the static fetch produced.
	Rendered pressclip.Fetcher

	// Engine extracts the main content subtree. Optional; when nil or
	// failing, content selection falls back to the Parser's density
	// heuristic.
	Engine pressclip.Extractor

	// Parser handles metadata, fallback content selection, and node
	// building. Required.
	Parser pressclip.Parser

	// ScriptHosts overrides DefaultScriptHosts when non-nil.
	ScriptHosts []string

	Logger *slog.Logger
}

// Scrape fetches and structures the page at rawURL. It never returns
// an error: every failure is logged and the pipeline degrades, down to
// an empty extraction when no usable markup could be obtained.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) *pressclip.Extraction {
	logger := s.logger().With(
		slog.String("request_id", uuid.NewString()),
		slog.String("url", rawURL),
	)

	html, finalURL := s.fetch(ctx, rawURL, logger)
	if strings.TrimSpace(html) == "" {
		logger.Warn("no usable markup, returning empty extraction")
		return &pressclip.Extraction{}
	}

	ex := &pressclip.Extraction{}

	meta, err := s.Parser.ExtractMetadata(html, finalURL)
	if err != nil {
		logger.Warn("metadata extraction failed", slog.Any("error", err))
	} else {
		ex.Metadata = meta
	}

	contentHTML, title := s.selectContent(html, finalURL, logger)
	if title != "" {
		ex.Metadata.Title = title
	}
	ex.ContentHTML = contentHTML

	if strings.TrimSpace(contentHTML) != "" {
		nodes, err := s.Parser.BuildNodes(contentHTML, finalURL)
		if err != nil {
			logger.Warn("node building failed", slog.Any("error", err))
		} else {
			ex.Nodes = nodes
		}
	}

	logger.Debug("scrape finished",
		slog.Int("nodes", len(ex.Nodes)),
		slog.String("fingerprint", pressclip.Fingerprint(ex)),
		slog.String("final_url", finalURL),
	)
	return ex
}

// fetch obtains markup for rawURL, going through the rendered fetcher
// when the static result looks JavaScript-dependent. It returns the
// markup and the URL it was served from.
func (s *Scraper) fetch(ctx context.Context, rawURL string, logger *slog.Logger) (string, string) {
	html, finalURL, err := s.Static.Fetch(ctx, rawURL)
	if err != nil {
		logger.Warn("static fetch failed", slog.Any("error", err))
		html = ""
	}
	if finalURL == "" {
		finalURL = rawURL
	}

	hosts := s.ScriptHosts
	if hosts == nil {
		hosts = DefaultScriptHosts
	}
	if !NeedsRendering(html, finalURL, hosts) {
		return html, finalURL
	}

	if s.Rendered == nil {
		logger.Debug("page needs rendering but no rendered fetcher is configured")
		return html, finalURL
	}

	rendered, renderedURL, err := s.Rendered.Fetch(ctx, rawURL)
	switch {
	case err != nil:
		logger.Warn("rendered fetch failed, keeping static markup", slog.Any("error", err))
	case len(strings.TrimSpace(rendered)) > minRenderedBytes:
		logger.Debug("adopted rendered markup", slog.Int("bytes", len(rendered)))
		html = rendered
		if renderedURL != "" {
			finalURL = renderedURL
		}
	default:
		logger.Debug("rendered markup too small, keeping static markup",
			slog.Int("bytes", len(rendered)))
	}
	return html, finalURL
}

// selectContent picks the article content subtree. The content engine
// runs first; its title, when present, takes precedence over metadata.
// On engine absence or failure the Parser's heuristic selection is
// used instead.
func (s *Scraper) selectContent(html string, finalURL string, logger *slog.Logger) (string, string) {
	if s.Engine != nil {
		res, err := s.Engine.Extract(html, finalURL)
		switch {
		case err != nil:
			logger.Warn("content engine failed, falling back to heuristic selection",
				slog.Any("error", err))
		case strings.TrimSpace(res.ContentHTML) != "":
			return res.ContentHTML, res.Title
		default:
			logger.Debug("content engine returned no content, falling back to heuristic selection")
		}
	} else {
		logger.Debug("no content engine configured, using heuristic selection")
	}

	content, err := s.Parser.SelectContent(html)
	if err != nil {
		logger.Warn("heuristic content selection failed", slog.Any("error", err))
		return "", ""
	}
	return content, ""
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
