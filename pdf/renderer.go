// Package pdf renders an extraction onto fixed-size pages using gofpdf:
// greedy line wrapping against measured string widths, explicit
// page-break decisions, and embedded article images downloaded into a
// per-render temporary directory.
package pdf

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"os"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fwojciec/pressclip"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Renderer implements pressclip.Renderer at compile time.
var _ pressclip.Renderer = (*Renderer)(nil)

// Layout constants, in points.
const (
	// DefaultMargin is the page margin on all four sides.
	DefaultMargin = 28.0

	// leading is added to the font size for each line's vertical advance.
	leading = 2.0

	// Block gaps following each rendered block.
	headingGap   = 6.0
	paragraphGap = 8.0
	imageGap     = 6.0

	// captionIndent offsets caption lines under their image.
	captionIndent = 4.0
)

// Font sizes per block kind, in points.
const (
	sizeTitle    = 18.0
	sizeHeading1 = 14.0
	sizeHeading  = 12.0
	sizeBody     = 11.0
	sizeCaption  = 9.0
	sizeMeta     = 9.0
)

// Renderer paginates extractions into PDF bytes. A Renderer is
// stateless across calls; all mutable layout state lives in a
// per-render cursor and is destroyed when Render returns.
type Renderer struct {
	images    pressclip.ImageFetcher
	logger    *slog.Logger
	fontPaths []string
	margin    float64
	pageW     float64
	pageH     float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithImageFetcher sets the downloader used to materialize article
// images. Without one, images are skipped entirely.
func WithImageFetcher(f pressclip.ImageFetcher) Option {
	return func(r *Renderer) {
		r.images = f
	}
}

// WithLogger sets the logger for degradation events (font fallback,
// dropped images).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithFontPaths overrides the Unicode font search list.
func WithFontPaths(paths []string) Option {
	return func(r *Renderer) {
		r.fontPaths = paths
	}
}

// WithPageSize sets custom page dimensions in points.
// Defaults to A4 (595.28 x 841.89) if not specified.
func WithPageSize(w, h float64) Option {
	return func(r *Renderer) {
		r.pageW, r.pageH = w, h
	}
}

// WithMargin sets the page margin in points.
// Defaults to DefaultMargin (28) if not specified.
func WithMargin(m float64) Option {
	return func(r *Renderer) {
		r.margin = m
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger: slog.Default(),
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fontPaths == nil {
		r.fontPaths = DefaultFontPaths()
	}
	return r
}

// Render paginates the extraction and returns the PDF bytes. Individual
// image failures are absorbed; the only errors returned are document
// assembly faults.
func (r *Renderer) Render(ctx context.Context, ex *pressclip.Extraction) ([]byte, error) {
	var doc *gofpdf.Fpdf
	if r.pageW > 0 && r.pageH > 0 {
		doc = gofpdf.NewCustom(&gofpdf.InitType{
			OrientationStr: "P",
			UnitStr:        "pt",
			Size:           gofpdf.SizeType{Wd: r.pageW, Ht: r.pageH},
		})
	} else {
		doc = gofpdf.New("P", "pt", "A4", "")
	}

	// Pinned so identical input yields identical bytes.
	doc.SetCreationDate(time.Unix(0, 0).UTC())

	family, utf8 := resolveFont(doc, r.fontPaths)
	if !utf8 {
		r.logger.Info("unicode font unavailable, using built-in latin font", "fallback", family)
	}
	translate := func(s string) string { return s }
	if !utf8 {
		translate = doc.UnicodeTranslatorFromDescriptor("")
	}

	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	cur := &cursor{
		doc:       doc,
		family:    family,
		translate: translate,
		margin:    r.margin,
		pageW:     pageW,
		pageH:     pageH,
		y:         r.margin,
	}

	images := r.downloadImages(ctx, ex)
	if images != nil {
		defer images.cleanup()
	}

	r.writeFrontMatter(cur, ex.Metadata)
	r.writeNodes(cur, ex.Nodes, images)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFrontMatter draws the title and the metadata line.
func (r *Renderer) writeFrontMatter(cur *cursor, meta pressclip.Metadata) {
	if meta.Title != "" {
		cur.writeBlock(meta.Title, sizeTitle, 0)
		cur.gap(headingGap)
	}

	var info []string
	if meta.Author != "" {
		info = append(info, "By "+meta.Author)
	}
	if meta.PublishedDate != "" {
		info = append(info, meta.PublishedDate)
	}
	if meta.Tags != "" {
		info = append(info, "Tags: "+meta.Tags)
	}
	if len(info) > 0 {
		line := info[0]
		for _, part := range info[1:] {
			line += "  |  " + part
		}
		cur.writeBlock(line, sizeMeta, 0)
		cur.gap(headingGap)
	}
}

// writeNodes lays out the node stream in order.
func (r *Renderer) writeNodes(cur *cursor, nodes []pressclip.Node, images *imageSet) {
	for i, node := range nodes {
		switch node.Type {
		case pressclip.NodeHeading:
			size := sizeHeading
			if node.Level == 1 {
				size = sizeHeading1
			}
			cur.writeBlock(node.Text, size, 0)
			cur.gap(headingGap)
		case pressclip.NodeParagraph:
			cur.writeBlock(node.Text, sizeBody, 0)
			cur.gap(paragraphGap)
		case pressclip.NodeImage:
			r.writeImage(cur, node, images.path(i))
		}
	}
}

// writeImage embeds one downloaded image with its caption. Any failure
// (never downloaded, undecodable) drops the image and moves on.
func (r *Renderer) writeImage(cur *cursor, node pressclip.Node, path string) {
	if path == "" {
		r.logger.Debug("image skipped, no local file", "url", node.SourceURL)
		return
	}

	w, h, ok := pixelSize(path)
	if !ok {
		r.logger.Debug("image skipped, undecodable", "url", node.SourceURL)
		return
	}

	if !cur.drawImage(path, w, h) {
		r.logger.Debug("image skipped, embed failed", "url", node.SourceURL)
		return
	}
	cur.gap(imageGap)

	if node.Caption != "" {
		cur.writeBlock(node.Caption, sizeCaption, captionIndent)
		cur.gap(imageGap)
	}
}

// pixelSize decodes just the image header. At 72 dpi a pixel maps to
// one point, so these double as the image's natural point dimensions.
func pixelSize(path string) (w, h float64, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, false
	}
	return float64(cfg.Width), float64(cfg.Height), true
}
