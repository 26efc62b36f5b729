package pdf

import "github.com/jung-kurt/gofpdf"

// cursor is the per-render layout state: the position on the current
// page and the knowledge of when to break. It exists for exactly one
// Render call.
type cursor struct {
	doc       *gofpdf.Fpdf
	family    string
	translate func(string) string
	margin    float64
	pageW     float64
	pageH     float64
	y         float64
}

func (c *cursor) usableWidth() float64 {
	return c.pageW - 2*c.margin
}

func (c *cursor) breakPage() {
	c.doc.AddPage()
	c.y = c.margin
}

// writeBlock wraps text at the given size and writes its lines, moving
// to a new page before any line that would cross the bottom margin.
// A line is never split across pages.
func (c *cursor) writeBlock(text string, size float64, indent float64) {
	c.doc.SetFont(c.family, "", size)

	maxW := c.usableWidth() - indent
	measure := func(s string) float64 {
		return c.doc.GetStringWidth(c.translate(s))
	}

	for _, line := range WrapText(text, maxW, measure) {
		if c.y+size+leading > c.pageH-c.margin {
			c.breakPage()
		}
		c.doc.Text(c.margin+indent, c.y+size, c.translate(line))
		c.y += size + leading
	}
}

// gap advances the cursor past a block without drawing. A gap that runs
// past the bottom margin is absorbed by the next block's break check.
func (c *cursor) gap(g float64) {
	c.y += g
}

// drawImage embeds the image scaled to the usable width (never above
// its natural size) and reports whether it was drawn. An image is never
// split across pages; one taller than a full page is scaled to fit.
func (c *cursor) drawImage(path string, w, h float64) bool {
	dispW, dispH := FitWidth(w, h, c.usableWidth())
	if maxH := c.pageH - 2*c.margin; dispH > maxH {
		dispW, dispH = dispW*maxH/dispH, maxH
	}

	if c.y+dispH > c.pageH-c.margin {
		c.breakPage()
	}

	opts := gofpdf.ImageOptions{ReadDpi: false}
	c.doc.RegisterImageOptions(path, opts)
	if !c.doc.Ok() {
		// A bad image must not poison the rest of the document.
		c.doc.ClearError()
		return false
	}

	c.doc.ImageOptions(path, c.margin, c.y, dispW, dispH, false, opts, 0, "")
	if !c.doc.Ok() {
		c.doc.ClearError()
		return false
	}

	c.y += dispH
	return true
}
