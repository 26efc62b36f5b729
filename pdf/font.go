package pdf

import (
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// fallbackFont is gofpdf's built-in latin font, always available.
const fallbackFont = "Helvetica"

// DefaultFontPaths is the ordered search list for a Unicode-capable
// typeface. The first readable file is registered; if none register
// cleanly the renderer degrades to the built-in latin font, which only
// affects non-Latin article text.
func DefaultFontPaths() []string {
	paths := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/local/share/fonts/DejaVuSans.ttf",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "fonts", "DejaVuSans.ttf"))
	}
	return paths
}

// resolveFont registers the first usable font from paths on the
// document and returns its family name and whether it is a UTF-8 font.
// Registration errors are cleared so a corrupt font file cannot poison
// the document; they demote to the next candidate.
func resolveFont(pdf *gofpdf.Fpdf, paths []string) (family string, utf8 bool) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		pdf.AddUTF8Font("DejaVu", "", path)
		if pdf.Ok() {
			return "DejaVu", true
		}
		pdf.ClearError()
	}
	return fallbackFont, false
}
