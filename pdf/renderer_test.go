package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/pressclip"
	"github.com/fwojciec/pressclip/mock"
	"github.com/fwojciec/pressclip/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtraction() *pressclip.Extraction {
	heading, _ := pressclip.Heading("Background", 2)
	para, _ := pressclip.Paragraph("A paragraph long enough to survive the content filter.")
	return &pressclip.Extraction{
		Metadata: pressclip.Metadata{
			Title:         "Test Article",
			Author:        "Jane Doe",
			PublishedDate: "2024-01-15T00:00:00Z",
		},
		Nodes: []pressclip.Node{heading, para},
	}
}

// pageCount counts page objects in the serialized document. The page
// tree dictionary also matches the prefix, so one match is discounted.
func pageCount(doc []byte) int {
	return bytes.Count(doc, []byte("/Type /Page")) - 1
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("produces a valid PDF", func(t *testing.T) {
		t.Parallel()
		r := pdf.NewRenderer()
		out, err := r.Render(context.Background(), testExtraction())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		assert.Equal(t, 1, pageCount(out))
	})

	t.Run("empty extraction still renders", func(t *testing.T) {
		t.Parallel()
		r := pdf.NewRenderer()
		out, err := r.Render(context.Background(), &pressclip.Extraction{})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("same input yields identical bytes", func(t *testing.T) {
		t.Parallel()
		r := pdf.NewRenderer()
		a, err := r.Render(context.Background(), testExtraction())
		require.NoError(t, err)
		b, err := r.Render(context.Background(), testExtraction())
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, pressclip.Fingerprint(testExtraction()), pressclip.Fingerprint(testExtraction()))
	})

	t.Run("long content spills onto additional pages", func(t *testing.T) {
		t.Parallel()
		ex := &pressclip.Extraction{Metadata: pressclip.Metadata{Title: "Long"}}
		para, _ := pressclip.Paragraph(strings.Repeat("words keep flowing down the page ", 20))
		for i := 0; i < 30; i++ {
			ex.Nodes = append(ex.Nodes, para)
		}
		r := pdf.NewRenderer(pdf.WithPageSize(300, 200))
		out, err := r.Render(context.Background(), ex)
		require.NoError(t, err)
		assert.Greater(t, pageCount(out), 1)
	})

	t.Run("embeds downloaded images", func(t *testing.T) {
		t.Parallel()
		img, _ := pressclip.Image("https://example.com/img/a.png", "a caption")
		ex := testExtraction()
		ex.Nodes = append(ex.Nodes, img)

		fetcher := &mock.ImageFetcher{
			DownloadAllFn: func(_ context.Context, urls []string, dir string) map[int]string {
				require.Equal(t, []string{"https://example.com/img/a.png"}, urls)
				path := filepath.Join(dir, "img_0000.png")
				writeTestPNG(t, path)
				return map[int]string{0: path}
			},
		}
		r := pdf.NewRenderer(pdf.WithImageFetcher(fetcher))
		out, err := r.Render(context.Background(), ex)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("undecodable image file is skipped", func(t *testing.T) {
		t.Parallel()
		img, _ := pressclip.Image("https://example.com/img/a.png", "")
		ex := testExtraction()
		ex.Nodes = append(ex.Nodes, img)

		fetcher := &mock.ImageFetcher{
			DownloadAllFn: func(_ context.Context, _ []string, dir string) map[int]string {
				path := filepath.Join(dir, "img_0000.png")
				require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))
				return map[int]string{0: path}
			},
		}
		r := pdf.NewRenderer(pdf.WithImageFetcher(fetcher))
		out, err := r.Render(context.Background(), ex)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})
}

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			m.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}
