package readability_test

import (
	"testing"

	"github.com/fwojciec/pressclip"
	"github.com/fwojciec/pressclip/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("", "https://example.com/article")

	require.Error(t, err)
	assert.Equal(t, pressclip.EINVALID, pressclip.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Breaking Story</title></head>
<body><article><p>Content of the breaking story goes here.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html, "https://example.com/news/1")

	require.NoError(t, err)
	assert.Equal(t, "Breaking Story", result.Title)
}

func TestExtractor_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html, "https://example.com/news/1")

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "main article content")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_ResolvesRelativeImageURLs(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Enough paragraph text surrounding the figure to count as an article body.</p>
<img src="/img/a.jpg" alt="a picture">
<p>More paragraph text following the figure so extraction keeps the block.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html, "https://x.com/news/1")

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "https://x.com/img/a.jpg")
}

func TestExtractor_PreservesHeadings(t *testing.T) {
	t.Parallel()

	// Note: go-readability may demote h1 to h2, but heading text is preserved
	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Main Heading</h1>
<p>Some intro text here, long enough to be kept by the algorithm.</p>
<h2>Subheading Level Two</h2>
<p>More content under the subheading, also long enough to keep.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html, "https://example.com/news/1")

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Subheading Level Two")
}
