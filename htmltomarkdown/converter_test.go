package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pressclip"
	"github.com/fwojciec/pressclip/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pressclip.Converter at compile time.
var _ pressclip.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><p>Opening paragraph of the article.</p><h2>Subtitle</h2>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Opening paragraph of the article.")
	})

	t.Run("converts images with alt text", func(t *testing.T) {
		t.Parallel()

		html := `<p>Before the image.</p><img src="https://x.com/img/a.jpg" alt="skyline">`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "![skyline](https://x.com/img/a.jpg)")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, pressclip.EINVALID, pressclip.ErrorCode(err))
	})
}
