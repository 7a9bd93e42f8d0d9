package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	service := NewService()

	t.Run("renders headings and paragraphs", func(t *testing.T) {
		html, err := service.ToHTMLSanitized("## Dades\n\nParagraph text.")
		require.NoError(t, err)

		assert.Contains(t, html, "<h2")
		assert.Contains(t, html, "Dades")
		assert.Contains(t, html, "Paragraph text.")
	})

	t.Run("strips script tags", func(t *testing.T) {
		html, err := service.ToHTMLSanitized("Hello <script>alert('x')</script> world")
		require.NoError(t, err)

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "Hello")
	})

	t.Run("keeps links but drops event handlers", func(t *testing.T) {
		html, err := service.ToHTMLSanitized(`[site](https://example.com) <a href="#" onclick="evil()">x</a>`)
		require.NoError(t, err)

		assert.Contains(t, html, `https://example.com`)
		assert.NotContains(t, html, "onclick")
	})
}

func TestSanitize(t *testing.T) {
	service := NewService()

	assert.NotContains(t, service.Sanitize(`<img src=x onerror=alert(1)>text`), "onerror")
}
