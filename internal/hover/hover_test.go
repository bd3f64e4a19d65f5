package hover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/figembed/internal/embed"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	text := "import x from 'y'\n// @figma embed:abc123#45:67 header\n"
	// '@' sits at offset 21, the payload at 28.

	t.Run("OnPayload", func(t *testing.T) {
		t.Parallel()
		h, ok := Lookup(text, 30)
		require.True(t, ok)

		want, _ := embed.URL("embed:abc123#45:67")
		assert.Equal(t, want, h.URL)
		assert.Equal(t, "embed:abc123#45:67", h.Payload)
		assert.Equal(t, 28, h.Range.Start)
		assert.Equal(t, 46, h.Range.End)
		assert.Equal(t, "embed:abc123#45:67", text[h.Range.Start:h.Range.End])
		assert.Equal(t, 2, h.Range.StartLine)
		assert.Equal(t, 11, h.Range.StartColumn)
		assert.Equal(t, 2, h.Range.EndLine)
		assert.Equal(t, 29, h.Range.EndColumn)
	})

	t.Run("OnPrefix", func(t *testing.T) {
		t.Parallel()
		h, ok := Lookup(text, 22)
		require.True(t, ok)
		assert.Equal(t, 28, h.Range.Start, "range excludes the prefix")
	})

	t.Run("OutsideMarker", func(t *testing.T) {
		t.Parallel()
		_, ok := Lookup(text, 5)
		assert.False(t, ok)

		_, ok = Lookup(text, 50)
		assert.False(t, ok)
	})

	t.Run("InvalidPayload", func(t *testing.T) {
		t.Parallel()
		_, ok := Lookup("// @figma embed:abc#1", 10)
		assert.False(t, ok)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		t.Parallel()
		_, ok := Lookup("", 0)
		assert.False(t, ok)
	})
}

func TestLookupLineCol(t *testing.T) {
	t.Parallel()

	text := "a\n  @figma embed:Q1\n"

	h, ok := LookupLineCol(text, 2, 5)
	require.True(t, ok)
	assert.Equal(t, "embed:Q1", h.Payload)

	_, ok = LookupLineCol(text, 1, 1)
	assert.False(t, ok)

	_, ok = LookupLineCol(text, 9, 1)
	assert.False(t, ok)
}

func TestHover_Tooltip(t *testing.T) {
	t.Parallel()

	h, ok := Lookup("@figma embed:abc", 0)
	require.True(t, ok)

	assert.Equal(t, "[Figma Embed URL]("+h.URL+")", h.Markdown())

	html, err := h.HTML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<p><a href=\"https://www.figma.com/embed?embed_host=share&amp;url="))
	assert.Contains(t, html, ">Figma Embed URL</a></p>")
}
