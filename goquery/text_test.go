package goquery_test

import (
	"testing"

	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("puts block elements on separate lines", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert(`<p>Hello</p><p>World</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Hello\nWorld", text)
	})

	t.Run("drops scripts styles and head", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><style>body{}</style></head>
<body><script>alert('x')</script><p>visible</p><noscript>enable js</noscript></body></html>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "visible", text)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert("<div>  lots   of\t\tspace  </div>")

		require.NoError(t, err)
		assert.Equal(t, "lots of space", text)
	})

	t.Run("handles line breaks and inline markup", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert(`<p>one<br>two <b>bold</b></p>`)

		require.NoError(t, err)
		assert.Equal(t, "one\ntwo bold", text)
	})

	t.Run("separates table cells", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert(`<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>`)

		require.NoError(t, err)
		assert.Equal(t, "a b\nc d", text)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewTextConverter().Convert(" \n ")

		require.Error(t, err)
		assert.Equal(t, doctext.EINVALID, doctext.ErrorCode(err))
	})
}
