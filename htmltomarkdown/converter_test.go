package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraph to plain text", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Every person shall have the right to live with dignity.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Every person shall have the right to live with dignity.", md)
	})

	t.Run("converts clause lists", func(t *testing.T) {
		t.Parallel()

		html := `<p>Every citizen shall have the following freedoms:</p>
<ol><li>freedom of opinion and expression,</li><li>freedom to assemble peaceably,</li></ol>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. freedom of opinion and expression,")
		assert.Contains(t, md, "2. freedom to assemble peaceably,")
	})

	t.Run("keeps emphasis", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>No person shall be <strong>deprived</strong> of <em>personal liberty</em>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**deprived**")
		assert.Contains(t, md, "*personal liberty*")
	})

	t.Run("converts schedules as tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Province</th><th>Headquarters</th></tr></thead>
<tbody><tr><td>Koshi</td><td>Biratnagar</td></tr><tr><td>Gandaki</td><td>Pokhara</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Province")
		assert.Contains(t, md, "Biratnagar")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n\n<div><p>Text.</p></div>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Text.", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})
}
