package etree_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseTree(t *testing.T) {
	t.Parallel()

	t.Run("parses parts chapters and articles", func(t *testing.T) {
		t.Parallel()

		input := `<?xml version="1.0" encoding="UTF-8"?>
<constitution>
  <part title="Part 1: Preliminary">
    <article number="1" title="Constitution as the fundamental law">
      This Constitution is the fundamental law of Nepal.
    </article>
  </part>
  <part title="Part 3: Fundamental Rights and Duties">
    <chapter title="Freedoms">
      <article number="17" title="Right to freedom">
        <p>No person shall be deprived of his or her <em>personal liberty</em>.</p>
        <p>Every citizen shall have freedom of opinion and expression.</p>
      </article>
      <article number="18" title="Right to equality">
        <p>All citizens shall be equal before law.</p>
      </article>
    </chapter>
  </part>
</constitution>`

		tree, err := etree.NewParser().ParseTree(strings.NewReader(input))

		require.NoError(t, err)
		want := &lawchat.DocumentTree{Parts: []lawchat.Part{
			{
				Title: "Part 1: Preliminary",
				Chapters: []lawchat.Chapter{{Articles: []lawchat.Article{
					{Number: 1, Title: "Constitution as the fundamental law", Body: "This Constitution is the fundamental law of Nepal."},
				}}},
			},
			{
				Title: "Part 3: Fundamental Rights and Duties",
				Chapters: []lawchat.Chapter{{
					Title: "Freedoms",
					Articles: []lawchat.Article{
						{Number: 17, Title: "Right to freedom", Body: "No person shall be deprived of his or her personal liberty.\n\nEvery citizen shall have freedom of opinion and expression."},
						{Number: 18, Title: "Right to equality", Body: "All citizens shall be equal before law."},
					},
				}},
			},
		}}
		assert.Equal(t, want, tree)
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewParser().ParseTree(strings.NewReader(`<constitution><part>`))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})

	t.Run("rejects wrong root element", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewParser().ParseTree(strings.NewReader(`<urlset></urlset>`))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})

	t.Run("rejects non-numeric article number", func(t *testing.T) {
		t.Parallel()

		input := `<constitution><part title="P"><article number="seventeen" title="T">x</article></part></constitution>`

		_, err := etree.NewParser().ParseTree(strings.NewReader(input))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
		assert.Contains(t, lawchat.ErrorMessage(err), "seventeen")
	})

	t.Run("rejects duplicate article numbers", func(t *testing.T) {
		t.Parallel()

		input := `<constitution><part title="P">
<article number="3" title="A">a</article>
<article number="3" title="B">b</article>
</part></constitution>`

		_, err := etree.NewParser().ParseTree(strings.NewReader(input))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})

	t.Run("empty constitution yields empty tree", func(t *testing.T) {
		t.Parallel()

		tree, err := etree.NewParser().ParseTree(strings.NewReader(`<constitution/>`))

		require.NoError(t, err)
		assert.Empty(t, tree.Parts)
	})
}
