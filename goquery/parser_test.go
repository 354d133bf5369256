package goquery_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/goquery"
	"github.com/fwojciec/lawchat/htmltomarkdown"
	"github.com/fwojciec/lawchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><body>
<nav><a href="/">Home</a></nav>
<main>
  <h2>Part 1: Preliminary</h2>
  <article data-number="1">
    <h4>Constitution as the fundamental law</h4>
    <p>This Constitution is the fundamental law of Nepal.</p>
  </article>
  <h2>Part 3: Fundamental Rights and Duties</h2>
  <h3>Freedoms</h3>
  <article data-number="17">
    <h4>Right to freedom</h4>
    <p>Every citizen shall have the following freedoms:</p>
    <ol><li>freedom of opinion and expression,</li><li>freedom to assemble peaceably.</li></ol>
  </article>
  <h3>Equality</h3>
  <article data-number="18">
    <h4>Right to equality</h4>
    <p>All citizens shall be <strong>equal</strong> before law.</p>
  </article>
</main>
</body></html>`

func TestParser_ParseTree(t *testing.T) {
	t.Parallel()

	t.Run("builds hierarchy from headings", func(t *testing.T) {
		t.Parallel()

		tree, err := goquery.NewParser(nil).ParseTree(strings.NewReader(page))

		require.NoError(t, err)
		require.Len(t, tree.Parts, 2)
		assert.Equal(t, "Part 1: Preliminary", tree.Parts[0].Title)
		require.Len(t, tree.Parts[0].Chapters, 1)
		assert.Empty(t, tree.Parts[0].Chapters[0].Title)
		assert.Equal(t, lawchat.Article{
			Number: 1,
			Title:  "Constitution as the fundamental law",
			Body:   "This Constitution is the fundamental law of Nepal.",
		}, tree.Parts[0].Chapters[0].Articles[0])

		require.Len(t, tree.Parts[1].Chapters, 2)
		assert.Equal(t, "Freedoms", tree.Parts[1].Chapters[0].Title)
		assert.Equal(t, 17, tree.Parts[1].Chapters[0].Articles[0].Number)
		assert.Equal(t, "Equality", tree.Parts[1].Chapters[1].Title)
		assert.Equal(t, "All citizens shall be equal before law.", tree.Parts[1].Chapters[1].Articles[0].Body)
	})

	t.Run("converts bodies to markdown", func(t *testing.T) {
		t.Parallel()

		tree, err := goquery.NewParser(htmltomarkdown.NewConverter()).ParseTree(strings.NewReader(page))

		require.NoError(t, err)
		freedom := tree.Parts[1].Chapters[0].Articles[0]
		assert.Equal(t, "Right to freedom", freedom.Title)
		assert.NotContains(t, freedom.Body, "Right to freedom")
		assert.Contains(t, freedom.Body, "1. freedom of opinion and expression,")
		assert.Contains(t, tree.Parts[1].Chapters[1].Articles[0].Body, "**equal**")
	})

	t.Run("passes article html without title to converter", func(t *testing.T) {
		t.Parallel()

		var seen []string
		conv := &mock.Converter{ConvertFn: func(html string) (string, error) {
			seen = append(seen, html)
			return "converted", nil
		}}

		tree, err := goquery.NewParser(conv).ParseTree(strings.NewReader(page))

		require.NoError(t, err)
		require.Len(t, seen, 3)
		for _, html := range seen {
			assert.NotContains(t, html, "<h4>")
		}
		assert.Equal(t, "converted", tree.Parts[0].Chapters[0].Articles[0].Body)
	})

	t.Run("propagates converter errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		conv := &mock.Converter{ConvertFn: func(string) (string, error) { return "", boom }}

		_, err := goquery.NewParser(conv).ParseTree(strings.NewReader(page))

		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects article before any part", func(t *testing.T) {
		t.Parallel()

		input := `<article data-number="5"><h4>Orphan</h4><p>x</p></article>`

		_, err := goquery.NewParser(nil).ParseTree(strings.NewReader(input))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})

	t.Run("rejects invalid article number", func(t *testing.T) {
		t.Parallel()

		input := `<h2>Part</h2><article data-number="17a"><h4>T</h4></article>`

		_, err := goquery.NewParser(nil).ParseTree(strings.NewReader(input))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})

	t.Run("rejects article without title", func(t *testing.T) {
		t.Parallel()

		input := `<h2>Part</h2><article data-number="3"><p>No heading.</p></article>`

		_, err := goquery.NewParser(nil).ParseTree(strings.NewReader(input))

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
	})
}
