// Package goquery parses constitution corpora published as HTML.
//
// Parts are <h2> headings, chapters are <h3> headings, and each article is
// an <article data-number="N"> element whose <h4> holds the title. The rest
// of the article element is the body, converted to Markdown when a
// Converter is configured and reduced to plain text otherwise.
package goquery

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lawchat"
)

// Ensure Parser implements lawchat.TreeParser at compile time.
var _ lawchat.TreeParser = (*Parser)(nil)

// Parser implements lawchat.TreeParser for HTML input.
type Parser struct {
	Converter lawchat.Converter
}

// NewParser creates a new Parser. conv may be nil.
func NewParser(conv lawchat.Converter) *Parser {
	return &Parser{Converter: conv}
}

// ParseTree reads an HTML corpus from r.
func (p *Parser) ParseTree(r io.Reader) (*lawchat.DocumentTree, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, lawchat.Errorf(lawchat.EINVALID, "failed to parse HTML: %v", err)
	}

	tree := &lawchat.DocumentTree{}
	var walkErr error
	doc.Find("h2, h3, article[data-number]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		switch goquery.NodeName(sel) {
		case "h2":
			tree.Parts = append(tree.Parts, lawchat.Part{Title: clean(sel.Text())})
		case "h3":
			if len(tree.Parts) == 0 {
				walkErr = lawchat.Errorf(lawchat.EINVALID, "chapter %q appears before any part", clean(sel.Text()))
				return false
			}
			part := &tree.Parts[len(tree.Parts)-1]
			part.Chapters = append(part.Chapters, lawchat.Chapter{Title: clean(sel.Text())})
		case "article":
			a, err := p.parseArticle(sel)
			if err != nil {
				walkErr = err
				return false
			}
			if len(tree.Parts) == 0 {
				walkErr = lawchat.Errorf(lawchat.EINVALID, "article %d appears before any part", a.Number)
				return false
			}
			part := &tree.Parts[len(tree.Parts)-1]
			if len(part.Chapters) == 0 {
				part.Chapters = append(part.Chapters, lawchat.Chapter{})
			}
			chapter := &part.Chapters[len(part.Chapters)-1]
			chapter.Articles = append(chapter.Articles, a)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

func (p *Parser) parseArticle(sel *goquery.Selection) (lawchat.Article, error) {
	raw, _ := sel.Attr("data-number")
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return lawchat.Article{}, lawchat.Errorf(lawchat.EINVALID, "invalid article number %q", raw)
	}

	a := lawchat.Article{
		Number: n,
		Title:  clean(sel.Find("h4").First().Text()),
	}

	content := sel.Clone()
	content.Find("h4").First().Remove()

	if p.Converter == nil {
		a.Body = clean(content.Text())
		return a, nil
	}

	html, err := content.Html()
	if err != nil {
		return lawchat.Article{}, err
	}
	if strings.TrimSpace(html) == "" {
		return a, nil
	}
	a.Body, err = p.Converter.Convert(html)
	if err != nil {
		return lawchat.Article{}, err
	}
	return a, nil
}

// clean folds runs of whitespace to single spaces.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
