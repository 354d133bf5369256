// Package etree parses constitution corpora serialized as XML.
//
// The expected document shape is:
//
//	<constitution>
//	  <part title="Part 3: Fundamental Rights and Duties">
//	    <chapter title="...">
//	      <article number="17" title="Right to freedom">
//	        <p>Every citizen shall have ...</p>
//	      </article>
//	    </chapter>
//	  </part>
//	</constitution>
//
// Articles may appear directly under a part, in which case they belong to
// an untitled chapter. An article body is either its text content or its
// <p> children joined by blank lines.
package etree

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/lawchat"
)

// Ensure Parser implements lawchat.TreeParser at compile time.
var _ lawchat.TreeParser = (*Parser)(nil)

// Parser implements lawchat.TreeParser for XML input.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseTree reads an XML corpus from r.
func (p *Parser) ParseTree(r io.Reader) (*lawchat.DocumentTree, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, lawchat.Errorf(lawchat.EINVALID, "parsing corpus XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "constitution" {
		return nil, lawchat.Errorf(lawchat.EINVALID, "corpus XML must have a <constitution> root")
	}

	tree := &lawchat.DocumentTree{}
	for _, partEl := range root.SelectElements("part") {
		part := lawchat.Part{Title: strings.TrimSpace(partEl.SelectAttrValue("title", ""))}

		if loose := partEl.SelectElements("article"); len(loose) > 0 {
			articles, err := parseArticles(loose)
			if err != nil {
				return nil, err
			}
			part.Chapters = append(part.Chapters, lawchat.Chapter{Articles: articles})
		}

		for _, chapterEl := range partEl.SelectElements("chapter") {
			articles, err := parseArticles(chapterEl.SelectElements("article"))
			if err != nil {
				return nil, err
			}
			part.Chapters = append(part.Chapters, lawchat.Chapter{
				Title:    strings.TrimSpace(chapterEl.SelectAttrValue("title", "")),
				Articles: articles,
			})
		}

		tree.Parts = append(tree.Parts, part)
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

func parseArticles(els []*etree.Element) ([]lawchat.Article, error) {
	articles := make([]lawchat.Article, 0, len(els))
	for _, el := range els {
		raw := el.SelectAttrValue("number", "")
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, lawchat.Errorf(lawchat.EINVALID, "invalid article number %q", raw)
		}
		articles = append(articles, lawchat.Article{
			Number: n,
			Title:  strings.TrimSpace(el.SelectAttrValue("title", "")),
			Body:   body(el),
		})
	}
	return articles, nil
}

func body(el *etree.Element) string {
	paras := el.SelectElements("p")
	if len(paras) == 0 {
		return collapse(text(el))
	}
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		if s := collapse(text(p)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// text returns the character data of el and all its descendants.
func text(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			sb.WriteString(text(t))
		}
	}
	return sb.String()
}

// collapse folds runs of whitespace, including XML indentation, to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
