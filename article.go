package lawchat

import (
	"context"
	"io"
	"iter"
)

// Article is a single numbered provision of the constitution.
// Articles are immutable once loaded into an index.
type Article struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Part    string `json:"part,omitempty"`
	Chapter string `json:"chapter,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Number <= 0 {
		return Errorf(EINVALID, "article number must be positive, got %d", a.Number)
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article %d title required", a.Number)
	}
	return nil
}

// Chapter groups articles within a part.
type Chapter struct {
	Title    string    `json:"title"`
	Articles []Article `json:"articles"`
}

// Part is the top level of the document hierarchy.
type Part struct {
	Title    string    `json:"title"`
	Chapters []Chapter `json:"chapters"`
}

// DocumentTree is the hierarchical corpus: part -> chapter -> articles.
// Slice order is the canonical display order.
type DocumentTree struct {
	Parts []Part `json:"parts"`
}

// Validate returns an error if any article is invalid or if an article
// number appears more than once.
func (t *DocumentTree) Validate() error {
	seen := make(map[int]bool)
	for _, p := range t.Parts {
		if p.Title == "" {
			return Errorf(EINVALID, "part title required")
		}
		for _, c := range p.Chapters {
			for _, a := range c.Articles {
				if err := a.Validate(); err != nil {
					return err
				}
				if seen[a.Number] {
					return Errorf(EINVALID, "duplicate article number %d", a.Number)
				}
				seen[a.Number] = true
			}
		}
	}
	return nil
}

// Merge appends the parts of other to t. Parts and chapters whose titles
// already exist are merged in place so that canonical order is preserved.
func (t *DocumentTree) Merge(other *DocumentTree) {
	if other == nil {
		return
	}
	for _, op := range other.Parts {
		pi := -1
		for i := range t.Parts {
			if t.Parts[i].Title == op.Title {
				pi = i
				break
			}
		}
		if pi < 0 {
			t.Parts = append(t.Parts, op)
			continue
		}
		for _, oc := range op.Chapters {
			ci := -1
			for i := range t.Parts[pi].Chapters {
				if t.Parts[pi].Chapters[i].Title == oc.Title {
					ci = i
					break
				}
			}
			if ci < 0 {
				t.Parts[pi].Chapters = append(t.Parts[pi].Chapters, oc)
				continue
			}
			t.Parts[pi].Chapters[ci].Articles = append(t.Parts[pi].Chapters[ci].Articles, oc.Articles...)
		}
	}
}

// ArticleIndex provides lookup over a fixed corpus.
type ArticleIndex interface {
	// FindArticleByNumber returns the article with the given number.
	// Returns ENOTFOUND if no such article exists.
	FindArticleByNumber(number int) (Article, error)

	// Articles returns every article in canonical order. The sequence is
	// lazy and may be iterated any number of times.
	Articles() iter.Seq[Article]

	// Siblings returns the articles sharing a's part, excluding a itself,
	// in canonical order.
	Siblings(a Article) []Article
}

// Searcher filters and orders articles against a search term.
type Searcher interface {
	// Search returns the articles matching term. An empty or blank term
	// returns every article in canonical order.
	Search(term string) []Article
}

// TreeParser builds a document tree from a serialized corpus.
type TreeParser interface {
	ParseTree(r io.Reader) (*DocumentTree, error)
}

// TreeStore persists a snapshot of the corpus.
type TreeStore interface {
	// SaveTree replaces the stored corpus with tree.
	SaveTree(ctx context.Context, tree *DocumentTree) error

	// LoadTree returns the stored corpus.
	// Returns ENOTFOUND if no corpus has been saved.
	LoadTree(ctx context.Context) (*DocumentTree, error)
}
