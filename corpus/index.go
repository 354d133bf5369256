package corpus

import (
	"encoding/hex"
	"iter"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lawchat"
)

// Compile-time interface verification.
var (
	_ lawchat.ArticleIndex = (*Index)(nil)
	_ lawchat.Searcher     = (*Index)(nil)
)

// Index serves lookups over a fixed document tree. It is never mutated after
// construction and is safe for concurrent use.
type Index struct {
	tree     *lawchat.DocumentTree
	articles []lawchat.Article // canonical order, Part and Chapter stamped
	byNumber map[int]int       // article number -> position in articles
	hash     string
}

// NewIndex validates tree and builds an index over it.
func NewIndex(tree *lawchat.DocumentTree) (*Index, error) {
	if tree == nil {
		return nil, lawchat.Errorf(lawchat.EINVALID, "document tree required")
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}

	idx := &Index{
		tree:     tree,
		byNumber: make(map[int]int),
	}
	digest := xxhash.New()
	for _, p := range tree.Parts {
		for _, c := range p.Chapters {
			for _, a := range c.Articles {
				a.Part = p.Title
				a.Chapter = c.Title
				idx.byNumber[a.Number] = len(idx.articles)
				idx.articles = append(idx.articles, a)

				// Field separators keep distinct trees from colliding.
				for _, s := range []string{a.Part, a.Chapter, strconv.Itoa(a.Number), a.Title, a.Body} {
					_, _ = digest.WriteString(s)
					_, _ = digest.Write([]byte{0})
				}
			}
		}
	}
	idx.hash = hex.EncodeToString(digest.Sum(nil))

	return idx, nil
}

// Tree returns the document tree the index was built from.
func (idx *Index) Tree() *lawchat.DocumentTree {
	return idx.tree
}

// Len returns the number of articles.
func (idx *Index) Len() int {
	return len(idx.articles)
}

// Fingerprint returns a stable hash of the indexed content.
func (idx *Index) Fingerprint() string {
	return idx.hash
}

// FindArticleByNumber returns the article with the given number.
func (idx *Index) FindArticleByNumber(number int) (lawchat.Article, error) {
	i, ok := idx.byNumber[number]
	if !ok {
		return lawchat.Article{}, lawchat.Errorf(lawchat.ENOTFOUND, "article %d not found", number)
	}
	return idx.articles[i], nil
}

// Articles returns every article in canonical order.
func (idx *Index) Articles() iter.Seq[lawchat.Article] {
	return func(yield func(lawchat.Article) bool) {
		for _, a := range idx.articles {
			if !yield(a) {
				return
			}
		}
	}
}

// Siblings returns the other articles in a's part.
func (idx *Index) Siblings(a lawchat.Article) []lawchat.Article {
	part := a.Part
	if i, ok := idx.byNumber[a.Number]; ok && part == "" {
		part = idx.articles[i].Part
	}

	siblings := []lawchat.Article{}
	for _, other := range idx.articles {
		if other.Part == part && other.Number != a.Number {
			siblings = append(siblings, other)
		}
	}
	return siblings
}
