package mock

import (
	"context"
	"io"
	"iter"

	"github.com/fwojciec/lawchat"
)

var _ lawchat.ArticleIndex = (*ArticleIndex)(nil)

// ArticleIndex is a mock implementation of lawchat.ArticleIndex.
type ArticleIndex struct {
	FindArticleByNumberFn func(number int) (lawchat.Article, error)
	ArticlesFn            func() iter.Seq[lawchat.Article]
	SiblingsFn            func(a lawchat.Article) []lawchat.Article
}

func (i *ArticleIndex) FindArticleByNumber(number int) (lawchat.Article, error) {
	return i.FindArticleByNumberFn(number)
}

func (i *ArticleIndex) Articles() iter.Seq[lawchat.Article] {
	return i.ArticlesFn()
}

func (i *ArticleIndex) Siblings(a lawchat.Article) []lawchat.Article {
	return i.SiblingsFn(a)
}

var _ lawchat.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of lawchat.Searcher.
type Searcher struct {
	SearchFn func(term string) []lawchat.Article
}

func (s *Searcher) Search(term string) []lawchat.Article {
	return s.SearchFn(term)
}

var _ lawchat.TreeParser = (*TreeParser)(nil)

// TreeParser is a mock implementation of lawchat.TreeParser.
type TreeParser struct {
	ParseTreeFn func(r io.Reader) (*lawchat.DocumentTree, error)
}

func (p *TreeParser) ParseTree(r io.Reader) (*lawchat.DocumentTree, error) {
	return p.ParseTreeFn(r)
}

var _ lawchat.TreeStore = (*TreeStore)(nil)

// TreeStore is a mock implementation of lawchat.TreeStore.
type TreeStore struct {
	SaveTreeFn func(ctx context.Context, tree *lawchat.DocumentTree) error
	LoadTreeFn func(ctx context.Context) (*lawchat.DocumentTree, error)
}

func (s *TreeStore) SaveTree(ctx context.Context, tree *lawchat.DocumentTree) error {
	return s.SaveTreeFn(ctx, tree)
}

func (s *TreeStore) LoadTree(ctx context.Context) (*lawchat.DocumentTree, error) {
	return s.LoadTreeFn(ctx)
}
