package mock

import (
	"iter"

	"github.com/fwojciec/lawchat"
)

var _ lawchat.Ranker = (*Ranker)(nil)

// Ranker is a mock implementation of lawchat.Ranker.
type Ranker struct {
	RankFn func(query string, articles iter.Seq[lawchat.Article], k int) []lawchat.Citation
}

func (r *Ranker) Rank(query string, articles iter.Seq[lawchat.Article], k int) []lawchat.Citation {
	return r.RankFn(query, articles, k)
}
