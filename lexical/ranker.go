// Package lexical implements citation ranking by lexical overlap between a
// question and article text.
package lexical

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/lawchat"
)

// Weights applied per matched query term.
const (
	TitleWeight = 1.0
	BodyWeight  = 0.6
)

// DefaultExcerptLen is the maximum excerpt length in runes.
const DefaultExcerptLen = 160

// Ensure Ranker implements lawchat.Ranker at compile time.
var _ lawchat.Ranker = (*Ranker)(nil)

// Ranker scores articles by the share of query terms they contain. A term
// found in the title counts TitleWeight, a term found only in the body
// counts BodyWeight. The score is the weighted hit count divided by the
// number of query terms, so it lies in [0,1].
type Ranker struct {
	// Articles scoring at or below MinScore are never cited.
	MinScore float64

	// ExcerptLen bounds excerpt length in runes.
	ExcerptLen int
}

// NewRanker creates a Ranker with default settings.
func NewRanker() *Ranker {
	return &Ranker{ExcerptLen: DefaultExcerptLen}
}

// Rank returns the top k citations for query.
func (r *Ranker) Rank(query string, articles iter.Seq[lawchat.Article], k int) []lawchat.Citation {
	citations := []lawchat.Citation{}
	if k <= 0 || articles == nil {
		return citations
	}
	terms := Terms(query)
	if len(terms) == 0 {
		return citations
	}

	for a := range articles {
		score := Score(terms, a)
		if score <= r.MinScore {
			continue
		}
		citations = append(citations, lawchat.Citation{
			ArticleNumber: a.Number,
			Title:         a.Title,
			Excerpt:       r.excerpt(terms, a.Body),
			Score:         score,
		})
	}

	lawchat.SortCitations(citations)
	if len(citations) > k {
		citations = citations[:k]
	}
	return citations
}

// Score returns the relevance of a to the given query terms.
func Score(terms []string, a lawchat.Article) float64 {
	if len(terms) == 0 {
		return 0
	}
	title := termSet(a.Title)
	body := termSet(a.Body)

	var titleHits, bodyHits int
	for _, t := range terms {
		switch {
		case title[t]:
			titleHits++
		case body[t]:
			bodyHits++
		}
	}
	return (float64(titleHits)*TitleWeight + float64(bodyHits)*BodyWeight) / float64(len(terms))
}

// excerpt returns the body sentence containing the most query terms,
// truncated to the excerpt bound. Bodies within the bound are returned whole.
func (r *Ranker) excerpt(terms []string, body string) string {
	limit := r.ExcerptLen
	if limit <= 0 {
		limit = DefaultExcerptLen
	}
	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) <= limit {
		return body
	}

	best, bestHits := "", -1
	for _, s := range sentences(body) {
		set := termSet(s)
		hits := 0
		for _, t := range terms {
			if set[t] {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = s, hits
		}
	}
	return truncate(best, limit)
}

// truncate shortens s to at most limit runes, cutting at a word boundary
// where possible and marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit-1])
	if i := strings.LastIndexByte(cut, ' '); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "…"
}
