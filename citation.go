package lawchat

import (
	"iter"
	"sort"
)

// DefaultCitationLimit is the number of citations attached to an answer
// when no explicit limit is configured.
const DefaultCitationLimit = 3

// Citation is an excerpt of an article offered as supporting evidence for an
// answer.
type Citation struct {
	ArticleNumber int     `json:"articleNumber"`
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt"`
	Score         float64 `json:"score"`
}

// Ranker selects the articles that best support a question.
type Ranker interface {
	// Rank returns at most k citations from articles ordered by descending
	// score, ties broken by ascending article number. Identical inputs
	// always produce identical output.
	Rank(query string, articles iter.Seq[Article], k int) []Citation
}

// SortCitations orders citations by descending score, then ascending
// article number.
func SortCitations(cs []Citation) {
	sort.SliceStable(cs, func(i, j int) bool {
		return citationLess(cs[i], cs[j])
	})
}

// CitationsOrdered reports whether cs satisfies the citation ordering.
func CitationsOrdered(cs []Citation) bool {
	for i := 1; i < len(cs); i++ {
		if citationLess(cs[i], cs[i-1]) {
			return false
		}
		if cs[i].Score == cs[i-1].Score && cs[i].ArticleNumber == cs[i-1].ArticleNumber {
			return false
		}
	}
	return true
}

func citationLess(a, b Citation) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.ArticleNumber < b.ArticleNumber
}
