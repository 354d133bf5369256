package corpus

import (
	"slices"
	"strconv"
	"strings"

	"github.com/fwojciec/lawchat"
)

// Search returns the articles whose title, body or number contains term,
// ignoring case. Title and number matches come before body-only matches,
// each group in ascending article number. A blank term returns every
// article in canonical order.
func (idx *Index) Search(term string) []lawchat.Article {
	term = strings.TrimSpace(term)
	if term == "" {
		return slices.Collect(idx.Articles())
	}

	needle := strings.ToLower(term)
	var primary, secondary []lawchat.Article
	for a := range idx.Articles() {
		switch {
		case strings.Contains(strings.ToLower(a.Title), needle),
			strings.Contains(strconv.Itoa(a.Number), needle):
			primary = append(primary, a)
		case strings.Contains(strings.ToLower(a.Body), needle):
			secondary = append(secondary, a)
		}
	}

	byNumber := func(a, b lawchat.Article) int { return a.Number - b.Number }
	slices.SortStableFunc(primary, byNumber)
	slices.SortStableFunc(secondary, byNumber)

	results := make([]lawchat.Article, 0, len(primary)+len(secondary))
	results = append(results, primary...)
	return append(results, secondary...)
}
