package slog

import (
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/lawchat"
)

// Ensure LoggingSearcher implements lawchat.Searcher.
var _ lawchat.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   lawchat.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next lawchat.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the result count.
func (s *LoggingSearcher) Search(term string) (results []lawchat.Article) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"term", term,
			"count", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(term)
}

// Ensure LoggingRanker implements lawchat.Ranker.
var _ lawchat.Ranker = (*LoggingRanker)(nil)

// LoggingRanker wraps a Ranker with debug logging.
type LoggingRanker struct {
	next   lawchat.Ranker
	logger *slog.Logger
}

// NewLoggingRanker creates a new LoggingRanker.
func NewLoggingRanker(next lawchat.Ranker, logger *slog.Logger) *LoggingRanker {
	return &LoggingRanker{next: next, logger: logger}
}

// Rank delegates to the wrapped ranker and logs the selected articles.
func (r *LoggingRanker) Rank(query string, articles iter.Seq[lawchat.Article], k int) (citations []lawchat.Citation) {
	defer func(begin time.Time) {
		numbers := make([]int, len(citations))
		for i, c := range citations {
			numbers[i] = c.ArticleNumber
		}
		r.logger.Debug("rank",
			"k", k,
			"articles", numbers,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Rank(query, articles, k)
}
