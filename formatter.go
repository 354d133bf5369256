package lawchat

import (
	"context"
	"fmt"
	"strings"
)

// FormatCitations formats citations for display or LLM context.
// Citations are separated by blank lines.
func FormatCitations(cs []Citation) string {
	if len(cs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		header := fmt.Sprintf("Article %d", c.ArticleNumber)
		if c.Title != "" {
			header += ": " + c.Title
		}
		parts = append(parts, header+"\n"+c.Excerpt)
	}

	return strings.Join(parts, "\n\n")
}

// TrimHistory returns the most recent messages whose combined token count
// fits within budget, in chronological order. A nil counter or a
// non-positive budget returns history unchanged.
func TrimHistory(ctx context.Context, counter TokenCounter, history []Message, budget int) ([]Message, error) {
	if counter == nil || budget <= 0 {
		return history, nil
	}

	used := 0
	start := len(history)
	for i := len(history) - 1; i >= 0; i-- {
		n, err := counter.CountTokens(ctx, history[i].Content)
		if err != nil {
			return nil, err
		}
		if used+n > budget {
			break
		}
		used += n
		start = i
	}

	return history[start:], nil
}
