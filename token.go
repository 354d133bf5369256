package lawchat

import "context"

// TokenCounter counts model tokens in text. Answer backends use it to keep
// conversation history within a prompt budget.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
