package lawchat

import "context"

// AnswerRequest is the input to an answer-generation backend.
type AnswerRequest struct {
	Query     string
	History   []Message
	Language  Language
	Citations []Citation // Supporting articles already selected for the query
}

// Answerer generates a natural-language answer to a legal question.
type Answerer interface {
	Answer(ctx context.Context, req AnswerRequest) (string, error)
}

// Query is a question submitted to a Responder.
type Query struct {
	Text     string
	History  []Message
	Language Language
}

// Answer is the resolved response to a query.
type Answer struct {
	Text      string
	Citations []Citation

	// Degraded is set when the backend failed and Text is a fallback
	// apology. Failure holds the error code (EUNAVAILABLE or ETIMEOUT).
	Degraded bool
	Failure  string
}

// Responder resolves a query into an answer with citations.
type Responder interface {
	// Resolve answers q. Returns EINVALID if q.Text is blank. Backend
	// failures are recovered into a degraded answer rather than returned.
	Resolve(ctx context.Context, q Query) (*Answer, error)
}
