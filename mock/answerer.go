package mock

import (
	"context"

	"github.com/fwojciec/lawchat"
)

var _ lawchat.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of lawchat.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, req lawchat.AnswerRequest) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, req lawchat.AnswerRequest) (string, error) {
	return a.AnswerFn(ctx, req)
}

var _ lawchat.Responder = (*Responder)(nil)

// Responder is a mock implementation of lawchat.Responder.
type Responder struct {
	ResolveFn func(ctx context.Context, q lawchat.Query) (*lawchat.Answer, error)
}

func (r *Responder) Resolve(ctx context.Context, q lawchat.Query) (*lawchat.Answer, error) {
	return r.ResolveFn(ctx, q)
}
