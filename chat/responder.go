package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/lawchat"
)

// DefaultTimeout bounds a single answer-generation call.
const DefaultTimeout = 30 * time.Second

// Ensure Responder implements lawchat.Responder at compile time.
var _ lawchat.Responder = (*Responder)(nil)

// Responder resolves queries by ranking citations over the index and asking
// the answer backend, falling back to an apology when the backend fails.
type Responder struct {
	Index    lawchat.ArticleIndex
	Ranker   lawchat.Ranker
	Answerer lawchat.Answerer

	// Limit is the maximum number of citations per answer.
	Limit int

	// Timeout bounds the backend call. Zero disables the bound.
	Timeout time.Duration
}

// NewResponder creates a Responder with the default citation limit and
// timeout.
func NewResponder(index lawchat.ArticleIndex, ranker lawchat.Ranker, answerer lawchat.Answerer) *Responder {
	return &Responder{
		Index:    index,
		Ranker:   ranker,
		Answerer: answerer,
		Limit:    lawchat.DefaultCitationLimit,
		Timeout:  DefaultTimeout,
	}
}

// Resolve answers q.
func (r *Responder) Resolve(ctx context.Context, q lawchat.Query) (*lawchat.Answer, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return nil, lawchat.Errorf(lawchat.EINVALID, "query required")
	}
	lang := q.Language
	if !lang.Valid() {
		lang = lawchat.LanguageEnglish
	}

	citations := r.Ranker.Rank(text, r.Index.Articles(), r.Limit)

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	answer, err := r.Answerer.Answer(ctx, lawchat.AnswerRequest{
		Query:     text,
		History:   q.History,
		Language:  lang,
		Citations: citations,
	})
	if err == nil && strings.TrimSpace(answer) == "" {
		err = lawchat.Errorf(lawchat.EUNAVAILABLE, "empty answer")
	}
	if err != nil {
		return Fallback(lang, err), nil
	}

	return &lawchat.Answer{Text: answer, Citations: citations}, nil
}

// Fallback returns the degraded answer for a backend failure.
func Fallback(lang lawchat.Language, err error) *lawchat.Answer {
	failure := lawchat.EUNAVAILABLE
	if errors.Is(err, context.DeadlineExceeded) || lawchat.ErrorCode(err) == lawchat.ETIMEOUT {
		failure = lawchat.ETIMEOUT
	}
	return &lawchat.Answer{
		Text:      Apology(lang),
		Citations: []lawchat.Citation{},
		Degraded:  true,
		Failure:   failure,
	}
}
