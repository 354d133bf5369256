package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/lawchat"
	"github.com/google/uuid"
)

// Session owns the state of one conversation. Queries are resolved on
// background goroutines; when a query is superseded by a newer submit its
// context is canceled and its eventual answer is discarded.
type Session struct {
	// ID identifies the session in logs.
	ID string

	Responder lawchat.Responder
	Logger    *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSession creates an idle session in lang.
func NewSession(responder lawchat.Responder, lang lawchat.Language) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Responder: responder,
		Logger:    slog.New(slog.DiscardHandler),
		Now:       time.Now,
		state:     NewState(lang),
	}
}

// Pending tracks one submitted query until its answer settles.
type Pending struct {
	ID RequestID

	done  chan struct{}
	stale bool
}

// Done is closed once the query has settled, whether its answer was
// appended or discarded as stale.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the query settles or ctx is done.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stale reports whether the answer was discarded because a newer query
// superseded it. Only meaningful after Done is closed.
func (p *Pending) Stale() bool {
	<-p.done
	return p.stale
}

// State returns a snapshot of the conversation.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the message history.
func (s *Session) Messages() []lawchat.Message {
	return s.State().Messages()
}

// Greet seeds an empty conversation with the greeting for its language.
func (s *Session) Greet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.Greet(Greeting(s.state.Language()), s.Now())
}

// SetLanguage switches the conversation language.
func (s *Session) SetLanguage(lang lawchat.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.SetLanguage(lang)
}

// SetInput replaces the draft input text without submitting it.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.SetInput(text)
}

// Submit appends text as a user message and resolves it in the background.
// Blank text is ignored and Submit returns nil. Submitting while another
// query is pending supersedes it.
func (s *Session) Submit(ctx context.Context, text string) *Pending {
	s.mu.Lock()
	history := s.state.Messages()
	next, id, ok := s.state.Submit(text, s.Now())
	if !ok {
		s.mu.Unlock()
		return nil
	}
	s.state = next
	if s.cancel != nil {
		s.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	msgs := next.Messages()
	query := lawchat.Query{
		Text:     msgs[len(msgs)-1].Content,
		History:  history,
		Language: next.Language(),
	}
	s.mu.Unlock()

	p := &Pending{ID: id, done: make(chan struct{})}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(p.done)
		defer cancel()

		answer, err := s.Responder.Resolve(reqCtx, query)
		if err != nil {
			answer = Fallback(query.Language, err)
		}
		p.stale = !s.settle(id, answer)
	}()
	return p
}

// settle applies the answer for id, reporting whether it was current.
func (s *Session) settle(id RequestID, answer *lawchat.Answer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.state.Settle(id, answer, s.Now())
	if !ok {
		s.Logger.Debug("discarded stale answer",
			"session", s.ID,
			"request", uint64(id),
			"pending", uint64(s.state.Pending()),
		)
		return false
	}
	s.state = next
	s.Logger.Debug("answer settled",
		"session", s.ID,
		"request", uint64(id),
		"citations", len(answer.Citations),
		"degraded", answer.Degraded,
	)
	return true
}

// Close cancels any pending query and waits for background work to finish.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
	return nil
}
