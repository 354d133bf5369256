// Package chat implements the conversation core: an immutable conversation
// state with pure transitions, a session that resolves queries
// asynchronously and discards stale answers, and the query responder.
package chat

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/lawchat"
)

// RequestID tags an in-flight query. IDs are strictly increasing within a
// session; zero means no request.
type RequestID uint64

// State is a snapshot of a conversation. It is a value: transitions return
// a new State and never modify the receiver, so snapshots may be shared
// freely.
type State struct {
	messages    []lawchat.Message
	pending     RequestID
	lastRequest RequestID
	lastMessage lawchat.MessageID
	input       string
	language    lawchat.Language
}

// NewState returns an empty, idle conversation in lang. Unsupported
// languages fall back to English.
func NewState(lang lawchat.Language) State {
	if !lang.Valid() {
		lang = lawchat.LanguageEnglish
	}
	return State{language: lang}
}

// Messages returns a copy of the message history in append order.
func (s State) Messages() []lawchat.Message {
	return slices.Clone(s.messages)
}

// Len returns the number of messages.
func (s State) Len() int {
	return len(s.messages)
}

// Pending returns the request awaiting a response, or zero when idle.
func (s State) Pending() RequestID {
	return s.pending
}

// Idle reports whether no request is in flight.
func (s State) Idle() bool {
	return s.pending == 0
}

// Language returns the conversation language.
func (s State) Language() lawchat.Language {
	return s.language
}

// Input returns the draft input text.
func (s State) Input() string {
	return s.input
}

// Greet seeds an empty conversation with an assistant greeting. It has no
// effect once the conversation has messages.
func (s State) Greet(text string, now time.Time) State {
	if len(s.messages) > 0 || strings.TrimSpace(text) == "" {
		return s
	}
	return s.appendMessage(lawchat.RoleAssistant, text, nil, now)
}

// Submit appends a user message for text and makes a new request pending.
// A pending request, if any, is superseded. Blank text leaves the state
// unchanged and reports false.
func (s State) Submit(text string, now time.Time) (State, RequestID, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, 0, false
	}
	next := s.appendMessage(lawchat.RoleUser, text, nil, now)
	next.lastRequest++
	next.pending = next.lastRequest
	next.input = ""
	return next, next.pending, true
}

// Settle appends the assistant answer for request id and returns to idle.
// Answers for any request other than the pending one are stale: the state
// is returned unchanged and Settle reports false.
func (s State) Settle(id RequestID, answer *lawchat.Answer, now time.Time) (State, bool) {
	if id == 0 || id != s.pending || answer == nil {
		return s, false
	}
	next := s.appendMessage(lawchat.RoleAssistant, answer.Text, slices.Clone(answer.Citations), now)
	next.pending = 0
	return next, true
}

// SetLanguage switches the conversation language. History and pending
// requests are unaffected.
func (s State) SetLanguage(lang lawchat.Language) State {
	if lang.Valid() {
		s.language = lang
	}
	return s
}

// SetInput replaces the draft input text.
func (s State) SetInput(text string) State {
	s.input = text
	return s
}

func (s State) appendMessage(role lawchat.Role, content string, citations []lawchat.Citation, now time.Time) State {
	id := s.lastMessage + 1
	if n := len(s.messages); n > 0 && s.messages[n-1].ID >= id {
		// History would no longer be ordered by ID.
		panic(fmt.Sprintf("chat: message id %d does not follow %d", id, s.messages[n-1].ID))
	}
	if role == lawchat.RoleUser {
		citations = nil
	}
	s.messages = append(slices.Clip(s.messages), lawchat.Message{
		ID:        id,
		Role:      role,
		Content:   content,
		CreatedAt: now,
		Citations: citations,
	})
	s.lastMessage = id
	return s
}
