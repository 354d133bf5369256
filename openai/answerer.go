// Package openai implements answer generation with OpenAI chat completions.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/lawchat"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = openai.GPT4oMini

// DefaultTemperature keeps answers close to the cited text.
const DefaultTemperature = 0.4

// ChatCompleter is the subset of *openai.Client used by Answerer.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

var _ ChatCompleter = (*openai.Client)(nil)

// Ensure Answerer implements lawchat.Answerer at compile time.
var _ lawchat.Answerer = (*Answerer)(nil)

// Answerer implements lawchat.Answerer using OpenAI chat completions.
type Answerer struct {
	client ChatCompleter
	model  string
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(client ChatCompleter, model string) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	return &Answerer{client: client, model: model}
}

// NewClient returns an OpenAI client for apiKey. A non-empty baseURL
// points the client at an OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Answer answers a legal question using the supplied citations as context.
func (a *Answerer) Answer(ctx context.Context, req lawchat.AnswerRequest) (string, error) {
	if strings.TrimSpace(req.Query) == "" {
		return "", lawchat.Errorf(lawchat.EINVALID, "question required")
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    BuildMessages(req),
		Temperature: DefaultTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", lawchat.Errorf(lawchat.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildMessages converts an answer request into chat messages: the system
// instruction, prior turns, then the prompt carrying citations.
func BuildMessages(req lawchat.AnswerRequest) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt(req.Language),
	})
	for _, m := range req.History {
		role := openai.ChatMessageRoleUser
		if m.Role == lawchat.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: BuildPrompt(req.Citations, req.Query),
	})
}

// SystemPrompt returns the assistant instructions for lang.
func SystemPrompt(lang lawchat.Language) string {
	reply := "Answer in English."
	if lang == lawchat.LanguageNepali {
		reply = "Answer in Nepali."
	}
	return "You are a legal assistant for the Constitution of Nepal. " +
		"Use only the articles given and cite them as \"Article N\". " +
		"When the articles do not cover the question, say so. " + reply
}

// BuildPrompt renders citations followed by the question.
func BuildPrompt(citations []lawchat.Citation, question string) string {
	if len(citations) == 0 {
		return "No relevant articles were found.\n\nQuestion: " + question
	}
	return "Relevant articles:\n\n" + lawchat.FormatCitations(citations) + "\n\nQuestion: " + question
}
