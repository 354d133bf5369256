// Package gemini implements answer generation with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/lawchat"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultHistoryBudget is the token budget for prior conversation turns.
const DefaultHistoryBudget = 4000

// Ensure Answerer implements lawchat.Answerer at compile time.
var _ lawchat.Answerer = (*Answerer)(nil)

// Answerer implements lawchat.Answerer using Google Gemini.
type Answerer struct {
	client *genai.Client
	model  string
	tokens lawchat.TokenCounter

	// HistoryBudget caps the tokens of prior turns sent with each request.
	HistoryBudget int
}

// NewAnswerer creates a new Answerer. tokens may be nil, in which case the
// full history is sent.
func NewAnswerer(client *genai.Client, model string, tokens lawchat.TokenCounter) *Answerer {
	if model == "" {
		model = DefaultModel
	}
	return &Answerer{
		client:        client,
		model:         model,
		tokens:        tokens,
		HistoryBudget: DefaultHistoryBudget,
	}
}

// Answer answers a legal question using the supplied citations as context.
func (a *Answerer) Answer(ctx context.Context, req lawchat.AnswerRequest) (string, error) {
	if strings.TrimSpace(req.Query) == "" {
		return "", lawchat.Errorf(lawchat.EINVALID, "question required")
	}

	history, err := lawchat.TrimHistory(ctx, a.tokens, req.History, a.HistoryBudget)
	if err != nil {
		return "", fmt.Errorf("failed to count history tokens: %w", err)
	}

	contents := BuildContents(history, BuildUserPrompt(req.Citations, req.Query))
	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, BuildConfig(req.Language))
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", lawchat.Errorf(lawchat.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(lang lawchat.Language) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: SystemInstruction(lang),
			}},
		},
		Temperature: &temp,
	}
}

// SystemInstruction returns the assistant instructions for lang.
func SystemInstruction(lang lawchat.Language) string {
	reply := "Reply in English."
	if lang == lawchat.LanguageNepali {
		reply = "Reply in Nepali."
	}
	return "You are a helpful legal assistant answering questions about the Constitution of Nepal. " +
		"Base your answer on the articles provided and refer to them as \"Article N\". " +
		"If the articles do not answer the question, say so and suggest consulting a lawyer. " + reply
}

// BuildContents converts prior turns and the current prompt into Gemini
// conversation contents.
func BuildContents(history []lawchat.Message, prompt string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == lawchat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return append(contents, genai.NewContentFromText(prompt, genai.RoleUser))
}

// BuildUserPrompt builds the user prompt containing cited articles and the question.
func BuildUserPrompt(citations []lawchat.Citation, question string) string {
	var sb strings.Builder
	sb.WriteString("<articles>\n")
	for _, c := range citations {
		sb.WriteString("<article>\n")
		fmt.Fprintf(&sb, "<number>%d</number>\n", c.ArticleNumber)
		fmt.Fprintf(&sb, "<title>%s</title>\n", c.Title)
		fmt.Fprintf(&sb, "<text>%s</text>\n", c.Excerpt)
		sb.WriteString("</article>\n")
	}
	sb.WriteString("</articles>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
