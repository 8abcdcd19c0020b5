// Package message produces outreach and follow-up drafts through the
// OpenAI chat-completions API. Generation is a single attempt per
// trigger; retry policy belongs to the user pressing the key again.
package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

// Kind selects which draft to produce.
type Kind string

const (
	KindInitial  Kind = "initial"
	KindFollowup Kind = "followup"
)

// Request carries the contact context a draft is built from.
type Request struct {
	Kind      Kind
	Name      string
	Title     string
	Company   string
	Method    contacts.Method // email vs linkedin wording for initial drafts
	Event     string
	Rationale string
}

// Generator is the opaque text-generation collaborator.
type Generator interface {
	GenerateMessage(ctx context.Context, req Request) (string, error)
}

// GenerationError wraps a failed collaborator call. The triggering
// contact's fields are left exactly as they were.
type GenerationError struct {
	Name string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate message for %s: %v", e.Name, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator calls the chat-completions API with the prompt variants
// below.
type OpenAIGenerator struct {
	client chatClient
	model  string
}

// NewGenerator returns an OpenAI-backed Generator, or an unconfigured one
// whose calls fail with GenerationError when apiKey is empty.
func NewGenerator(apiKey, model string) Generator {
	if apiKey == "" {
		return unconfigured{}
	}
	return &OpenAIGenerator{client: openai.NewClient(apiKey), model: model}
}

// GenerateMessage runs one chat completion and returns the trimmed body.
func (g *OpenAIGenerator) GenerateMessage(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return "", &GenerationError{Name: req.Name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Name: req.Name, Err: errors.New("no choices returned")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type unconfigured struct{}

func (unconfigured) GenerateMessage(_ context.Context, req Request) (string, error) {
	return "", &GenerationError{Name: req.Name, Err: errors.New("OPENAI_API_KEY not set")}
}

func buildPrompt(req Request) string {
	if req.Kind == KindFollowup {
		return fmt.Sprintf(`Write a short and polite follow up message to %s, the %s at %s.
Assume you previously reached out about DuPont Tedlar protective films for signage, and haven't heard back.
Make sure it is professional, polite and friendly, and include a soft invitation to connect.`,
			req.Name, req.Title, req.Company)
	}

	intro := fmt.Sprintf("%s is the %s at %s.", req.Name, req.Title, req.Company)
	if req.Event != "" {
		intro += fmt.Sprintf(" They are attending %s.", req.Event)
	}
	if req.Rationale != "" {
		intro += fmt.Sprintf(" %s was selected because %q.", req.Company, req.Rationale)
	}

	if req.Method == contacts.MethodEmail {
		return fmt.Sprintf(`Write a short but very personalized cold outreach email to %s, the %s at %s.
%s
You are introducing a solution built on DuPont Tedlar, high durability protective films for signage, vehicle wraps and commercial graphics.
Make it relevant to their role and industry, and end with something encouraging them to connect such as "Would love to connect if this is relevant to your team." or similar.`,
			req.Name, req.Title, req.Company, intro)
	}

	return fmt.Sprintf(`Write a short, casual LinkedIn message to %s, the %s at %s.
%s
Mention that you are reaching out about high performance protective films for signage and commercial graphics, built with DuPont Tedlar.
Make the message conversational and light, like an actual direct message, with a low pressure encouragement to connect.`,
		req.Name, req.Title, req.Company, intro)
}
