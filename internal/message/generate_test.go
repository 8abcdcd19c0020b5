package message

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

type fakeChatClient struct {
	reply string
	err   error
	last  openai.ChatCompletionRequest
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.last = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func followupRequest() Request {
	return Request{
		Kind:    KindFollowup,
		Name:    "Tim Bennett",
		Title:   "Managing Director",
		Company: "Orafol",
	}
}

func TestGenerateMessageTrimsReply(t *testing.T) {
	client := &fakeChatClient{reply: "  Hi Tim, just following up.  \n"}
	gen := &OpenAIGenerator{client: client, model: "gpt-4"}

	got, err := gen.GenerateMessage(context.Background(), followupRequest())
	if err != nil {
		t.Fatalf("GenerateMessage failed: %v", err)
	}
	if got != "Hi Tim, just following up." {
		t.Errorf("got %q, want trimmed reply", got)
	}
	if client.last.Model != "gpt-4" {
		t.Errorf("model = %q, want gpt-4", client.last.Model)
	}
}

func TestGenerateMessageWrapsFailure(t *testing.T) {
	client := &fakeChatClient{err: errors.New("rate limited")}
	gen := &OpenAIGenerator{client: client, model: "gpt-4"}

	_, err := gen.GenerateMessage(context.Background(), followupRequest())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %v, want GenerationError", err)
	}
	if genErr.Name != "Tim Bennett" {
		t.Errorf("GenerationError.Name = %q, want Tim Bennett", genErr.Name)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error %q does not carry the cause", err)
	}
}

func TestGenerateMessageEmptyChoices(t *testing.T) {
	gen := &OpenAIGenerator{client: &emptyChoicesClient{}, model: "gpt-4"}

	_, err := gen.GenerateMessage(context.Background(), followupRequest())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %v, want GenerationError", err)
	}
}

type emptyChoicesClient struct{}

func (emptyChoicesClient) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}

func TestUnconfiguredGeneratorFails(t *testing.T) {
	gen := NewGenerator("", "gpt-4")

	_, err := gen.GenerateMessage(context.Background(), followupRequest())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %v, want GenerationError", err)
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error %q does not explain the missing key", err)
	}
}

func TestBuildPromptVariants(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "followup",
			req:  followupRequest(),
			want: []string{"follow up message", "Tim Bennett", "Managing Director", "Orafol", "haven't heard back"},
		},
		{
			name: "initial email",
			req: Request{
				Kind: KindInitial, Method: contacts.MethodEmail,
				Name: "Tim Bennett", Title: "Managing Director", Company: "Orafol",
				Event: "ISASign Expo", Rationale: "weather-resistant graphics",
			},
			want: []string{"cold outreach email", "attending ISASign Expo", "weather-resistant graphics"},
		},
		{
			name: "initial linkedin",
			req: Request{
				Kind: KindInitial, Method: contacts.MethodLinkedIn,
				Name: "Tim Bennett", Title: "Managing Director", Company: "Orafol",
			},
			want: []string{"LinkedIn message", "conversational"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildPrompt(tt.req)
			for _, phrase := range tt.want {
				if !strings.Contains(prompt, phrase) {
					t.Errorf("prompt missing %q:\n%s", phrase, prompt)
				}
			}
		})
	}
}
