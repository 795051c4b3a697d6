package services

import (
	"context"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Greeter produces the salutation line of the summary email. An
// explicit greeting supplied with the request always takes precedence
// over any Greeter; see SummaryService.
type Greeter interface {
	Greet(ctx context.Context, contactName string) string
}

const neutralGreeting = "Szanowni Państwo"

// Masculine Polish first names that end in -a and would otherwise be
// misclassified by the ending rule.
var masculineExceptions = map[string]bool{
	"kuba":        true,
	"barnaba":     true,
	"bonawentura": true,
	"kosma":       true,
	"dyzma":       true,
}

// HeuristicGreeter picks the salutation from the first name's ending.
// Cosmetic copy only; callers wanting certainty pass an explicit
// greeting instead.
type HeuristicGreeter struct{}

func NewHeuristicGreeter() *HeuristicGreeter {
	return &HeuristicGreeter{}
}

func (g *HeuristicGreeter) Greet(_ context.Context, contactName string) string {
	fields := strings.Fields(contactName)
	if len(fields) == 0 {
		return neutralGreeting
	}

	first := fields[0]
	lower := strings.ToLower(first)
	if strings.HasSuffix(lower, "a") && !masculineExceptions[lower] {
		return "Szanowna Pani " + first
	}
	return "Szanowny Panie " + first
}

// OpenAIGreeter asks a chat model for the salutation and falls back to
// the heuristic on any failure. Enabled only when an API key is
// configured.
type OpenAIGreeter struct {
	client   *openai.Client
	fallback Greeter
}

func NewOpenAIGreeter(apiKey string, fallback Greeter) *OpenAIGreeter {
	return &OpenAIGreeter{
		client:   openai.NewClient(apiKey),
		fallback: fallback,
	}
}

func (g *OpenAIGreeter) Greet(ctx context.Context, contactName string) string {
	if strings.TrimSpace(contactName) == "" {
		return neutralGreeting
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4oMini,
		MaxTokens:   24,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "Podaj grzecznościowy zwrot otwierający polski e-mail do osoby o podanym imieniu i nazwisku, " +
					"w formie 'Szanowna Pani <imię>' albo 'Szanowny Panie <imię>'. Zwróć sam zwrot, bez kropki.",
			},
			{Role: openai.ChatMessageRoleUser, Content: contactName},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		log.Printf("Greeting model unavailable, using heuristic: %v", err)
		return g.fallback.Greet(ctx, contactName)
	}

	greeting := strings.TrimSpace(resp.Choices[0].Message.Content)
	if greeting == "" {
		return g.fallback.Greet(ctx, contactName)
	}
	return greeting
}
