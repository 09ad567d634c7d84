package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
	"github.com/yanqian/itinerary-roaster/internal/infra/config"
	"github.com/yanqian/itinerary-roaster/internal/infra/llm/chatgpt"
	"github.com/yanqian/itinerary-roaster/internal/infra/llm/gemini"
	"github.com/yanqian/itinerary-roaster/pkg/metrics"
)

// ErrNotConfigured is returned by the completer used when no API key is set.
var ErrNotConfigured = errors.New("completion provider is not configured")

// NewCompleter selects the completion backend named by the configuration.
// Without an API key it returns an Unconfigured completer so the process can
// still boot and answer with a per-request credential error.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (roast.CompletionClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return Unconfigured{}, nil
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.APIKey, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return NewGeminiCompleter(client), nil
	case config.ProviderOpenAI, "":
		client, err := chatgpt.NewClient(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return NewChatGPTCompleter(client), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// ChatGPTCompleter adapts the ChatGPT client to the roast domain.
type ChatGPTCompleter struct {
	client chatCompleter
}

// NewChatGPTCompleter constructs the adapter.
func NewChatGPTCompleter(client *chatgpt.Client) *ChatGPTCompleter {
	return &ChatGPTCompleter{client: client}
}

// Complete sends the prompt as a single user message.
func (c *ChatGPTCompleter) Complete(ctx context.Context, req roast.CompletionRequest) (roast.Completion, error) {
	resp, err := c.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxOutputTokens,
		Messages:    []chatgpt.Message{{Role: "user", Content: req.Prompt}},
	})
	if err != nil {
		return roast.Completion{}, err
	}
	out := roast.Completion{
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

var _ roast.CompletionClient = (*ChatGPTCompleter)(nil)

type textGenerator interface {
	Generate(ctx context.Context, req gemini.GenerateRequest) (gemini.GenerateResponse, error)
}

// GeminiCompleter adapts the Gemini client to the roast domain.
type GeminiCompleter struct {
	client textGenerator
}

// NewGeminiCompleter constructs the adapter.
func NewGeminiCompleter(client *gemini.Client) *GeminiCompleter {
	return &GeminiCompleter{client: client}
}

// Complete forwards the prompt to Gemini.
func (c *GeminiCompleter) Complete(ctx context.Context, req roast.CompletionRequest) (roast.Completion, error) {
	resp, err := c.client.Generate(ctx, gemini.GenerateRequest{
		Model:           req.Model,
		Prompt:          req.Prompt,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	})
	if err != nil {
		return roast.Completion{}, err
	}
	return roast.Completion{
		Text: resp.Text,
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.PromptTokens,
			CompletionTokens: resp.CompletionTokens,
			TotalTokens:      resp.TotalTokens,
		},
	}, nil
}

var _ roast.CompletionClient = (*GeminiCompleter)(nil)

// Unconfigured fails every call without reaching the network.
type Unconfigured struct{}

// Complete always returns ErrNotConfigured.
func (Unconfigured) Complete(context.Context, roast.CompletionRequest) (roast.Completion, error) {
	return roast.Completion{}, ErrNotConfigured
}

var _ roast.CompletionClient = Unconfigured{}
