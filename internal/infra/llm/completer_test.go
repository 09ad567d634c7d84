package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
	"github.com/yanqian/itinerary-roaster/internal/infra/config"
	"github.com/yanqian/itinerary-roaster/internal/infra/llm/chatgpt"
	"github.com/yanqian/itinerary-roaster/internal/infra/llm/gemini"
)

type stubChat struct {
	req  chatgpt.ChatCompletionRequest
	resp chatgpt.ChatCompletionResponse
	err  error
}

func (s *stubChat) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.req = req
	return s.resp, s.err
}

type stubGenerator struct {
	req  gemini.GenerateRequest
	resp gemini.GenerateResponse
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, req gemini.GenerateRequest) (gemini.GenerateResponse, error) {
	s.req = req
	return s.resp, s.err
}

func TestNewCompleterSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LLMConfig
		want    any
		wantErr string
	}{
		{name: "no key", cfg: config.LLMConfig{Provider: config.ProviderOpenAI}, want: Unconfigured{}},
		{name: "openai", cfg: config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "sk"}, want: &ChatGPTCompleter{}},
		{name: "gemini", cfg: config.LLMConfig{Provider: config.ProviderGemini, APIKey: "gk"}, want: &GeminiCompleter{}},
		{name: "unknown", cfg: config.LLMConfig{Provider: "other", APIKey: "k"}, wantErr: `unsupported llm provider "other"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCompleter(context.Background(), tt.cfg)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.IsType(t, tt.want, got)
		})
	}
}

func TestChatGPTCompleter(t *testing.T) {
	stub := &stubChat{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"choices":[{"message":{"role":"assistant","content":"[\"a\"]"}}],
		"usage":{"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}
	}`), &stub.resp))
	completer := &ChatGPTCompleter{client: stub}

	got, err := completer.Complete(context.Background(), roast.CompletionRequest{
		Prompt: "p", Model: "gpt-4o", Temperature: 0.78, MaxOutputTokens: 2000,
	})
	require.NoError(t, err)
	require.Equal(t, `["a"]`, got.Text)
	require.Equal(t, 12, got.Usage.TotalTokens)
	require.Equal(t, []chatgpt.Message{{Role: "user", Content: "p"}}, stub.req.Messages)
	require.Equal(t, 2000, stub.req.MaxTokens)
}

func TestChatGPTCompleterNoChoices(t *testing.T) {
	completer := &ChatGPTCompleter{client: &stubChat{}}
	got, err := completer.Complete(context.Background(), roast.CompletionRequest{Prompt: "p"})
	require.NoError(t, err)
	require.Empty(t, got.Text)
}

func TestGeminiCompleter(t *testing.T) {
	stub := &stubGenerator{resp: gemini.GenerateResponse{Text: `["b"]`, PromptTokens: 5, TotalTokens: 9}}
	completer := &GeminiCompleter{client: stub}

	got, err := completer.Complete(context.Background(), roast.CompletionRequest{Prompt: "p", Model: "gemini-2.5-flash"})
	require.NoError(t, err)
	require.Equal(t, `["b"]`, got.Text)
	require.Equal(t, 9, got.Usage.TotalTokens)
	require.Equal(t, "gemini-2.5-flash", stub.req.Model)

	stub.err = errors.New("boom")
	_, err = completer.Complete(context.Background(), roast.CompletionRequest{Prompt: "p"})
	require.EqualError(t, err, "boom")
}

func TestUnconfigured(t *testing.T) {
	_, err := Unconfigured{}.Complete(context.Background(), roast.CompletionRequest{})
	require.ErrorIs(t, err, ErrNotConfigured)
}
