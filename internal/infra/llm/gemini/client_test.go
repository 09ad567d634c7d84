package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubModels struct {
	model  string
	config *genai.GenerateContentConfig
	prompt string
	resp   *genai.GenerateContentResponse
	err    error
}

func (s *stubModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.model = model
	s.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.prompt = contents[0].Parts[0].Text
	}
	return s.resp, s.err
}

func TestGenerate(t *testing.T) {
	stub := &stubModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(`["roasted"]`, genai.RoleModel),
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     40,
			CandidatesTokenCount: 8,
			TotalTokenCount:      48,
		},
	}}
	client := &Client{models: stub}

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Prompt:          "roast this",
		Temperature:     0.78,
		MaxOutputTokens: 2000,
	})
	require.NoError(t, err)
	require.Equal(t, `["roasted"]`, resp.Text)
	require.Equal(t, 48, resp.TotalTokens)
	require.Equal(t, 40, resp.PromptTokens)
	require.Equal(t, defaultModel, stub.model)
	require.Equal(t, "roast this", stub.prompt)
	require.Equal(t, int32(2000), stub.config.MaxOutputTokens)
	require.InDelta(t, 0.78, *stub.config.Temperature, 1e-6)
}

func TestGenerateBlocked(t *testing.T) {
	stub := &stubModels{resp: &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
	}}
	client := &Client{models: stub}

	_, err := client.Generate(context.Background(), GenerateRequest{Model: "gemini-2.5-pro", Prompt: "x"})
	require.ErrorContains(t, err, "blocked: SAFETY")
	require.Equal(t, "gemini-2.5-pro", stub.model)
}

func TestGenerateTransportError(t *testing.T) {
	client := &Client{models: &stubModels{err: errors.New("quota exceeded")}}

	_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	require.EqualError(t, err, "gemini generate content: quota exceeded")
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "")
	require.EqualError(t, err, "gemini api key cannot be empty")
}
