package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GenerateRequest is a single-prompt text generation call.
type GenerateRequest struct {
	Model           string
	Prompt          string
	Temperature     float32
	MaxOutputTokens int
}

// GenerateResponse carries the generated text and token accounting.
type GenerateResponse struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client wraps the Gemini API models service.
type Client struct {
	models contentGenerator
}

// NewClient constructs a Gemini client against the public Gemini API.
func NewClient(ctx context.Context, apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(baseURL) != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{models: client.Models}, nil
}

// Generate sends one prompt and returns the concatenated text of the first candidate.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	model := req.Model
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	res, err := c.models.GenerateContent(ctx, model, genai.Text(req.Prompt), config)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("gemini generate content: %w", err)
	}

	// Blocked prompts come back without candidates.
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		reason := "no candidates"
		if res.PromptFeedback != nil && res.PromptFeedback.BlockReason != "" {
			reason = "blocked: " + string(res.PromptFeedback.BlockReason)
		}
		return GenerateResponse{}, fmt.Errorf("gemini returned no content (%s)", reason)
	}

	out := GenerateResponse{Text: res.Text()}
	if usage := res.UsageMetadata; usage != nil {
		out.PromptTokens = int(usage.PromptTokenCount)
		out.CompletionTokens = int(usage.CandidatesTokenCount)
		out.TotalTokens = int(usage.TotalTokenCount)
	}
	return out, nil
}
