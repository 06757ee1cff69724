package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
}

// GeminiProvider talks to the Gemini API through the genai SDK.
type GeminiProvider struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

func NewGeminiProvider(ctx context.Context, config GeminiConfig) (*GeminiProvider, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		client:          client,
		model:           model,
		temperature:     float32(config.Temperature),
		maxOutputTokens: int32(config.MaxOutputTokens),
	}, nil
}

func (g *GeminiProvider) GenerateJSON(ctx context.Context, request *Request) (*Response, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   request.Schema,
		Temperature:      genai.Ptr(g.temperature),
	}
	if g.maxOutputTokens > 0 {
		config.MaxOutputTokens = g.maxOutputTokens
	}
	if request.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(request.SystemInstruction, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(request.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("GenAI generate content failed: %w", err)
	}

	response := &Response{
		Text:  result.Text(),
		Model: g.model,
	}
	if len(result.Candidates) > 0 {
		response.FinishReason = string(result.Candidates[0].FinishReason)
	}
	if result.UsageMetadata != nil {
		response.PromptTokens = result.UsageMetadata.PromptTokenCount
		response.OutputTokens = result.UsageMetadata.CandidatesTokenCount
	}

	if strings.TrimSpace(response.Text) == "" {
		if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyResponse, result.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("%w (finish reason %q)", ErrEmptyResponse, response.FinishReason)
	}

	return response, nil
}

func (g *GeminiProvider) Name() string {
	return fmt.Sprintf("genai:%s", g.model)
}
