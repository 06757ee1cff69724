package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("generative AI API key is not configured")
	ErrEmptyResponse = errors.New("generative AI backend returned no content")
)

// Provider issues a single structured-output completion. Implementations do
// not retry.
type Provider interface {
	GenerateJSON(ctx context.Context, request *Request) (*Response, error)
	Name() string
}

type Request struct {
	Prompt            string
	SystemInstruction string
	// Schema constrains the JSON the backend may return.
	Schema *genai.Schema
}

type Response struct {
	Text         string `json:"text"`
	Model        string `json:"model"`
	FinishReason string `json:"finish_reason,omitempty"`
	PromptTokens int32  `json:"prompt_tokens"`
	OutputTokens int32  `json:"output_tokens"`
}
