package config

import (
	"time"
)

// AIConfig configures the generative backend used for route simulation.
type AIConfig struct {
	Provider        string        `yaml:"provider"`
	APIKey          string        `yaml:"api_key"`
	Model           string        `yaml:"model"`
	Temperature     float64       `yaml:"temperature"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`
	RequestTimeout  time.Duration `yaml:"request_timeout"` // 0 leaves the transport default
}

func defaultAIConfig() *AIConfig {
	return &AIConfig{
		Provider:        "gemini",
		Model:           "gemini-2.0-flash",
		Temperature:     0.4,
		MaxOutputTokens: 2048,
	}
}

func loadAIConfig(ai *AIConfig) {
	ai.Provider = getEnv("AI_PROVIDER", ai.Provider)
	// GEMINI_API_KEY wins over GOOGLE_API_KEY when both are present.
	ai.APIKey = getEnv("GOOGLE_API_KEY", ai.APIKey)
	ai.APIKey = getEnv("GEMINI_API_KEY", ai.APIKey)
	ai.Model = getEnv("AI_MODEL", ai.Model)
	ai.Temperature = getEnvAsFloat64("AI_TEMPERATURE", ai.Temperature)
	ai.MaxOutputTokens = getEnvAsInt("AI_MAX_OUTPUT_TOKENS", ai.MaxOutputTokens)
	ai.RequestTimeout = getEnvAsDuration("AI_REQUEST_TIMEOUT", ai.RequestTimeout)
}
