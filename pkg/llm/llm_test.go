package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"padded", "  {\"a\":1}\n", `{"a":1}`},
		{"fenced with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced without tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced inline", "```{\"a\":1}```", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "  "})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestUnavailableProvider(t *testing.T) {
	p := &UnavailableProvider{}
	_, err := p.GenerateJSON(context.Background(), &Request{Prompt: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	cause := errors.New("dial tcp: no route to host")
	p = &UnavailableProvider{Reason: cause}
	_, err = p.GenerateJSON(context.Background(), &Request{})
	assert.ErrorIs(t, err, cause)
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	p := NewMockProvider(`{"ok":true}`)
	resp, err := p.GenerateJSON(context.Background(), &Request{Prompt: "first"})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)

	_, _ = p.GenerateJSON(context.Background(), &Request{Prompt: "second"})
	require.Equal(t, 2, p.Calls())
	assert.Equal(t, "second", p.Requests()[1].Prompt)
}
