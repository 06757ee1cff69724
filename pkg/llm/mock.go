package llm

import (
	"context"
	"sync"
)

// MockProvider replays a canned reply and records every request it receives.
type MockProvider struct {
	Reply string
	Err   error

	mu       sync.Mutex
	requests []*Request
}

func NewMockProvider(reply string) *MockProvider {
	return &MockProvider{Reply: reply}
}

func NewFailingMockProvider(err error) *MockProvider {
	return &MockProvider{Err: err}
}

func (m *MockProvider) GenerateJSON(ctx context.Context, request *Request) (*Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, request)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Response{Text: m.Reply, Model: "mock"}, nil
}

func (m *MockProvider) Name() string {
	return "mock"
}

// Requests returns the requests seen so far.
func (m *MockProvider) Requests() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Request, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
