package llm

import (
	"context"
	"fmt"
)

// UnavailableProvider stands in when no backend could be configured. Every
// call fails with the configuration error so the request flow degrades instead
// of the process refusing to start.
type UnavailableProvider struct {
	Reason error
}

func (u *UnavailableProvider) GenerateJSON(ctx context.Context, request *Request) (*Response, error) {
	reason := u.Reason
	if reason == nil {
		reason = ErrMissingAPIKey
	}
	return nil, fmt.Errorf("generative AI backend unavailable: %w", reason)
}

func (u *UnavailableProvider) Name() string {
	return "unavailable"
}
