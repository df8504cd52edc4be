package explainer

import (
	"context"
	"errors"
)

// Fixed generation parameters. The source of truth for the whole pipeline;
// clients must not read them from the environment at call time.
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 800
)

// Sentinel errors each transport wraps so failures can be classified without
// depending on provider SDK types outside this package.
var (
	ErrAuth        = errors.New("authentication rejected")
	ErrRateLimited = errors.New("rate limited or quota exhausted")
	ErrUpstream    = errors.New("upstream service error")
	ErrBadResponse = errors.New("malformed model response")
)

// LLMClient abstracts the chat-completion transport so it can be swapped or
// mocked. One call, one attempt; no retries at this layer.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Settings is the base configuration handed to concrete implementations.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
