package explainer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	genai "google.golang.org/genai"
)

// GeminiLLM implements LLMClient on top of the official genai SDK.
type GeminiLLM struct {
	Model  string
	APIKey string
}

func NewGeminiLLMFromConfig(cfg *Settings) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key missing; provide llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	return &GeminiLLM{Model: cfg.Model, APIKey: cfg.APIKey}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini client: %v: %w", err, ErrUpstream)
	}

	resp, err := cli.Models.GenerateContent(ctx, g.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt.User}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: prompt.System}}},
			Temperature:       genai.Ptr[float32](defaultTemperature),
			MaxOutputTokens:   defaultMaxTokens,
		},
	)
	if err != nil {
		return "", wrapGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty candidates: %w", ErrBadResponse)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func wrapGeminiError(err error) error {
	var apierr genai.APIError
	if !errors.As(err, &apierr) {
		return fmt.Errorf("gemini: %v: %w", err, ErrUpstream)
	}
	switch {
	case apierr.Code == http.StatusUnauthorized || apierr.Code == http.StatusForbidden:
		return fmt.Errorf("gemini status %d: %v: %w", apierr.Code, err, ErrAuth)
	case apierr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("gemini status %d: %v: %w", apierr.Code, err, ErrRateLimited)
	case apierr.Code/100 == 5 || apierr.Code == http.StatusRequestTimeout:
		return fmt.Errorf("gemini status %d: %v: %w", apierr.Code, err, ErrUpstream)
	default:
		return fmt.Errorf("gemini status %d: %w", apierr.Code, err)
	}
}
