package explainer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat
// completions). A BaseURL override makes it work against OpenAI-compatible
// endpoints such as DeepSeek.
type OpenAILLM struct {
	Model string
	Opts  []option.RequestOption
}

func NewOpenAILLMFromConfig(cfg *Settings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{Model: cfg.Model, Opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(defaultTemperature),
		MaxTokens:   openai.Int(defaultMaxTokens),
	})
	if err != nil {
		return "", wrapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices: %w", ErrBadResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// wrapOpenAIError tags SDK errors with the matching sentinel. Anything that is
// not an API error (DNS failure, connection reset) counts as upstream.
func wrapOpenAIError(err error) error {
	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		return fmt.Errorf("openai: %v: %w", err, ErrUpstream)
	}
	switch {
	case apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden:
		return fmt.Errorf("openai status %d: %v: %w", apierr.StatusCode, err, ErrAuth)
	case apierr.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("openai status %d: %v: %w", apierr.StatusCode, err, ErrRateLimited)
	case apierr.StatusCode/100 == 5 || apierr.StatusCode == http.StatusRequestTimeout:
		return fmt.Errorf("openai status %d: %v: %w", apierr.StatusCode, err, ErrUpstream)
	default:
		return fmt.Errorf("openai status %d: %w", apierr.StatusCode, err)
	}
}
