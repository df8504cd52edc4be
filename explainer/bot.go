package explainer

import (
	"context"
	"errors"
)

// Bot turns code plus an optional error message into an explanation. It is
// the only place transport errors are swallowed: everything past ExplainError
// sees failures as Result data.
type Bot struct {
	llm LLMClient
}

func NewBot(llm LLMClient) (*Bot, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Bot{llm: llm}, nil
}

// ExplainError makes exactly one model call. No retry, no timeout of its own;
// if the transport hangs without a deadline on ctx, this call blocks.
func (b *Bot) ExplainError(ctx context.Context, code, errorMessage string) Result {
	prompt := BuildExplainPrompt(code, errorMessage)
	text, err := b.llm.Complete(ctx, prompt)
	if err != nil {
		return Result{
			Reason: err.Error(),
			Kind:   classifyFailure(err),
		}
	}
	return Result{OK: true, Text: text}
}

func classifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrAuth):
		return FailureAuth
	case errors.Is(err, ErrRateLimited):
		return FailureRateLimited
	case errors.Is(err, ErrUpstream):
		return FailureUpstream
	case errors.Is(err, ErrBadResponse):
		return FailureBadResponse
	default:
		return FailureOther
	}
}
