package explainer

import (
	"context"
	"strings"
)

// MockLLM is a placeholder implementation for local runs without network
// access. It answers in the expected four-section format.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("## Error Analysis\nMock analysis of the submitted code.\n\n")
	sb.WriteString("## Cause\nNo real model was consulted; this is canned output.\n\n")
	sb.WriteString("## Repair Suggestions\nRun again with a configured provider.\n\n")
	sb.WriteString("## Learning Points\nPrompt received:\n\n```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n")
	return sb.String(), nil
}
