package explainer

import "strings"

// Prompt is the message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// systemPolicy pins the assistant role. The "no complete solutions" rule is
// enforced only through this text; responses are not filtered locally.
const systemPolicy = `You are a Python programming teaching assistant. When students encounter code errors, you need to:

1. Clearly explain the meaning of the error
2. Analyze why this error occurred
3. Provide conceptual repair suggestions (do not give complete runnable code)
4. Help students understand the underlying programming concepts

Important: Do not provide complete code solutions, but guide students to think and learn.`

// BuildExplainPrompt interpolates code and an optional error message into the
// fixed four-section answer template. Total over any input, including empty
// strings; an empty errorMessage means none was supplied.
func BuildExplainPrompt(code, errorMessage string) Prompt {
	var sb strings.Builder
	sb.WriteString("Please analyze the following Python code error:\n\n")
	sb.WriteString("Code:\n```python\n")
	sb.WriteString(code)
	sb.WriteString("\n```\n\n")
	sb.WriteString("Error message (if any):\n")
	sb.WriteString(errorMessage)
	sb.WriteString("\n\nPlease answer in the following format:\n\n")
	sb.WriteString("## Error Analysis\n[Explain what the error is]\n\n")
	sb.WriteString("## Cause\n[Explain why this error occurred]\n\n")
	sb.WriteString("## Repair Suggestions\n[Provide conceptual repair methods, do not give complete code]\n\n")
	sb.WriteString("## Learning Points\n[Relevant Python knowledge points]")

	return Prompt{
		System: systemPolicy,
		User:   sb.String(),
	}
}
