package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code_error_explainer/explainer"
)

// Render assembles the markdown report. Pure and deterministic: the same case
// sequence always produces byte-identical output. Failed cases render their
// failure reason in place of model text so every attempted file is accounted
// for.
func Render(cases []explainer.Case) string {
	var b strings.Builder
	b.WriteString("# Python Code Error Explanation Report\n\n")
	b.WriteString("---\n\n")

	for i, c := range cases {
		fmt.Fprintf(&b, "## Case %d: %s\n\n", i+1, c.Filename)
		b.WriteString("### Original Code\n")
		b.WriteString("```python\n")
		b.WriteString(c.Code)
		b.WriteString("\n```\n\n")
		b.WriteString("### AI Assistant Explanation\n")
		b.WriteString(c.Result.TextOrReason())
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}

// WriteReport writes the full report in one pass, creating missing parent
// directories first.
func WriteReport(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
