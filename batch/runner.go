package batch

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"code_error_explainer/explainer"
)

// Status distinguishes the ways a batch can come back empty.
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusDirMissing
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "nothing processed"
	case StatusDirMissing:
		return "input directory not found"
	default:
		return "ok"
	}
}

// Runner walks a directory of source files and asks the bot about each one,
// strictly sequentially. One unreadable file never aborts the batch.
type Runner struct {
	bot    *explainer.Bot
	ext    string
	logger *log.Logger
}

// NewRunner creates a Runner. ext defaults to ".py" when empty.
func NewRunner(bot *explainer.Bot, ext string, logger *log.Logger) (*Runner, error) {
	if bot == nil {
		return nil, errors.New("explainer bot is required")
	}
	if ext == "" {
		ext = ".py"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{bot: bot, ext: ext, logger: logger}, nil
}

// Run enumerates inputDir and returns one Case per successfully read matching
// file, in sorted filename order. Files that fail to read are logged and
// skipped; a missing directory yields an empty slice with StatusDirMissing.
func (r *Runner) Run(ctx context.Context, inputDir string) ([]explainer.Case, Status) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		r.logger.Printf("[batch] input directory %q not readable: %v", inputDir, err)
		return nil, StatusDirMissing
	}

	// Sorted for reproducible case numbering across platforms.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), r.ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var cases []explainer.Case
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(inputDir, name))
		if err != nil {
			r.logger.Printf("[batch] skipping %s: %v", name, err)
			continue
		}

		r.logger.Printf("[batch] analyzing %s...", name)
		res := r.bot.ExplainError(ctx, string(data), "")
		if !res.OK {
			r.logger.Printf("[batch] %s: %s failure: %s", name, res.Kind, res.Reason)
		}
		cases = append(cases, explainer.Case{
			Filename: name,
			Code:     string(data),
			Result:   res,
		})
	}

	if len(cases) == 0 {
		return nil, StatusEmpty
	}
	return cases, StatusOK
}
