package explainer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrCredentialMissing means no API key could be resolved from config or
// environment. Nothing touching the network may be constructed after it.
var ErrCredentialMissing = errors.New("api key missing; set it in config llm.api_key or the environment")

const (
	DefaultInputDir   = "data/error_codes"
	DefaultReportPath = "data/error_analysis_report.md"
	defaultModel      = "gpt-3.5-turbo"
)

// LLMConfig selects the provider and model for the explanation calls.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
}

// Config is the on-disk configuration. Every field has a usable default so
// the tool also runs with no config file at all (env-only, like the original
// dotenv setup).
type Config struct {
	LLM        *LLMConfig `json:"llm,omitempty"`
	InputDir   string     `json:"input_dir,omitempty"`
	ReportPath string     `json:"report_path,omitempty"`
	ServerAddr string     `json:"server_addr,omitempty"`
}

// LoadConfig reads JSON config from disk and applies defaults. A missing file
// is not an error; a present but unreadable or invalid one is. .env is loaded
// once here so api_key_env lookups see it.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return Config{}, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if cfg.LLM == nil {
		cfg.LLM = &LLMConfig{}
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModel
	}
	if cfg.LLM.APIKeyEnv == "" {
		if cfg.LLM.Provider == "gemini" {
			cfg.LLM.APIKeyEnv = "GEMINI_API_KEY"
		} else {
			cfg.LLM.APIKeyEnv = "OPENAI_API_KEY"
		}
	}
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = DefaultReportPath
	}
	return cfg, nil
}

// ResolveSettings turns the LLM section into constructor settings, resolving
// the credential. Fails with ErrCredentialMissing before any request is made.
func (c Config) ResolveSettings() (*Settings, error) {
	llm := c.LLM
	if llm == nil {
		llm = &LLMConfig{}
	}
	key := llm.APIKey
	if key == "" && llm.APIKeyEnv != "" {
		key = os.Getenv(llm.APIKeyEnv)
	}
	if key == "" {
		return nil, ErrCredentialMissing
	}
	return &Settings{
		Provider: llm.Provider,
		Model:    llm.Model,
		APIKey:   key,
		BaseURL:  llm.BaseURL,
	}, nil
}
