package explainer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, DefaultReportPath, cfg.ReportPath)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"llm": {"provider": "gemini", "model": "gemini-2.0-flash"},
		"input_dir": "work/in",
		"report_path": "work/out/report.md"
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, "work/in", cfg.InputDir)
	assert.Equal(t, "work/out/report.md", cfg.ReportPath)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestResolveSettings_CredentialMissing(t *testing.T) {
	cfg := Config{LLM: &LLMConfig{Provider: "openai", Model: "m", APIKeyEnv: "CODE_EXPLAINER_TEST_NO_SUCH_KEY"}}

	_, err := cfg.ResolveSettings()
	require.ErrorIs(t, err, ErrCredentialMissing)
}

func TestResolveSettings_FromEnv(t *testing.T) {
	t.Setenv("CODE_EXPLAINER_TEST_KEY", "sk-test")
	cfg := Config{LLM: &LLMConfig{Provider: "openai", Model: "m", APIKeyEnv: "CODE_EXPLAINER_TEST_KEY"}}

	settings, err := cfg.ResolveSettings()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", settings.APIKey)
	assert.Equal(t, "m", settings.Model)
}

func TestResolveSettings_ExplicitKeyWins(t *testing.T) {
	t.Setenv("CODE_EXPLAINER_TEST_KEY", "sk-env")
	cfg := Config{LLM: &LLMConfig{APIKey: "sk-config", APIKeyEnv: "CODE_EXPLAINER_TEST_KEY"}}

	settings, err := cfg.ResolveSettings()
	require.NoError(t, err)
	assert.Equal(t, "sk-config", settings.APIKey)
}
