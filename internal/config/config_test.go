package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.perplexity.ai", cfg.Perplexity.BaseURL)
	assert.Equal(t, "sonar-pro", cfg.Perplexity.Model)
	assert.Equal(t, 30, cfg.Perplexity.TimeoutSecs)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.ProModel)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.FlashModel)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.VisionModel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGRI_PERPLEXITY_KEY", "pplx-secret")
	t.Setenv("AGRI_GEMINI_KEY", "gm-secret")
	t.Setenv("AGRI_SERVER_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pplx-secret", cfg.Perplexity.Key)
	assert.Equal(t, "gm-secret", cfg.Gemini.Key)
	assert.Equal(t, 9999, cfg.Server.Port)
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingKeys(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perplexity.key")

	cfg.Perplexity.Key = "x"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini.key")

	cfg.Gemini.Key = "y"
	require.NoError(t, cfg.Validate())
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "not-a-level", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
