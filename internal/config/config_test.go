package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("ADMIN_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "http://localhost:11434", cfg.LLMBaseURL)
	assert.Equal(t, "phi", cfg.LLMModel)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AdminEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LLM_BASE_URL", "http://llm:11434/")
	t.Setenv("ADMIN_ENABLED", "true")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://llm:11434", cfg.LLMBaseURL)
	assert.True(t, cfg.AdminEnabled)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("ADMIN_ENABLED", "maybe")
	t.Setenv("SESSION_TTL", "forever")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_ENABLED")
	assert.Contains(t, err.Error(), "SESSION_TTL")
}

func TestLoadSpeechNeedsCredentials(t *testing.T) {
	t.Setenv("SPEECH_ENABLED", "true")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	_, err := Load()
	assert.Error(t, err)
}
