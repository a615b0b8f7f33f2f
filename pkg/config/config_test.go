package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops the content into a temp file and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yml")
	err := os.WriteFile(configPath, []byte(content), 0o644)
	require.NoError(t, err)
	return configPath
}

const validSMS = `
sms:
  account_sid: AC123
  auth_token: secret-token
  from: "+15550001111"
  to: "+15552223333"
`

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
scrape:
  url: https://news.ycombinator.com/news
  mode: feed
  feed_url: https://hnrss.org/newest
  timeout: 45s

llm:
  active: groq
  temperature: 0.7
  max_tokens: 700
  groq:
    api_key: gk-test
    model: llama-3.1-8b-instant

schedule:
  interval: 1h
` + validSMS

		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "https://news.ycombinator.com/news", cfg.Scrape.URL)
		assert.Equal(t, "feed", cfg.Scrape.Mode)
		assert.Equal(t, "https://hnrss.org/newest", cfg.Scrape.FeedURL)
		assert.Equal(t, 45*time.Second, cfg.Scrape.Timeout)

		assert.Equal(t, "groq", cfg.LLM.Active)
		assert.InEpsilon(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 700, cfg.LLM.MaxTokens)
		assert.Equal(t, "gk-test", cfg.LLM.Groq.APIKey)

		assert.Equal(t, time.Hour, cfg.Schedule.Interval)

		assert.Equal(t, "AC123", cfg.SMS.AccountSID)
		assert.Equal(t, "+15552223333", cfg.SMS.To)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validSMS))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "https://news.ycombinator.com", cfg.Scrape.URL)
		assert.Equal(t, "browser", cfg.Scrape.Mode)
		assert.Equal(t, "https://hnrss.org/frontpage", cfg.Scrape.FeedURL)
		assert.Equal(t, 90*time.Second, cfg.Scrape.Timeout)
		assert.Equal(t, "Mozilla/5.0 (compatible; Newspager/1.0)", cfg.Scrape.UserAgent)

		assert.False(t, cfg.Enrich.Enabled)
		assert.Equal(t, 5, cfg.Enrich.Top)
		assert.Equal(t, 15*time.Second, cfg.Enrich.Timeout)
		assert.Equal(t, 3, cfg.Enrich.MaxConcurrent)

		assert.Equal(t, "openai", cfg.LLM.Active)
		assert.InEpsilon(t, 0.2, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)

		assert.Equal(t, 3*time.Hour, cfg.Schedule.Interval)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_OPENAI_KEY", "sk-from-env")
		t.Setenv("TEST_SMS_TOKEN", "tok-from-env")

		configContent := `
llm:
  openai:
    api_key: ${TEST_OPENAI_KEY}

sms:
  account_sid: AC123
  auth_token: ${TEST_SMS_TOKEN}
  from: "+15550001111"
  to: "+15552223333"
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, "sk-from-env", cfg.LLM.OpenAI.APIKey)
		assert.Equal(t, "tok-from-env", cfg.SMS.AuthToken)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("no-such-config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "scrape: [broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("bad scrape mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, "scrape:\n  mode: carrier-pigeon\n"+validSMS))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scrape.mode")
	})

	t.Run("missing sms credentials", func(t *testing.T) {
		configContent := `
sms:
  account_sid: AC123
  from: "+15550001111"
  to: "+15552223333"
`
		_, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sms.auth_token is required")
	})

	t.Run("interval too short", func(t *testing.T) {
		_, err := Load(writeConfig(t, "schedule:\n  interval: 5s\n"+validSMS))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schedule.interval")
	})

	t.Run("bad temperature", func(t *testing.T) {
		_, err := Load(writeConfig(t, "llm:\n  temperature: 3.5\n"+validSMS))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.temperature")
	})
}

func TestLLMConfig_ActiveProvider(t *testing.T) {
	t.Run("openai with defaults", func(t *testing.T) {
		cfg := LLMConfig{Active: "openai", OpenAI: Provider{APIKey: "sk-test"}}
		p, err := cfg.ActiveProvider()
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name)
		assert.Equal(t, "sk-test", p.APIKey)
		assert.Equal(t, "https://api.openai.com/v1", p.Endpoint)
		assert.Equal(t, "gpt-4o-mini", p.Model)
	})

	t.Run("explicit endpoint and model win", func(t *testing.T) {
		cfg := LLMConfig{Active: "deepseek", DeepSeek: Provider{
			APIKey:   "ds-test",
			Endpoint: "https://proxy.internal/v1",
			Model:    "deepseek-reasoner",
		}}
		p, err := cfg.ActiveProvider()
		require.NoError(t, err)
		assert.Equal(t, "deepseek", p.Name)
		assert.Equal(t, "https://proxy.internal/v1", p.Endpoint)
		assert.Equal(t, "deepseek-reasoner", p.Model)
	})

	t.Run("groq defaults", func(t *testing.T) {
		cfg := LLMConfig{Active: "groq"}
		p, err := cfg.ActiveProvider()
		require.NoError(t, err)
		assert.Equal(t, "https://api.groq.com/openai/v1", p.Endpoint)
		assert.Equal(t, "llama-3.3-70b-versatile", p.Model)
	})

	t.Run("empty falls back to openai", func(t *testing.T) {
		cfg := LLMConfig{}
		p, err := cfg.ActiveProvider()
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name)
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		cfg := LLMConfig{Active: "nonexistent"}
		_, err := cfg.ActiveProvider()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownProvider))
		assert.Contains(t, err.Error(), "nonexistent")
	})
}
