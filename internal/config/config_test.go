package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SKILL_USER_AGENT", "HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "DEFAULT_LOCALE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultLocale, cfg.DefaultLocale)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKILL_USER_AGENT", "sample/custom/v2")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("DEFAULT_LOCALE", "en-US")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sample/custom/v2", cfg.UserAgent)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "en-US", cfg.DefaultLocale)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad address", Config{HTTPAddr: "8080"}},
		{"bad level", Config{LogLevel: "loud"}},
		{"bad format", Config{LogFormat: "xml"}},
		{"bad locale", Config{DefaultLocale: "not a locale"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			assert.Error(t, cfg.validate())
		})
	}
}
