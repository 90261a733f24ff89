package config

import (
	"testing"

	"github.com/soyeahso/playground/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, Validate(&cfg))
}

func TestValidate_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"http", "http://localhost:7777", false},
		{"https with path", "https://example.com/playground", false},
		{"empty is allowed", "", false},
		{"no scheme", "localhost:7777", true},
		{"ftp scheme", "ftp://example.com", true},
		{"missing host", "http://", true},
		{"bad escape", "http://%zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Endpoint = tt.endpoint
			issues := Validate(&cfg)
			if tt.wantErr {
				require.Len(t, issues, 1)
				assert.Equal(t, "endpoint", issues[0].Path)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestValidate_RoutePrefix(t *testing.T) {
	cfg := Defaults()
	cfg.Routes.Prefix = "v1"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "routes.prefix", issues[0].Path)
}

func TestValidate_Timeout(t *testing.T) {
	cfg := Defaults()
	cfg.HTTP.TimeoutSeconds = -1
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "http.timeoutSeconds", issues[0].Path)

	cfg.HTTP.TimeoutSeconds = 0
	assert.Empty(t, Validate(&cfg))
}

func TestValidate_Logging(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Level = "verbose"
	cfg.Logging.ConsoleStyle = "fancy"
	issues := Validate(&cfg)
	require.Len(t, issues, 2)
	assert.Equal(t, "logging.level", issues[0].Path)
	assert.Equal(t, "logging.consoleStyle", issues[1].Path)
}

func TestValidate_AcceptsEveryLoggerLevel(t *testing.T) {
	for _, level := range logging.ValidLevels {
		cfg := Defaults()
		cfg.Logging.Level = level
		assert.Empty(t, Validate(&cfg), level)
	}
}

func TestValidate_NotifyMode(t *testing.T) {
	for _, mode := range []string{"console", "log", "silent"} {
		cfg := Defaults()
		cfg.Notify.Mode = mode
		assert.Empty(t, Validate(&cfg), mode)
	}

	cfg := Defaults()
	cfg.Notify.Mode = "toast"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].String(), "notify.mode")
}

func TestValidate_UserIDLineBreak(t *testing.T) {
	cfg := Defaults()
	cfg.Identity.UserID = "u-1\r\nX-Evil: 1"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "identity.userId", issues[0].Path)
}
